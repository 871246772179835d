package service

import (
	"context"
	"storefront/config"
	"storefront/dao"
	"storefront/models"
	"storefront/pkg/pricing"
	"storefront/types"

	"github.com/shopspring/decimal"
)

const (
	StockIn  = "in-stock"
	StockLow = "low-stock"
	StockOut = "out-of-stock"
)

var _ IInventoryService = (*InventoryService)(nil)

type IInventoryService interface {
	Stats(ctx context.Context) (*types.InventoryStats, error)
	// List filter 为空或 all 时返回全部
	List(ctx context.Context, filter string) ([]*types.InventoryItem, error)
}

type InventoryService struct {
	ProductDao *dao.Product
	OrderDao   *dao.Order
	Shop       *config.Shop
}

func (s *InventoryService) stockStatus(stock int) string {
	switch {
	case stock <= 0:
		return StockOut
	case stock < s.Shop.LowStockThreshold:
		return StockLow
	}
	return StockIn
}

// items 有规格的商品按规格展开，价值按规格原价计算
func (s *InventoryService) items(ctx context.Context) ([]*types.InventoryItem, int, error) {
	products, err := s.ProductDao.List(ctx, dao.ProductFilter{})
	if err != nil {
		return nil, 0, err
	}
	items := make([]*types.InventoryItem, 0, len(products))
	for _, p := range products {
		if len(p.Variations) == 0 {
			price := pricing.UnitPrice(p, nil)
			items = append(items, s.newItem(p, nil, p.StockQuantity, price))
			continue
		}
		for i := range p.Variations {
			v := &p.Variations[i]
			items = append(items, s.newItem(p, v, v.StockQuantity, v.Price))
		}
	}
	return items, len(products), nil
}

func (s *InventoryService) newItem(p *models.Product, v *models.ProductVariation, stock int, price decimal.Decimal) *types.InventoryItem {
	item := &types.InventoryItem{
		ProductID:     p.ID,
		ProductName:   p.Name,
		StockQuantity: stock,
		Price:         price,
		Value:         pricing.LineTotal(price, max(stock, 0)),
		Status:        s.stockStatus(stock),
	}
	if v != nil {
		item.VariationID = &v.ID
		item.VariationName = &v.Name
	}
	return item
}

func (s *InventoryService) Stats(ctx context.Context) (*types.InventoryStats, error) {
	items, productCount, err := s.items(ctx)
	if err != nil {
		return nil, err
	}
	stats := &types.InventoryStats{
		TotalSales:     decimal.Zero,
		InventoryValue: decimal.Zero,
		ProductCount:   productCount,
	}
	// 按商品计数：任一规格低库存即算一个低库存商品
	low := make(map[string]struct{})
	out := make(map[string]struct{})
	for _, item := range items {
		stats.InventoryValue = stats.InventoryValue.Add(item.Value)
		switch item.Status {
		case StockLow:
			low[item.ProductID] = struct{}{}
		case StockOut:
			out[item.ProductID] = struct{}{}
		}
	}
	stats.LowStockCount = len(low)
	stats.OutOfStock = len(out)

	orders, err := s.OrderDao.SalesRows(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		stats.TotalSales = stats.TotalSales.Add(o.Total)
		for _, line := range o.OrderItems {
			stats.UnitsSold += line.Quantity
		}
	}
	return stats, nil
}

func (s *InventoryService) List(ctx context.Context, filter string) ([]*types.InventoryItem, error) {
	items, _, err := s.items(ctx)
	if err != nil {
		return nil, err
	}
	if filter == "" || filter == "all" {
		return items, nil
	}
	out := make([]*types.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Status == filter {
			out = append(out, item)
		}
	}
	return out, nil
}
