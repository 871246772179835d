package service

import (
	"context"
	"fmt"
	"storefront/dao"
	"storefront/dao/cache"
	"storefront/models"
	"storefront/pkg/cart"
	"storefront/pkg/pricing"
	"storefront/types"
)

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	Get(ctx context.Context, cartID string) (*types.CartView, error)
	// Add 单价在此刻确定并随行保存
	Add(ctx context.Context, cartID string, req *types.AddCartItemRequest) (*types.CartView, error)
	// UpdateQuantity 超出库存时拒绝，购物车保持不变
	UpdateQuantity(ctx context.Context, cartID string, index, quantity int) (*types.CartView, error)
	Remove(ctx context.Context, cartID string, index int) (*types.CartView, error)
	Clear(ctx context.Context, cartID string) error
}

type CartService struct {
	Carts        *cache.CartStorage
	ProductDao   *dao.Product
	VariationDao *dao.Variation
}

func (s *CartService) Get(ctx context.Context, cartID string) (*types.CartView, error) {
	c, err := s.Carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return newCartView(cartID, c), nil
}

func (s *CartService) Add(ctx context.Context, cartID string, req *types.AddCartItemRequest) (*types.CartView, error) {
	product, err := s.ProductDao.FindWithVariations(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.Available {
		return nil, ErrProductUnavailable
	}
	variation, err := pickVariation(product, req.VariationID)
	if err != nil {
		return nil, err
	}

	c, err := s.Carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	stock := product.StockQuantity
	var variationID *string
	if variation != nil {
		stock = variation.StockQuantity
		variationID = &variation.ID
	}
	if c.Quantity(product.ID, variationID)+req.Quantity > stock {
		return nil, &StockLimitError{Available: stock}
	}

	line := cart.Line{
		ProductID:        product.ID,
		ProductName:      product.Name,
		PurityPercentage: product.PurityPercentage,
		ImageURL:         product.ImageURL,
		Quantity:         req.Quantity,
		UnitPrice:        pricing.UnitPrice(product, variation),
	}
	if variation != nil {
		line.VariationID = variationID
		line.VariationName = &variation.Name
	}
	if err := c.Add(line); err != nil {
		return nil, err
	}
	if err := s.Carts.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return newCartView(cartID, c), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, cartID string, index, quantity int) (*types.CartView, error) {
	c, err := s.Carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	line, err := c.Line(index)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, cart.ErrInvalidQuantity
	}
	stock, err := s.stockOf(ctx, line)
	if err != nil {
		return nil, err
	}
	// 同一商品的其他行也占用库存
	others := c.Quantity(line.ProductID, line.VariationID) - line.Quantity
	if others+quantity > stock {
		return nil, &StockLimitError{Available: stock}
	}
	if err := c.UpdateQuantity(index, quantity); err != nil {
		return nil, err
	}
	if err := s.Carts.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return newCartView(cartID, c), nil
}

func (s *CartService) Remove(ctx context.Context, cartID string, index int) (*types.CartView, error) {
	c, err := s.Carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := c.Remove(index); err != nil {
		return nil, err
	}
	if err := s.Carts.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return newCartView(cartID, c), nil
}

func (s *CartService) Clear(ctx context.Context, cartID string) error {
	return s.Carts.Del(ctx, cartID)
}

// stockOf 读取当前库存，商品被删除时视为 0
func (s *CartService) stockOf(ctx context.Context, line cart.Line) (int, error) {
	if line.VariationID != nil {
		v, err := s.VariationDao.FindById(ctx, *line.VariationID)
		if isNotFound(err) {
			return 0, nil
		}
		if err != nil {
			return 0, fmt.Errorf("load variation stock: %w", err)
		}
		return v.StockQuantity, nil
	}
	p, err := s.ProductDao.FindById(ctx, line.ProductID)
	if isNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load product stock: %w", err)
	}
	return p.StockQuantity, nil
}

// pickVariation 有规格的商品必须选择其中之一
func pickVariation(p *models.Product, variationID *string) (*models.ProductVariation, error) {
	if variationID == nil || *variationID == "" {
		if len(p.Variations) > 0 {
			return nil, ErrVariationRequired
		}
		return nil, nil
	}
	for i := range p.Variations {
		if p.Variations[i].ID == *variationID {
			return &p.Variations[i], nil
		}
	}
	return nil, ErrVariationMismatch
}

func newCartView(cartID string, c *cart.Cart) *types.CartView {
	view := &types.CartView{
		CartID:    cartID,
		Lines:     make([]types.CartLineView, 0, c.Len()),
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
	}
	for i, l := range c.Lines {
		view.Lines = append(view.Lines, types.CartLineView{Line: l, Index: i, Total: l.Total()})
	}
	return view
}
