package types

import "github.com/shopspring/decimal"

// InventoryStats 库存看板
type InventoryStats struct {
	TotalSales     decimal.Decimal `json:"total_sales"` // 已确认且已付款订单总额
	UnitsSold      int             `json:"units_sold"`
	InventoryValue decimal.Decimal `json:"inventory_value"` // 库存 x 售价
	ProductCount   int             `json:"product_count"`
	LowStockCount  int             `json:"low_stock_count"`
	OutOfStock     int             `json:"out_of_stock_count"`
}

type InventoryListRequest struct {
	Filter string `form:"filter" binding:"omitempty,oneof=all in-stock low-stock out-of-stock"`
}

// InventoryItem 有规格的商品按规格逐行展示
type InventoryItem struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	VariationID   *string         `json:"variation_id,omitempty"`
	VariationName *string         `json:"variation_name,omitempty"`
	StockQuantity int             `json:"stock_quantity"`
	Price         decimal.Decimal `json:"price"`
	Value         decimal.Decimal `json:"value"`
	Status        string          `json:"status"` // in-stock | low-stock | out-of-stock
}
