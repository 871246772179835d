package types

import (
	"storefront/models"

	"github.com/shopspring/decimal"
)

// ProductListRequest 前台商品列表
type ProductListRequest struct {
	Query    string `form:"q"`                                                // 名称/描述关键字
	Sort     string `form:"sort" binding:"omitempty,oneof=name price purity"` // 排序字段
	Category string `form:"category"`                                         // 分类 ID，all 表示全部
}

// VariationView 规格及解析后的价格
type VariationView struct {
	models.ProductVariation
	CurrentPrice    decimal.Decimal `json:"current_price"`    // 实际售价
	OriginalPrice   decimal.Decimal `json:"original_price"`   // 原价
	DiscountPercent int             `json:"discount_percent"` // 折扣百分比，0 表示无折扣
	InStock         bool            `json:"in_stock"`
}

// ProductView 商品及解析后的价格
type ProductView struct {
	models.Product
	Variations      []VariationView `json:"variations"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountPercent int             `json:"discount_percent"`
	InStock         bool            `json:"in_stock"`
	IsSet           bool            `json:"is_set"` // 套装商品
}

// ProductRequest 管理后台创建/更新商品
type ProductRequest struct {
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	Category          string              `json:"category"`
	BasePrice         decimal.Decimal     `json:"base_price"`
	DiscountPrice     decimal.NullDecimal `json:"discount_price"`
	DiscountActive    bool                `json:"discount_active"`
	PurityPercentage  float64             `json:"purity_percentage" binding:"gte=0,lte=100"`
	MolecularWeight   string              `json:"molecular_weight"`
	CasNumber         string              `json:"cas_number"`
	Sequence          string              `json:"sequence"`
	StorageConditions string              `json:"storage_conditions"`
	StockQuantity     int                 `json:"stock_quantity" binding:"gte=0"`
	Available         *bool               `json:"available"` // 缺省为 true
	Featured          bool                `json:"featured"`
	Inclusions        []string            `json:"inclusions"`
	ImageURL          string              `json:"image_url"`
	SafetySheetURL    string              `json:"safety_sheet_url"`
	Variations        []VariationRequest  `json:"variations"` // 仅创建时使用
}

// VariationRequest 管理后台创建/更新规格
type VariationRequest struct {
	Name           string              `json:"name"`
	QuantityMg     float64             `json:"quantity_mg"`
	Price          decimal.Decimal     `json:"price"`
	DiscountPrice  decimal.NullDecimal `json:"discount_price"`
	DiscountActive bool                `json:"discount_active"`
	StockQuantity  int                 `json:"stock_quantity" binding:"gte=0"`
}

// StockRequest 修改库存
type StockRequest struct {
	StockQuantity *int `json:"stock_quantity" binding:"required,gte=0"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// BulkDeleteResponse 逐个删除的结果，失败不回滚
type BulkDeleteResponse struct {
	Deleted int      `json:"deleted"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}
