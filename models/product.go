package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product 对应数据库中的 products 表
type Product struct {
	ID                string                      `gorm:"primaryKey;size:36;column:id" json:"id"`
	Name              string                      `gorm:"size:255;not null;column:name" json:"name"`
	Description       string                      `gorm:"type:text;column:description" json:"description"`
	Category          string                      `gorm:"size:64;index:idx_category;column:category" json:"category"`
	BasePrice         decimal.Decimal             `gorm:"type:decimal(12,2);not null;column:base_price" json:"base_price"`
	DiscountPrice     decimal.NullDecimal         `gorm:"type:decimal(12,2);column:discount_price" json:"discount_price"`
	DiscountActive    bool                        `gorm:"not null;default:false;column:discount_active" json:"discount_active"`
	PurityPercentage  float64                     `gorm:"not null;default:0;column:purity_percentage" json:"purity_percentage"`
	MolecularWeight   *string                     `gorm:"size:64;column:molecular_weight" json:"molecular_weight"`
	CasNumber         *string                     `gorm:"size:64;column:cas_number" json:"cas_number"`
	Sequence          *string                     `gorm:"type:text;column:sequence" json:"sequence"`
	StorageConditions string                      `gorm:"size:255;column:storage_conditions" json:"storage_conditions"`
	StockQuantity     int                         `gorm:"not null;default:0;column:stock_quantity" json:"stock_quantity"`
	Available         bool                        `gorm:"not null;index:idx_available;column:available" json:"available"`
	Featured          bool                        `gorm:"not null;default:false;column:featured" json:"featured"`
	Inclusions        datatypes.JSONSlice[string] `gorm:"column:inclusions" json:"inclusions"` // 非空即为套装
	ImageURL          *string                     `gorm:"size:512;column:image_url" json:"image_url"`
	SafetySheetURL    *string                     `gorm:"size:512;column:safety_sheet_url" json:"safety_sheet_url"`
	CreatedAt         time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Variations []ProductVariation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variations,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	newID(&p.ID)
	return nil
}

// IsSet 带 inclusions 的商品按套装展示
func (p *Product) IsSet() bool {
	return len(p.Inclusions) > 0
}

// HasAnyStock 有规格时看规格库存，否则看商品库存
func (p *Product) HasAnyStock() bool {
	if len(p.Variations) > 0 {
		for _, v := range p.Variations {
			if v.StockQuantity > 0 {
				return true
			}
		}
		return false
	}
	return p.StockQuantity > 0
}

// ProductVariation 商品规格（容量），价格独立于商品
type ProductVariation struct {
	ID             string              `gorm:"primaryKey;size:36;column:id" json:"id"`
	ProductID      string              `gorm:"size:36;not null;index:idx_product_id;column:product_id" json:"product_id"`
	Name           string              `gorm:"size:64;not null;column:name" json:"name"`
	QuantityMg     float64             `gorm:"not null;column:quantity_mg" json:"quantity_mg"`
	Price          decimal.Decimal     `gorm:"type:decimal(12,2);not null;column:price" json:"price"`
	DiscountPrice  decimal.NullDecimal `gorm:"type:decimal(12,2);column:discount_price" json:"discount_price"`
	DiscountActive bool                `gorm:"not null;default:false;column:discount_active" json:"discount_active"`
	StockQuantity  int                 `gorm:"not null;default:0;column:stock_quantity" json:"stock_quantity"`
	CreatedAt      time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProductVariation) TableName() string {
	return "product_variations"
}

func (v *ProductVariation) BeforeCreate(*gorm.DB) error {
	newID(&v.ID)
	return nil
}
