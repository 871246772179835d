package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DiscountTypeFixed      = "fixed"
	DiscountTypePercentage = "percentage"
)

type PromoCode struct {
	ID                string          `gorm:"primaryKey;size:36;column:id" json:"id"`
	Code              string          `gorm:"size:64;not null;uniqueIndex:idx_promo_code;column:code" json:"code"`
	DiscountType      string          `gorm:"size:16;not null;default:fixed;column:discount_type" json:"discount_type"`
	DiscountValue     decimal.Decimal `gorm:"type:decimal(12,2);not null;column:discount_value" json:"discount_value"`
	MinPurchaseAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;column:min_purchase_amount" json:"min_purchase_amount"`
	UsageLimit        *int            `gorm:"column:usage_limit" json:"usage_limit"`
	UsageCount        int             `gorm:"not null;default:0;column:usage_count" json:"usage_count"`
	Active            bool            `gorm:"not null;column:active" json:"active"`
	EndDate           *time.Time      `gorm:"column:end_date" json:"end_date"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PromoCode) TableName() string {
	return "promo_codes"
}

func (p *PromoCode) BeforeCreate(*gorm.DB) error {
	newID(&p.ID)
	return nil
}

// ShippingLocation 运费分区，ID 为大写区域标签 (NCR, LUZON ...)
type ShippingLocation struct {
	ID        string          `gorm:"primaryKey;size:64;column:id" json:"id"`
	Name      string          `gorm:"size:128;not null;column:name" json:"name"`
	Fee       decimal.Decimal `gorm:"type:decimal(12,2);not null;column:fee" json:"fee"`
	IsActive  bool            `gorm:"not null;column:is_active" json:"is_active"`
	SortOrder int             `gorm:"not null;default:0;column:sort_order" json:"sort_order"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ShippingLocation) TableName() string {
	return "shipping_locations"
}
