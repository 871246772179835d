package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ToggleRequest 启用/停用
type ToggleRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type CategoryRequest struct {
	ID        string `json:"id"` // slug，创建时必填
	Name      string `json:"name" binding:"required"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
	Active    *bool  `json:"active"`
}

type PaymentMethodRequest struct {
	Name          string `json:"name" binding:"required"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	QRCodeURL     string `json:"qr_code_url"`
	SortOrder     int    `json:"sort_order"`
	Active        *bool  `json:"active"`
}

type COARequest struct {
	ProductName      string    `json:"product_name" binding:"required"`
	Batch            string    `json:"batch"`
	TestDate         time.Time `json:"test_date"`
	PurityPercentage float64   `json:"purity_percentage" binding:"gte=0,lte=100"`
	Quantity         string    `json:"quantity"`
	TaskNumber       string    `json:"task_number"`
	VerificationKey  string    `json:"verification_key"`
	ImageURL         string    `json:"image_url" binding:"required"`
	Featured         bool      `json:"featured"`
	Laboratory       string    `json:"laboratory"`
}

type FAQRequest struct {
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	Category   string `json:"category" binding:"required"`
	OrderIndex int    `json:"order_index"`
	IsActive   *bool  `json:"is_active"`
}

// FAQGroup 前台按分类分组展示
type FAQGroup struct {
	Category string      `json:"category"`
	Items    []FAQEntity `json:"items"`
}

type FAQEntity struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type PromoRequest struct {
	Code              string          `json:"code" binding:"required"`
	DiscountType      string          `json:"discount_type" binding:"required,oneof=fixed percentage"`
	DiscountValue     decimal.Decimal `json:"discount_value"`
	MinPurchaseAmount decimal.Decimal `json:"min_purchase_amount"`
	UsageLimit        *int            `json:"usage_limit" binding:"omitempty,min=1"`
	Active            *bool           `json:"active"`
	EndDate           *time.Time      `json:"end_date"`
}

// PromoCheckRequest 结算页预览优惠
type PromoCheckRequest struct {
	Code string `json:"code" binding:"required"`
}

type PromoCheckResponse struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type ShippingLocationRequest struct {
	ID        string          `json:"id"` // 区域标签，创建时必填
	Name      string          `json:"name" binding:"required"`
	Fee       decimal.Decimal `json:"fee"`
	IsActive  *bool           `json:"is_active"`
	SortOrder int             `json:"sort_order"`
}
