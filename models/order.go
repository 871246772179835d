package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	OrderStatusNew        = "new"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// OrderLine 下单时冻结的商品快照，与后续商品修改无关
type OrderLine struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	VariationID      *string         `json:"variation_id"`
	VariationName    *string         `json:"variation_name"`
	Quantity         int             `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	Total            decimal.Decimal `json:"total"`
	PurityPercentage float64         `json:"purity_percentage"`
}

// Order 订单主表
type Order struct {
	ID                int64                          `gorm:"primaryKey;autoIncrement:false;column:id" json:"id,string"`
	Ref               string                         `gorm:"size:32;not null;uniqueIndex:idx_order_ref;column:ref" json:"ref"`
	CustomerName      string                         `gorm:"size:255;not null;column:customer_name" json:"customer_name"`
	CustomerEmail     string                         `gorm:"size:255;not null;column:customer_email" json:"customer_email"`
	CustomerPhone     string                         `gorm:"size:64;not null;column:customer_phone" json:"customer_phone"`
	ShippingAddress   string                         `gorm:"size:512;not null;column:shipping_address" json:"shipping_address"`
	ShippingCity      string                         `gorm:"size:128;not null;column:shipping_city" json:"shipping_city"`
	ShippingState     string                         `gorm:"size:128;not null;column:shipping_state" json:"shipping_state"`
	ShippingZipCode   string                         `gorm:"size:32;not null;column:shipping_zip_code" json:"shipping_zip_code"`
	ShippingCountry   string                         `gorm:"size:64;not null;column:shipping_country" json:"shipping_country"`
	ShippingRegion    string                         `gorm:"size:64;not null;column:shipping_region" json:"shipping_region"`
	OrderItems        datatypes.JSONSlice[OrderLine] `gorm:"column:order_items;not null" json:"order_items"`
	Subtotal          decimal.Decimal                `gorm:"type:decimal(12,2);not null;column:subtotal" json:"subtotal"`
	PromoCode         *string                        `gorm:"size:64;column:promo_code" json:"promo_code"`
	DiscountAmount    decimal.Decimal                `gorm:"type:decimal(12,2);not null;default:0;column:discount_amount" json:"discount_amount"`
	ShippingFee       decimal.Decimal                `gorm:"type:decimal(12,2);not null;default:0;column:shipping_fee" json:"shipping_fee"`
	Total             decimal.Decimal                `gorm:"type:decimal(12,2);not null;column:total" json:"total"`
	PaymentMethodID   *string                        `gorm:"size:36;column:payment_method_id" json:"payment_method_id"`
	PaymentMethodName *string                        `gorm:"size:128;column:payment_method_name" json:"payment_method_name"`
	ContactChannel    string                         `gorm:"size:32;column:contact_channel" json:"contact_channel"`
	Notes             *string                        `gorm:"type:text;column:notes" json:"notes"`
	OrderStatus       string                         `gorm:"size:16;not null;default:new;index:idx_order_status;column:order_status" json:"order_status"`
	PaymentStatus     string                         `gorm:"size:16;not null;default:pending;column:payment_status" json:"payment_status"`
	TrackingNumber    *string                        `gorm:"size:128;column:tracking_number" json:"tracking_number"`
	ShippingProvider  *string                        `gorm:"size:64;column:shipping_provider" json:"shipping_provider"`
	ShippingNote      *string                        `gorm:"size:512;column:shipping_note" json:"shipping_note"`
	EscalatedAt       *time.Time                     `gorm:"column:escalated_at" json:"escalated_at"`
	CreatedAt         time.Time                      `gorm:"column:created_at;autoCreateTime;index:idx_created_at" json:"created_at"`
	UpdatedAt         time.Time                      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// AwaitingConfirmation 仍在等待客户在聊天渠道确认
func (o *Order) AwaitingConfirmation() bool {
	return o.OrderStatus == OrderStatusNew && o.PaymentStatus == PaymentStatusPending
}

// IsOrderStatus 合法订单状态
func IsOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func IsPaymentStatus(s string) bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid
}
