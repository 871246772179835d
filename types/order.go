package types

import (
	"storefront/models"
	"time"

	"github.com/shopspring/decimal"
)

// OrderListRequest 后台订单列表，按 id 倒序游标分页
type OrderListRequest struct {
	OrderStatus   string `form:"status"`
	PaymentStatus string `form:"payment_status"`
	Escalated     *bool  `form:"escalated"` // true 只看超时未确认的订单
	Cursor        string `form:"cursor"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type OrderListResponse struct {
	List       []*models.Order `json:"list"`
	NextCursor string          `json:"next_cursor,omitempty"`
	HasMore    bool            `json:"has_more"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"order_status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// ShippingInfoRequest 物流信息，空字符串表示清除
type ShippingInfoRequest struct {
	TrackingNumber   string `json:"tracking_number"`
	ShippingProvider string `json:"shipping_provider"`
	ShippingNote     string `json:"shipping_note"`
}

// TrackingItem 公开查询只返回名称与数量
type TrackingItem struct {
	ProductName   string  `json:"product_name"`
	VariationName *string `json:"variation_name,omitempty"`
	Quantity      int     `json:"quantity"`
}

// TrackingView 订单追踪结果，不含客户信息
type TrackingView struct {
	Ref              string          `json:"ref"`
	OrderStatus      string          `json:"order_status"`
	PaymentStatus    string          `json:"payment_status"`
	Step             int             `json:"step"`     // -1 表示已取消
	Progress         int             `json:"progress"` // 0-100
	Steps            []string        `json:"steps"`
	TrackingNumber   *string         `json:"tracking_number"`
	ShippingProvider *string         `json:"shipping_provider"`
	ShippingNote     *string         `json:"shipping_note"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	ShippingFee      decimal.Decimal `json:"shipping_fee"`
	Total            decimal.Decimal `json:"total"`
	Items            []TrackingItem  `json:"items"`
	CreatedAt        time.Time       `json:"created_at"`
}
