package dao

import (
	"context"
	"storefront/models"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{
		Repo: NewRepo[models.Order](db),
	}
}

// TrackingRow 公开查询只允许读取的列
type TrackingRow struct {
	Ref              string                                `gorm:"column:ref"`
	OrderStatus      string                                `gorm:"column:order_status"`
	PaymentStatus    string                                `gorm:"column:payment_status"`
	TrackingNumber   *string                               `gorm:"column:tracking_number"`
	ShippingProvider *string                               `gorm:"column:shipping_provider"`
	ShippingNote     *string                               `gorm:"column:shipping_note"`
	Subtotal         decimal.Decimal                       `gorm:"column:subtotal"`
	ShippingFee      decimal.Decimal                       `gorm:"column:shipping_fee"`
	DiscountAmount   decimal.Decimal                       `gorm:"column:discount_amount"`
	Total            decimal.Decimal                       `gorm:"column:total"`
	OrderItems       datatypes.JSONSlice[models.OrderLine] `gorm:"column:order_items"`
	CreatedAt        time.Time                             `gorm:"column:created_at"`
}

var trackingColumns = []string{
	"ref", "order_status", "payment_status", "tracking_number", "shipping_provider",
	"shipping_note", "subtotal", "shipping_fee", "discount_amount", "total", "order_items", "created_at",
}

// FindTrackingView 受限读取，不返回客户信息
func (o *Order) FindTrackingView(ctx context.Context, id int64) (*TrackingRow, error) {
	var row TrackingRow
	err := o.Db.WithContext(ctx).Model(&models.Order{}).
		Select(trackingColumns).
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

type OrderFilter struct {
	OrderStatus   string
	PaymentStatus string
	Escalated     *bool
	Cursor        int64 // 上一页最后一条的 id
	Limit         int
}

// List 按 id 倒序游标分页，多查一条判断 hasMore
func (o *Order) List(ctx context.Context, f OrderFilter) ([]*models.Order, bool, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	orders := make([]*models.Order, 0)
	db := o.Db.WithContext(ctx)
	if f.OrderStatus != "" {
		db = db.Where("order_status = ?", f.OrderStatus)
	}
	if f.PaymentStatus != "" {
		db = db.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.Escalated != nil {
		if *f.Escalated {
			db = db.Where("escalated_at IS NOT NULL")
		} else {
			db = db.Where("escalated_at IS NULL")
		}
	}
	if f.Cursor > 0 {
		db = db.Where("id < ?", f.Cursor)
	}
	if err := db.Order("id desc").Limit(f.Limit + 1).Find(&orders).Error; err != nil {
		return nil, false, err
	}
	hasMore := false
	if len(orders) > f.Limit {
		hasMore = true
		orders = orders[:f.Limit]
	}
	return orders, hasMore, nil
}

// MarkEscalated 仅在仍未确认时打标，返回是否命中
func (o *Order) MarkEscalated(ctx context.Context, id int64, at time.Time) (bool, error) {
	res := o.Db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND order_status = ? AND payment_status = ? AND escalated_at IS NULL",
			id, models.OrderStatusNew, models.PaymentStatusPending).
		Update("escalated_at", at)
	return res.RowsAffected > 0, res.Error
}

// SalesRows 已确认且已付款的订单，用于销售统计
func (o *Order) SalesRows(ctx context.Context) ([]*models.Order, error) {
	orders := make([]*models.Order, 0)
	err := o.Db.WithContext(ctx).
		Select("id", "subtotal", "discount_amount", "shipping_fee", "total", "order_items", "order_status").
		Where("order_status IN ?", []string{
			models.OrderStatusConfirmed, models.OrderStatusProcessing,
			models.OrderStatusShipped, models.OrderStatusDelivered,
		}).
		Where("payment_status = ?", models.PaymentStatusPaid).
		Find(&orders).Error
	return orders, err
}
