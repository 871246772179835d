package service

import (
	"context"
	"errors"
	"storefront/config"
	"storefront/dao"
	"storefront/models"
	"storefront/pkg/log"
	"storefront/pkg/tracking"
	"storefront/pkg/utils"
	"storefront/types"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	// Track 按对外编号查询，只返回受限字段
	Track(ctx context.Context, ref string) (*types.TrackingView, error)
	List(ctx context.Context, req *types.OrderListRequest) (*types.OrderListResponse, error)
	Get(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdatePaymentStatus(ctx context.Context, id int64, status string) error
	UpdateShipping(ctx context.Context, id int64, req *types.ShippingInfoRequest) error
	Delete(ctx context.Context, id int64) error
}

type OrderService struct {
	OrderDao *dao.Order
	App      *config.App
}

func (s *OrderService) Track(ctx context.Context, ref string) (*types.TrackingView, error) {
	id, err := utils.DecodeHashID(s.App.HashSalt, strings.TrimSpace(ref))
	if err != nil {
		return nil, ErrOrderNotFound
	}
	row, err := s.OrderDao.FindTrackingView(ctx, id)
	if isNotFound(err) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	step := tracking.Step(row.OrderStatus)
	view := &types.TrackingView{
		Ref:              row.Ref,
		OrderStatus:      row.OrderStatus,
		PaymentStatus:    row.PaymentStatus,
		Step:             step,
		Progress:         tracking.Progress(step),
		Steps:            tracking.Steps,
		TrackingNumber:   row.TrackingNumber,
		ShippingProvider: row.ShippingProvider,
		ShippingNote:     row.ShippingNote,
		Subtotal:         row.Subtotal,
		DiscountAmount:   row.DiscountAmount,
		ShippingFee:      row.ShippingFee,
		Total:            row.Total,
		Items:            make([]types.TrackingItem, 0, len(row.OrderItems)),
		CreatedAt:        row.CreatedAt,
	}
	for _, item := range row.OrderItems {
		view.Items = append(view.Items, types.TrackingItem{
			ProductName:   item.ProductName,
			VariationName: item.VariationName,
			Quantity:      item.Quantity,
		})
	}
	return view, nil
}

func (s *OrderService) List(ctx context.Context, req *types.OrderListRequest) (*types.OrderListResponse, error) {
	if req.OrderStatus != "" && !models.IsOrderStatus(req.OrderStatus) {
		return nil, invalid("unknown order status %q", req.OrderStatus)
	}
	if req.PaymentStatus != "" && !models.IsPaymentStatus(req.PaymentStatus) {
		return nil, invalid("unknown payment status %q", req.PaymentStatus)
	}
	var cursor int64
	if req.Cursor != "" {
		c, err := strconv.ParseInt(req.Cursor, 10, 64)
		if err != nil {
			return nil, invalid("invalid cursor")
		}
		cursor = c
	}
	orders, hasMore, err := s.OrderDao.List(ctx, dao.OrderFilter{
		OrderStatus:   req.OrderStatus,
		PaymentStatus: req.PaymentStatus,
		Escalated:     req.Escalated,
		Cursor:        cursor,
		Limit:         req.Limit,
	})
	if err != nil {
		return nil, err
	}
	resp := &types.OrderListResponse{List: orders, HasMore: hasMore}
	if hasMore && len(orders) > 0 {
		resp.NextCursor = strconv.FormatInt(orders[len(orders)-1].ID, 10)
	}
	return resp, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.OrderDao.FindById(ctx, id)
	if isNotFound(err) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

// UpdateStatus 允许设置为任意合法状态
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !models.IsOrderStatus(status) {
		return invalid("unknown order status %q", status)
	}
	if err := s.update(ctx, id, map[string]any{"order_status": status}); err != nil {
		return err
	}
	log.L.Info("order status updated", zap.Int64("order_id", id), zap.String("status", status))
	return nil
}

func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id int64, status string) error {
	if !models.IsPaymentStatus(status) {
		return invalid("unknown payment status %q", status)
	}
	return s.update(ctx, id, map[string]any{"payment_status": status})
}

func (s *OrderService) UpdateShipping(ctx context.Context, id int64, req *types.ShippingInfoRequest) error {
	return s.update(ctx, id, map[string]any{
		"tracking_number":   utils.StrPtr(req.TrackingNumber),
		"shipping_provider": utils.StrPtr(req.ShippingProvider),
		"shipping_note":     utils.StrPtr(req.ShippingNote),
	})
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	err := s.OrderDao.Delete(ctx, id)
	if isNotFound(err) {
		return ErrOrderNotFound
	}
	return err
}

func (s *OrderService) update(ctx context.Context, id int64, data map[string]any) error {
	err := s.OrderDao.UpdateById(ctx, id, data)
	if errors.Is(err, ErrOrderNotFound) || isNotFound(err) {
		return ErrOrderNotFound
	}
	return err
}
