package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"storefront/config"
	"storefront/dao"
	"storefront/models"
	"storefront/pkg/log"
	"storefront/pkg/rocketmq"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// EventPublisher 延迟消息投递，由 pkg/rocketmq.Publisher 实现
type EventPublisher interface {
	SendDelayed(ctx context.Context, topic, key string, body []byte, level int) error
}

// OrderPlacedEvent order.placed 消息体
type OrderPlacedEvent struct {
	OrderID   string    `json:"order_id"`
	Ref       string    `json:"ref"`
	Total     string    `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

var _ IOrderEventService = (*OrderEventService)(nil)

type IOrderEventService interface {
	// PublishPlaced 投递失败只记录日志，不影响下单
	PublishPlaced(ctx context.Context, order *models.Order)
	// HandlePlaced 确认窗口结束后仍未确认的订单打上 escalated_at
	HandlePlaced(ctx context.Context, body []byte) error
}

type OrderEventService struct {
	Publisher EventPublisher
	OrderDao  *dao.Order
	MQ        *config.RocketMQConfig
}

func (s *OrderEventService) PublishPlaced(ctx context.Context, order *models.Order) {
	if s.Publisher == nil {
		return
	}
	body, err := json.Marshal(OrderPlacedEvent{
		OrderID:   strconv.FormatInt(order.ID, 10),
		Ref:       order.Ref,
		Total:     order.Total.StringFixed(2),
		CreatedAt: order.CreatedAt,
	})
	if err != nil {
		log.L.Error("marshal order.placed", zap.Error(err))
		return
	}
	err = s.Publisher.SendDelayed(ctx, s.MQ.OrderTopic, order.Ref, body, s.MQ.ConfirmDelayLevel)
	if errors.Is(err, rocketmq.ErrDisabled) {
		return
	}
	if err != nil {
		log.L.Warn("publish order.placed failed", zap.String("ref", order.Ref), zap.Error(err))
	}
}

func (s *OrderEventService) HandlePlaced(ctx context.Context, body []byte) error {
	var ev OrderPlacedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		// 格式错误的消息重投也没有意义
		log.L.Error("drop malformed order.placed", zap.ByteString("body", body), zap.Error(err))
		return nil
	}
	id, err := strconv.ParseInt(ev.OrderID, 10, 64)
	if err != nil {
		log.L.Error("drop order.placed with bad id", zap.String("order_id", ev.OrderID))
		return nil
	}
	escalated, err := s.OrderDao.MarkEscalated(ctx, id, time.Now())
	if err != nil {
		return fmt.Errorf("mark escalated: %w", err)
	}
	if escalated {
		log.L.Warn("order still awaiting confirmation", zap.String("ref", ev.Ref), zap.String("total", ev.Total))
		return nil
	}
	log.L.Info("order already confirmed or escalated", zap.String("ref", ev.Ref))
	return nil
}
