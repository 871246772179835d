package service

import (
	"context"
	"errors"
	"fmt"
	"storefront/config"
	"storefront/dao"
	"storefront/dao/cache"
	"storefront/models"
	"storefront/pkg/cart"
	"storefront/pkg/checkout"
	"storefront/pkg/database"
	"storefront/pkg/log"
	"storefront/pkg/messaging"
	"storefront/pkg/pricing"
	"storefront/pkg/snowflake"
	"storefront/pkg/utils"
	"storefront/types"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ ICheckoutService = (*CheckoutService)(nil)

type ICheckoutService interface {
	Get(ctx context.Context, cartID string) (*types.CheckoutView, error)
	SubmitDetails(ctx context.Context, cartID string, req *types.DetailsRequest) (*types.CheckoutView, error)
	// Back 回到填写资料阶段，已填内容保留
	Back(ctx context.Context, cartID string) (*types.CheckoutView, error)
	SelectPayment(ctx context.Context, cartID string, req *types.PaymentRequest) (*types.CheckoutView, error)
	// Submit 写入订单；失败时流程停留在 payment，购物车不变
	Submit(ctx context.Context, cartID string) (*types.SubmitResponse, error)
	// Reset 确认后重新开始
	Reset(ctx context.Context, cartID string) error
}

type CheckoutService struct {
	Carts            *cache.CartStorage
	Flows            *cache.FlowStorage
	PaymentMethodDao *dao.PaymentMethod
	PromoDao         *dao.Promo
	OrderDao         *dao.Order
	Shipping         IShippingService
	Events           IOrderEventService
	Config           *config.Config
}

func (s *CheckoutService) load(ctx context.Context, cartID string) (*checkout.Flow, *cart.Cart, error) {
	flow, err := s.Flows.Get(ctx, cartID)
	if err != nil {
		return nil, nil, fmt.Errorf("load checkout: %w", err)
	}
	c, err := s.Carts.Get(ctx, cartID)
	if err != nil {
		return nil, nil, fmt.Errorf("load cart: %w", err)
	}
	return flow, c, nil
}

func (s *CheckoutService) Get(ctx context.Context, cartID string) (*types.CheckoutView, error) {
	flow, c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, flow, c), nil
}

func (s *CheckoutService) SubmitDetails(ctx context.Context, cartID string, req *types.DetailsRequest) (*types.CheckoutView, error) {
	flow, c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() && flow.Stage != checkout.StageConfirmation {
		return nil, ErrEmptyCart
	}
	details := req.ToDetails()
	if strings.TrimSpace(details.Region) != "" {
		if _, err := s.Shipping.Fee(ctx, details.Region); err != nil {
			return nil, err
		}
	}
	stepErr := flow.SubmitDetails(details)
	if errors.Is(stepErr, checkout.ErrFinished) {
		return nil, stepErr
	}
	// 未填完也保存草稿
	if err := s.Flows.Save(ctx, cartID, flow); err != nil {
		return nil, err
	}
	if stepErr != nil {
		return nil, stepErr
	}
	return s.view(ctx, flow, c), nil
}

func (s *CheckoutService) Back(ctx context.Context, cartID string) (*types.CheckoutView, error) {
	flow, c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := flow.Back(); err != nil {
		return nil, err
	}
	if err := s.Flows.Save(ctx, cartID, flow); err != nil {
		return nil, err
	}
	return s.view(ctx, flow, c), nil
}

func (s *CheckoutService) SelectPayment(ctx context.Context, cartID string, req *types.PaymentRequest) (*types.CheckoutView, error) {
	flow, c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	payment := req.ToPayment()
	payment.PromoCode = strings.ToUpper(strings.TrimSpace(payment.PromoCode))
	if payment.PaymentMethodID != "" {
		if _, err := s.paymentMethod(ctx, payment.PaymentMethodID); err != nil {
			return nil, err
		}
	}
	if payment.PromoCode != "" {
		if _, _, err := s.promoDiscount(ctx, payment.PromoCode, c.Total()); err != nil {
			return nil, err
		}
	}
	if err := flow.SelectPayment(payment); err != nil {
		return nil, err
	}
	if err := s.Flows.Save(ctx, cartID, flow); err != nil {
		return nil, err
	}
	return s.view(ctx, flow, c), nil
}

func (s *CheckoutService) Submit(ctx context.Context, cartID string) (*types.SubmitResponse, error) {
	token, ok, err := s.Flows.Lock(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("lock checkout: %w", err)
	}
	// 重复点击提交，另一个请求正在下单
	if !ok {
		return nil, checkout.ErrWrongStage
	}
	defer func() {
		if err := s.Flows.Unlock(context.WithoutCancel(ctx), cartID, token); err != nil {
			log.L.Warn("unlock checkout", zap.String("cart_id", cartID), zap.Error(err))
		}
	}()

	flow, c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := flow.Ready(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	method, err := s.paymentMethod(ctx, flow.Payment.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	region, err := s.Shipping.Fee(ctx, flow.Details.Region)
	if err != nil {
		return nil, err
	}

	subtotal := c.Total()
	discount := decimal.Zero
	var promo *models.PromoCode
	if flow.Payment.PromoCode != "" {
		promo, discount, err = s.promoDiscount(ctx, flow.Payment.PromoCode, subtotal)
		if err != nil {
			return nil, err
		}
	}

	order := s.buildOrder(flow, c, method, region.Fee, promo, discount)
	err = s.OrderDao.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if promo == nil {
			return nil
		}
		ok, err := s.PromoDao.IncrementUsage(tx, promo.ID)
		if err != nil {
			return err
		}
		if !ok {
			return pricing.ErrPromoExhausted
		}
		return nil
	})
	if errors.Is(err, pricing.ErrPromoExhausted) {
		return nil, err
	}
	if err != nil {
		log.L.Error("insert order failed", zap.String("cart_id", cartID), zap.Error(err))
		return nil, &SubmitError{Err: err, Hint: database.Remediation(err)}
	}

	totals := types.Totals{
		Subtotal:    order.Subtotal,
		Discount:    order.DiscountAmount,
		ShippingFee: order.ShippingFee,
		Total:       order.Total,
	}
	message := messaging.Summary{
		ShopName:      s.Config.Shop.Name,
		Order:         order,
		RegionName:    region.Name,
		AccountNumber: method.AccountNumber,
	}.Text()
	links := channelLinks(s.Config.Shop.Messaging, message)

	// 订单已落库，以下失败只记录日志
	if err := flow.Confirm(order.Ref, message, totals); err != nil {
		log.L.Error("confirm checkout flow", zap.String("ref", order.Ref), zap.Error(err))
	}
	if err := s.Flows.Save(ctx, cartID, flow); err != nil {
		log.L.Error("save checkout flow", zap.String("ref", order.Ref), zap.Error(err))
	}
	if err := s.Carts.Del(ctx, cartID); err != nil {
		log.L.Error("clear cart", zap.String("ref", order.Ref), zap.Error(err))
	}
	s.Events.PublishPlaced(ctx, order)

	log.L.Info("order placed", zap.String("ref", order.Ref), zap.String("total", order.Total.StringFixed(2)))
	return &types.SubmitResponse{
		OrderRef: order.Ref,
		Totals:   totals,
		Message:  message,
		Links:    links,
	}, nil
}

func (s *CheckoutService) Reset(ctx context.Context, cartID string) error {
	return s.Flows.Del(ctx, cartID)
}

func (s *CheckoutService) buildOrder(flow *checkout.Flow, c *cart.Cart, method *models.PaymentMethod,
	fee decimal.Decimal, promo *models.PromoCode, discount decimal.Decimal) *models.Order {
	id := snowflake.GenOrderID()
	d := flow.Details
	lines := make([]models.OrderLine, 0, c.Len())
	for _, l := range c.Lines {
		lines = append(lines, models.OrderLine{
			ProductID:        l.ProductID,
			ProductName:      l.ProductName,
			VariationID:      l.VariationID,
			VariationName:    l.VariationName,
			Quantity:         l.Quantity,
			Price:            l.UnitPrice,
			Total:            l.Total(),
			PurityPercentage: l.PurityPercentage,
		})
	}
	subtotal := c.Total()
	order := &models.Order{
		ID:                id,
		Ref:               utils.GenHashID(s.Config.App.HashSalt, id),
		CustomerName:      strings.TrimSpace(d.FullName),
		CustomerEmail:     strings.TrimSpace(d.Email),
		CustomerPhone:     strings.TrimSpace(d.Phone),
		ShippingAddress:   strings.TrimSpace(d.Address),
		ShippingCity:      strings.TrimSpace(d.City),
		ShippingState:     strings.TrimSpace(d.State),
		ShippingZipCode:   strings.TrimSpace(d.ZipCode),
		ShippingCountry:   strings.TrimSpace(d.Country),
		ShippingRegion:    strings.ToUpper(strings.TrimSpace(d.Region)),
		OrderItems:        datatypes.NewJSONSlice(lines),
		Subtotal:          subtotal,
		DiscountAmount:    discount,
		ShippingFee:       fee,
		Total:             subtotal.Sub(discount).Add(fee),
		PaymentMethodID:   &method.ID,
		PaymentMethodName: &method.Name,
		ContactChannel:    string(flow.Payment.ContactChannel),
		Notes:             utils.StrPtr(flow.Payment.Notes),
		OrderStatus:       models.OrderStatusNew,
		PaymentStatus:     models.PaymentStatusPending,
		CreatedAt:         time.Now(),
	}
	if promo != nil {
		order.PromoCode = &promo.Code
	}
	return order
}

func (s *CheckoutService) paymentMethod(ctx context.Context, id string) (*models.PaymentMethod, error) {
	m, err := s.PaymentMethodDao.FindById(ctx, id)
	if isNotFound(err) {
		return nil, ErrPaymentMethod
	}
	if err != nil {
		return nil, err
	}
	if !m.Active {
		return nil, ErrPaymentMethod
	}
	return m, nil
}

func (s *CheckoutService) promoDiscount(ctx context.Context, code string, subtotal decimal.Decimal) (*models.PromoCode, decimal.Decimal, error) {
	promo, err := s.PromoDao.FindByCode(ctx, code)
	if isNotFound(err) {
		return nil, decimal.Zero, ErrPromoNotFound
	}
	if err != nil {
		return nil, decimal.Zero, err
	}
	off, err := pricing.ApplyPromo(promo, subtotal, time.Now())
	if err != nil {
		return nil, decimal.Zero, err
	}
	return promo, off, nil
}

// view 预览金额；区域或优惠码无效时按 0 计算，确认后返回订单金额
func (s *CheckoutService) view(ctx context.Context, flow *checkout.Flow, c *cart.Cart) *types.CheckoutView {
	if flow.Stage == checkout.StageConfirmation && flow.Totals != nil {
		return &types.CheckoutView{
			Stage:    flow.Stage,
			Details:  flow.Details,
			Payment:  flow.Payment,
			Totals:   *flow.Totals,
			OrderRef: flow.OrderRef,
			Message:  flow.Message,
			Links:    channelLinks(s.Config.Shop.Messaging, flow.Message),
		}
	}
	subtotal := c.Total()
	totals := types.Totals{Subtotal: subtotal, Discount: decimal.Zero, ShippingFee: decimal.Zero}
	if flow.Details.Region != "" {
		if loc, err := s.Shipping.Fee(ctx, flow.Details.Region); err == nil {
			totals.ShippingFee = loc.Fee
		}
	}
	if flow.Payment.PromoCode != "" {
		if _, off, err := s.promoDiscount(ctx, flow.Payment.PromoCode, subtotal); err == nil {
			totals.Discount = off
		}
	}
	totals.Total = subtotal.Sub(totals.Discount).Add(totals.ShippingFee)

	view := &types.CheckoutView{
		Stage:    flow.Stage,
		Details:  flow.Details,
		Payment:  flow.Payment,
		Totals:   totals,
		OrderRef: flow.OrderRef,
		Message:  flow.Message,
	}
	if flow.Stage == checkout.StageConfirmation {
		view.Links = channelLinks(s.Config.Shop.Messaging, flow.Message)
	}
	return view
}

func channelLinks(handles config.Messaging, message string) map[string]string {
	links := make(map[string]string)
	for ch, link := range messaging.Links(handles, message) {
		links[string(ch)] = link
	}
	return links
}
