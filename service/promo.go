package service

import (
	"context"
	"storefront/dao"
	"storefront/dao/cache"
	"storefront/models"
	"storefront/pkg/database"
	"storefront/pkg/pricing"
	"storefront/types"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var _ IPromoService = (*PromoService)(nil)

type IPromoService interface {
	// Preview 按当前购物车金额试算优惠
	Preview(ctx context.Context, cartID, code string) (*types.PromoCheckResponse, error)
	List(ctx context.Context) ([]*models.PromoCode, error)
	Create(ctx context.Context, req *types.PromoRequest) (*models.PromoCode, error)
	Update(ctx context.Context, id string, req *types.PromoRequest) error
	Toggle(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type PromoService struct {
	PromoDao *dao.Promo
	Carts    *cache.CartStorage
}

func validatePromo(req *types.PromoRequest) error {
	if strings.TrimSpace(req.Code) == "" {
		return invalid("promo code is required")
	}
	if !req.DiscountValue.IsPositive() {
		return invalid("discount value must be greater than zero")
	}
	if req.DiscountType == models.DiscountTypePercentage && req.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		return invalid("percentage discount cannot exceed 100")
	}
	if req.MinPurchaseAmount.IsNegative() {
		return invalid("minimum purchase must not be negative")
	}
	return nil
}

func (s *PromoService) Preview(ctx context.Context, cartID, code string) (*types.PromoCheckResponse, error) {
	c, err := s.Carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	promo, err := s.PromoDao.FindByCode(ctx, code)
	if isNotFound(err) {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, err
	}
	subtotal := c.Total()
	off, err := pricing.ApplyPromo(promo, subtotal, time.Now())
	if err != nil {
		return nil, err
	}
	return &types.PromoCheckResponse{Code: promo.Code, Discount: off, Subtotal: subtotal}, nil
}

func (s *PromoService) List(ctx context.Context) ([]*models.PromoCode, error) {
	return s.PromoDao.FindAll(ctx, "created_at desc")
}

func (s *PromoService) Create(ctx context.Context, req *types.PromoRequest) (*models.PromoCode, error) {
	if err := validatePromo(req); err != nil {
		return nil, err
	}
	p := &models.PromoCode{
		Code:              strings.ToUpper(strings.TrimSpace(req.Code)),
		DiscountType:      req.DiscountType,
		DiscountValue:     req.DiscountValue,
		MinPurchaseAmount: req.MinPurchaseAmount,
		UsageLimit:        req.UsageLimit,
		Active:            req.Active == nil || *req.Active,
		EndDate:           req.EndDate,
	}
	if err := s.PromoDao.Create(ctx, p); err != nil {
		if database.IsDuplicate(err) {
			return nil, invalid("promo code %s already exists", p.Code)
		}
		return nil, err
	}
	return p, nil
}

func (s *PromoService) Update(ctx context.Context, id string, req *types.PromoRequest) error {
	if err := validatePromo(req); err != nil {
		return err
	}
	data := map[string]any{
		"code":                strings.ToUpper(strings.TrimSpace(req.Code)),
		"discount_type":       req.DiscountType,
		"discount_value":      req.DiscountValue,
		"min_purchase_amount": req.MinPurchaseAmount,
		"usage_limit":         req.UsageLimit,
		"end_date":            req.EndDate,
	}
	if req.Active != nil {
		data["active"] = *req.Active
	}
	err := s.PromoDao.UpdateById(ctx, id, data)
	if err != nil && database.IsDuplicate(err) {
		return invalid("promo code %s already exists", data["code"])
	}
	return err
}

func (s *PromoService) Toggle(ctx context.Context, id string, active bool) error {
	return s.PromoDao.UpdateById(ctx, id, map[string]any{"active": active})
}

func (s *PromoService) Delete(ctx context.Context, id string) error {
	return s.PromoDao.Delete(ctx, id)
}
