package pricing

import (
	"errors"
	"storefront/models"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrPromoInactive    = errors.New("promo code is not active")
	ErrPromoExpired     = errors.New("promo code has expired")
	ErrPromoExhausted   = errors.New("promo code usage limit reached")
	ErrPromoMinPurchase = errors.New("order does not meet the promo minimum purchase")
)

// CheckPromo 校验优惠码在 now 时刻对 subtotal 是否可用
func CheckPromo(promo *models.PromoCode, subtotal decimal.Decimal, now time.Time) error {
	if !promo.Active {
		return ErrPromoInactive
	}
	if promo.EndDate != nil && now.After(*promo.EndDate) {
		return ErrPromoExpired
	}
	if promo.UsageLimit != nil && promo.UsageCount >= *promo.UsageLimit {
		return ErrPromoExhausted
	}
	if subtotal.LessThan(promo.MinPurchaseAmount) {
		return ErrPromoMinPurchase
	}
	return nil
}

// ApplyPromo 返回优惠金额，不超过 subtotal
func ApplyPromo(promo *models.PromoCode, subtotal decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if err := CheckPromo(promo, subtotal, now); err != nil {
		return decimal.Zero, err
	}
	var off decimal.Decimal
	switch promo.DiscountType {
	case models.DiscountTypePercentage:
		off = subtotal.Mul(promo.DiscountValue).Div(hundred).Round(2)
	default:
		off = promo.DiscountValue
	}
	if off.GreaterThan(subtotal) {
		off = subtotal
	}
	if off.IsNegative() {
		off = decimal.Zero
	}
	return off, nil
}
