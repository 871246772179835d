package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositivePrice    = errors.New("price must be greater than zero")
	ErrDiscountMissing     = errors.New("discount is active but no discount price is set")
	ErrDiscountNotLower    = errors.New("discount price must be lower than the regular price")
	ErrDiscountNotPositive = errors.New("discount price must be greater than zero")
)

// ValidateDiscount 写入前校验：折扣生效时折扣价必须存在且介于 0 和原价之间
func ValidateDiscount(price decimal.Decimal, discount decimal.NullDecimal, active bool) error {
	if !price.IsPositive() {
		return ErrNonPositivePrice
	}
	if !active {
		return nil
	}
	if !discount.Valid {
		return ErrDiscountMissing
	}
	if !discount.Decimal.IsPositive() {
		return ErrDiscountNotPositive
	}
	if !discount.Decimal.LessThan(price) {
		return ErrDiscountNotLower
	}
	return nil
}
