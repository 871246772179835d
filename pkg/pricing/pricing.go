// Package pricing 计算顾客实际支付的单价。
//
// 选了规格时只看规格自己的价格和折扣，商品层的折扣不再参与；
// 没有规格时看商品的折扣价和原价。
package pricing

import (
	"storefront/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// effective 折扣生效且有折扣价时返回折扣价
func effective(price decimal.Decimal, discount decimal.NullDecimal, active bool) decimal.Decimal {
	if active && discount.Valid {
		return discount.Decimal
	}
	return price
}

// UnitPrice 顾客支付的单价
func UnitPrice(p *models.Product, v *models.ProductVariation) decimal.Decimal {
	if v != nil {
		return effective(v.Price, v.DiscountPrice, v.DiscountActive)
	}
	return effective(p.BasePrice, p.DiscountPrice, p.DiscountActive)
}

// OriginalPrice 折扣前价格，永远不是折扣价
func OriginalPrice(p *models.Product, v *models.ProductVariation) decimal.Decimal {
	if v != nil {
		return v.Price
	}
	return p.BasePrice
}

// HasDiscount 当前选择是否处于折扣中
func HasDiscount(p *models.Product, v *models.ProductVariation) bool {
	return UnitPrice(p, v).LessThan(OriginalPrice(p, v))
}

// DiscountPercent round((1 - current/original) * 100)，原价为 0 时返回 0
func DiscountPercent(current, original decimal.Decimal) int {
	if original.IsZero() {
		return 0
	}
	pct := decimal.NewFromInt(1).Sub(current.Div(original)).Mul(hundred)
	return int(pct.Round(0).IntPart())
}

func LineTotal(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}
