package pricing

import (
	"storefront/models"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func TestUnitPrice_ProductDiscount(t *testing.T) {
	p := &models.Product{BasePrice: dec("1000"), DiscountPrice: nullDec("800"), DiscountActive: true}

	assert.True(t, UnitPrice(p, nil).Equal(dec("800")))
	assert.True(t, OriginalPrice(p, nil).Equal(dec("1000")))
	assert.True(t, HasDiscount(p, nil))
	assert.Equal(t, 20, DiscountPercent(UnitPrice(p, nil), OriginalPrice(p, nil)))
}

func TestUnitPrice_InactiveDiscountIgnored(t *testing.T) {
	p := &models.Product{BasePrice: dec("1000"), DiscountPrice: nullDec("800"), DiscountActive: false}

	assert.True(t, UnitPrice(p, nil).Equal(dec("1000")))
	assert.False(t, HasDiscount(p, nil))
}

func TestUnitPrice_VariationIgnoresProductDiscount(t *testing.T) {
	p := &models.Product{BasePrice: dec("1000"), DiscountPrice: nullDec("800"), DiscountActive: true}
	v := &models.ProductVariation{Price: dec("1200")}

	assert.True(t, UnitPrice(p, v).Equal(dec("1200")))
	assert.True(t, OriginalPrice(p, v).Equal(dec("1200")))
	assert.Equal(t, 0, DiscountPercent(UnitPrice(p, v), OriginalPrice(p, v)))
}

func TestUnitPrice_VariationDiscount(t *testing.T) {
	p := &models.Product{BasePrice: dec("1000")}
	v := &models.ProductVariation{Price: dec("1500"), DiscountPrice: nullDec("1000"), DiscountActive: true}

	assert.True(t, UnitPrice(p, v).Equal(dec("1000")))
	assert.Equal(t, 33, DiscountPercent(UnitPrice(p, v), OriginalPrice(p, v)))
}

func TestDiscountPercent_ZeroOriginal(t *testing.T) {
	assert.Equal(t, 0, DiscountPercent(dec("10"), decimal.Zero))
}

func TestLineTotal(t *testing.T) {
	assert.True(t, LineTotal(dec("499.50"), 3).Equal(dec("1498.50")))
}

func TestValidateDiscount(t *testing.T) {
	cases := []struct {
		name     string
		price    decimal.Decimal
		discount decimal.NullDecimal
		active   bool
		want     error
	}{
		{"inactive without price", dec("1000"), decimal.NullDecimal{}, false, nil},
		{"inactive with higher price", dec("1000"), nullDec("2000"), false, nil},
		{"valid", dec("1000"), nullDec("800"), true, nil},
		{"missing", dec("1000"), decimal.NullDecimal{}, true, ErrDiscountMissing},
		{"equal", dec("1000"), nullDec("1000"), true, ErrDiscountNotLower},
		{"higher", dec("1000"), nullDec("1200"), true, ErrDiscountNotLower},
		{"zero", dec("1000"), nullDec("0"), true, ErrDiscountNotPositive},
		{"zero price", decimal.Zero, decimal.NullDecimal{}, false, ErrNonPositivePrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDiscount(tc.price, tc.discount, tc.active)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestApplyPromo(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	limit := 3

	t.Run("percentage", func(t *testing.T) {
		promo := &models.PromoCode{Active: true, DiscountType: models.DiscountTypePercentage, DiscountValue: dec("10")}
		off, err := ApplyPromo(promo, dec("2500"), now)
		require.NoError(t, err)
		assert.True(t, off.Equal(dec("250")))
	})

	t.Run("fixed capped at subtotal", func(t *testing.T) {
		promo := &models.PromoCode{Active: true, DiscountType: models.DiscountTypeFixed, DiscountValue: dec("5000")}
		off, err := ApplyPromo(promo, dec("2500"), now)
		require.NoError(t, err)
		assert.True(t, off.Equal(dec("2500")))
	})

	t.Run("expired", func(t *testing.T) {
		end := now.Add(-time.Hour)
		promo := &models.PromoCode{Active: true, DiscountType: models.DiscountTypeFixed, DiscountValue: dec("100"), EndDate: &end}
		_, err := ApplyPromo(promo, dec("2500"), now)
		assert.ErrorIs(t, err, ErrPromoExpired)
	})

	t.Run("exhausted", func(t *testing.T) {
		promo := &models.PromoCode{Active: true, DiscountType: models.DiscountTypeFixed, DiscountValue: dec("100"), UsageLimit: &limit, UsageCount: 3}
		_, err := ApplyPromo(promo, dec("2500"), now)
		assert.ErrorIs(t, err, ErrPromoExhausted)
	})

	t.Run("below minimum", func(t *testing.T) {
		promo := &models.PromoCode{Active: true, DiscountType: models.DiscountTypeFixed, DiscountValue: dec("100"), MinPurchaseAmount: dec("3000")}
		_, err := ApplyPromo(promo, dec("2500"), now)
		assert.ErrorIs(t, err, ErrPromoMinPurchase)
	})

	t.Run("inactive", func(t *testing.T) {
		promo := &models.PromoCode{DiscountType: models.DiscountTypeFixed, DiscountValue: dec("100")}
		_, err := ApplyPromo(promo, dec("2500"), now)
		assert.ErrorIs(t, err, ErrPromoInactive)
	})
}
