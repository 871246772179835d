package service

import (
	"context"
	"storefront/models"
	"storefront/pkg/cart"
	"storefront/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCartService_AddSnapshotsPrice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProduct(t, &models.Product{Name: "BPC-157", BasePrice: dec("1000"), StockQuantity: 10, PurityPercentage: 99})
	svc := env.cartService()

	view, err := svc.Add(ctx, "cart-1", &types.AddCartItemRequest{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, view.ItemCount)
	assert.True(t, view.Total.Equal(dec("2000")))

	// 之后改价不影响已加入的行
	require.NoError(t, env.products.UpdateById(ctx, p.ID, map[string]any{"base_price": dec("1500")}))
	view, err = svc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.True(t, view.Lines[0].UnitPrice.Equal(dec("1000")))
}

func TestCartService_AddVariation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProduct(t, &models.Product{
		Name:           "TB-500",
		BasePrice:      dec("1000"),
		DiscountPrice:  nullDec("800"),
		DiscountActive: true,
		Variations: []models.ProductVariation{
			{Name: "5mg", QuantityMg: 5, Price: dec("1200"), StockQuantity: 3},
		},
	})
	svc := env.cartService()

	_, err := svc.Add(ctx, "cart-1", &types.AddCartItemRequest{ProductID: p.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrVariationRequired)

	other := "not-a-variation"
	_, err = svc.Add(ctx, "cart-1", &types.AddCartItemRequest{ProductID: p.ID, VariationID: &other, Quantity: 1})
	assert.ErrorIs(t, err, ErrVariationMismatch)

	vid := p.Variations[0].ID
	view, err := svc.Add(ctx, "cart-1", &types.AddCartItemRequest{ProductID: p.ID, VariationID: &vid, Quantity: 1})
	require.NoError(t, err)
	assert.True(t, view.Lines[0].UnitPrice.Equal(dec("1200")))
	require.NotNil(t, view.Lines[0].VariationName)
	assert.Equal(t, "5mg", *view.Lines[0].VariationName)
}

func TestCartService_StockLimitAcrossDuplicateLines(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProduct(t, &models.Product{Name: "GHK-Cu", BasePrice: dec("500"), StockQuantity: 3})
	svc := env.cartService()

	_, err := svc.Add(ctx, "cart-1", &types.AddCartItemRequest{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	view, err := svc.Add(ctx, "cart-1", &types.AddCartItemRequest{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, view.Lines, 2)

	_, err = svc.Add(ctx, "cart-1", &types.AddCartItemRequest{ProductID: p.ID, Quantity: 1})
	var limit *StockLimitError
	require.ErrorAs(t, err, &limit)
	assert.Equal(t, 3, limit.Available)
	assert.Equal(t, "Only 3 item(s) available in stock.", err.Error())
}

func TestCartService_UpdateQuantityRejectedKeepsCart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProduct(t, &models.Product{Name: "GHK-Cu", BasePrice: dec("500"), StockQuantity: 5})
	svc := env.cartService()

	_, err := svc.Add(ctx, "cart-1", &types.AddCartItemRequest{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(ctx, "cart-1", 0, 6)
	assert.ErrorIs(t, err, ErrStockLimit)

	view, err := svc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Lines[0].Quantity)

	view, err = svc.UpdateQuantity(ctx, "cart-1", 0, 5)
	require.NoError(t, err)
	assert.True(t, view.Total.Equal(dec("2500")))

	_, err = svc.UpdateQuantity(ctx, "cart-1", 3, 1)
	assert.ErrorIs(t, err, cart.ErrIndexOutOfRange)
}

func TestCartService_UnavailableProduct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProduct(t, &models.Product{Name: "Retired", BasePrice: dec("100"), StockQuantity: 5})
	require.NoError(t, env.products.UpdateById(ctx, p.ID, map[string]any{"available": false}))

	_, err := env.cartService().Add(ctx, "cart-1", &types.AddCartItemRequest{ProductID: p.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductUnavailable)

	_, err = env.cartService().Add(ctx, "cart-1", &types.AddCartItemRequest{ProductID: "missing", Quantity: 1})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.createProduct(t, &models.Product{Name: "A", BasePrice: dec("100"), StockQuantity: 5})
	b := env.createProduct(t, &models.Product{Name: "B", BasePrice: dec("200"), StockQuantity: 5})
	svc := env.cartService()

	_, err := svc.Add(ctx, "cart-1", &types.AddCartItemRequest{ProductID: a.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "cart-1", &types.AddCartItemRequest{ProductID: b.ID, Quantity: 1})
	require.NoError(t, err)

	view, err := svc.Remove(ctx, "cart-1", 0)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "B", view.Lines[0].ProductName)
	assert.Equal(t, 0, view.Lines[0].Index)

	require.NoError(t, svc.Clear(ctx, "cart-1"))
	view, err = svc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}
