package service

import (
	"context"
	"storefront/models"
	"storefront/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (e *testEnv) productService() *ProductService {
	return &ProductService{ProductDao: e.products, VariationDao: e.variation}
}

func productRequest() *types.ProductRequest {
	return &types.ProductRequest{
		Name:             "BPC-157",
		Description:      "Body protection compound",
		Category:         "healing",
		BasePrice:        dec("1000"),
		DiscountPrice:    nullDec("800"),
		DiscountActive:   true,
		PurityPercentage: 99,
		StockQuantity:    10,
		Inclusions:       []string{" vial ", "", "bac water"},
		Variations: []types.VariationRequest{
			{Name: "10mg", QuantityMg: 10, Price: dec("1800"), StockQuantity: 4},
			{Name: "5mg", QuantityMg: 5, Price: dec("1200"), StockQuantity: 2},
		},
	}
}

func TestProductService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.productService()

	view, err := svc.Create(ctx, productRequest())
	require.NoError(t, err)
	assert.True(t, view.CurrentPrice.Equal(dec("800")))
	assert.Equal(t, 20, view.DiscountPercent)
	assert.True(t, view.Available)
	assert.True(t, view.IsSet)
	assert.Equal(t, []string{"vial", "bac water"}, []string(view.Inclusions))

	got, err := svc.Get(ctx, view.ID)
	require.NoError(t, err)
	require.Len(t, got.Variations, 2)
	// 规格按容量升序
	assert.Equal(t, "5mg", got.Variations[0].Name)
	assert.True(t, got.Variations[0].CurrentPrice.Equal(dec("1200")))
}

func TestProductService_RejectsBadDiscount(t *testing.T) {
	env := newTestEnv(t)
	svc := env.productService()

	req := productRequest()
	req.DiscountPrice = nullDec("1000")
	_, err := svc.Create(context.Background(), req)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	req = productRequest()
	req.Variations[0].DiscountActive = true
	_, err = svc.Create(context.Background(), req)
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "10mg")

	var count int64
	require.NoError(t, env.db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProductService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.productService()
	view, err := svc.Create(ctx, productRequest())
	require.NoError(t, err)

	req := productRequest()
	req.DiscountActive = false
	hidden := false
	req.Available = &hidden
	updated, err := svc.Update(ctx, view.ID, req)
	require.NoError(t, err)
	assert.True(t, updated.CurrentPrice.Equal(dec("1000")))
	assert.False(t, updated.Available)
	assert.Len(t, updated.Variations, 2)

	_, err = svc.Update(ctx, "missing", productRequest())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductService_BulkDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.productService()
	a, err := svc.Create(ctx, productRequest())
	require.NoError(t, err)
	b, err := svc.Create(ctx, productRequest())
	require.NoError(t, err)

	resp := svc.BulkDelete(ctx, []string{a.ID, "missing", b.ID})
	assert.Equal(t, 2, resp.Deleted)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "missing")

	var count int64
	require.NoError(t, env.db.Model(&models.ProductVariation{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProductService_Variations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.productService()
	p, err := svc.Create(ctx, productRequest())
	require.NoError(t, err)
	other, err := svc.Create(ctx, productRequest())
	require.NoError(t, err)

	v, err := svc.CreateVariation(ctx, p.ID, &types.VariationRequest{Name: "20mg", QuantityMg: 20, Price: dec("3000"), StockQuantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateVariationStock(ctx, p.ID, v.ID, 7))
	got, err := env.variation.FindById(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.StockQuantity)

	// 规格不属于该商品
	assert.ErrorIs(t, svc.DeleteVariation(ctx, other.ID, v.ID), gorm.ErrRecordNotFound)
	require.NoError(t, svc.DeleteVariation(ctx, p.ID, v.ID))

	_, err = svc.CreateVariation(ctx, p.ID, &types.VariationRequest{Name: "bad", QuantityMg: 0, Price: dec("1")})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestProductService_UpdateStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.productService()
	p, err := svc.Create(ctx, productRequest())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStock(ctx, p.ID, 0))
	var ve *ValidationError
	assert.ErrorAs(t, svc.UpdateStock(ctx, p.ID, -1), &ve)
}
