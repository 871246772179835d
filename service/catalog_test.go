package service

import (
	"context"
	"storefront/dao"
	"storefront/models"
	"storefront/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (e *testEnv) catalogService() *CatalogService {
	return &CatalogService{
		ProductDao:       e.products,
		CategoryDao:      dao.NewCategory(e.db),
		PaymentMethodDao: e.payments,
		FAQDao:           dao.NewFAQ(e.db),
		COADao:           dao.NewCOAReport(e.db),
	}
}

func TestCatalogService_ListProducts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProduct(t, &models.Product{Name: "TB-500", Description: "Recovery peptide", Category: "healing", BasePrice: dec("1500"), PurityPercentage: 98})
	env.createProduct(t, &models.Product{Name: "BPC-157", Description: "Gut and tendon", Category: "healing", BasePrice: dec("1000"), PurityPercentage: 99.5})
	env.createProduct(t, &models.Product{Name: "Semaglutide", Description: "Weight management", Category: "metabolic", BasePrice: dec("3000"), PurityPercentage: 99})
	hidden := env.createProduct(t, &models.Product{Name: "Archived", Category: "healing", BasePrice: dec("10")})
	require.NoError(t, env.products.UpdateById(ctx, hidden.ID, map[string]any{"available": false}))
	svc := env.catalogService()

	all, err := svc.ListProducts(ctx, &types.ProductListRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "BPC-157", all[0].Name)

	byPrice, err := svc.ListProducts(ctx, &types.ProductListRequest{Sort: "price", Category: "healing"})
	require.NoError(t, err)
	require.Len(t, byPrice, 2)
	assert.Equal(t, "BPC-157", byPrice[0].Name)

	byPurity, err := svc.ListProducts(ctx, &types.ProductListRequest{Sort: "purity"})
	require.NoError(t, err)
	assert.Equal(t, "BPC-157", byPurity[0].Name)
	assert.Equal(t, "TB-500", byPurity[2].Name)

	found, err := svc.ListProducts(ctx, &types.ProductListRequest{Query: "TENDON", Category: "all"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "BPC-157", found[0].Name)

	_, err = svc.GetProduct(ctx, hidden.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatalogService_ListFAQs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	faqs := &FAQService{FAQDao: dao.NewFAQ(env.db)}
	off := false
	for _, req := range []*types.FAQRequest{
		{Question: "How do I pay?", Answer: "GCash", Category: "PAYMENT METHODS", OrderIndex: 1},
		{Question: "How to store?", Answer: "Refrigerate", Category: "PRODUCT & USAGE", OrderIndex: 2},
		{Question: "Reconstitution?", Answer: "Bac water", Category: "PRODUCT & USAGE", OrderIndex: 1},
		{Question: "Hidden", Answer: "x", Category: "SHIPPING & DELIVERY", IsActive: &off},
	} {
		_, err := faqs.Create(ctx, req)
		require.NoError(t, err)
	}

	_, err := faqs.Create(ctx, &types.FAQRequest{Question: "q", Answer: "a", Category: "RANDOM"})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	groups, err := env.catalogService().ListFAQs(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "PRODUCT & USAGE", groups[0].Category)
	assert.Equal(t, "Reconstitution?", groups[0].Items[0].Question)
	assert.Equal(t, "PAYMENT METHODS", groups[1].Category)
}

func TestShippingService_FallbackAndTable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.shippingService()

	// 表为空时使用配置
	loc, err := svc.Fee(ctx, "luzon")
	require.NoError(t, err)
	assert.True(t, loc.Fee.Equal(dec("165")))

	_, err = svc.Create(ctx, &types.ShippingLocationRequest{ID: "ncr", Name: "Metro Manila", Fee: dec("150")})
	require.NoError(t, err)

	loc, err = svc.Fee(ctx, "NCR")
	require.NoError(t, err)
	assert.True(t, loc.Fee.Equal(dec("150")))
	assert.Equal(t, "Metro Manila", loc.Name)

	_, err = svc.Fee(ctx, "LUZON")
	assert.ErrorIs(t, err, ErrUnknownShippingZone)

	loc, err = svc.Fee(ctx, "")
	require.NoError(t, err)
	assert.True(t, loc.Fee.IsZero())

	table, err := svc.Table(ctx)
	require.NoError(t, err)
	assert.Len(t, table, 1)
}

func TestPromoService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := &PromoService{PromoDao: env.promos, Carts: env.carts}

	_, err := svc.Create(ctx, &types.PromoRequest{Code: " welcome ", DiscountType: models.DiscountTypeFixed, DiscountValue: dec("200")})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &types.PromoRequest{Code: "WELCOME", DiscountType: models.DiscountTypeFixed, DiscountValue: dec("100")})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "already exists")

	_, err = svc.Create(ctx, &types.PromoRequest{Code: "BIG", DiscountType: models.DiscountTypePercentage, DiscountValue: dec("150")})
	assert.ErrorAs(t, err, &ve)

	fillCart(t, env, "cart-1")
	preview, err := svc.Preview(ctx, "cart-1", "welcome")
	require.NoError(t, err)
	assert.Equal(t, "WELCOME", preview.Code)
	assert.True(t, preview.Discount.Equal(dec("200")))
	assert.True(t, preview.Subtotal.Equal(dec("2500")))

	_, err = svc.Preview(ctx, "cart-1", "NOPE")
	assert.ErrorIs(t, err, ErrPromoNotFound)
}

func TestInventoryService_LowStockCountsProducts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProduct(t, &models.Product{
		Name:      "Semaglutide",
		BasePrice: dec("2000"),
		Variations: []models.ProductVariation{
			{Name: "2mg", QuantityMg: 2, Price: dec("2000"), StockQuantity: 1},
			{Name: "5mg", QuantityMg: 5, Price: dec("3500"), StockQuantity: 3},
			{Name: "10mg", QuantityMg: 10, Price: dec("6000"), StockQuantity: 4},
		},
	})
	env.createProduct(t, &models.Product{Name: "GHK-Cu", BasePrice: dec("900"), StockQuantity: 4})
	svc := &InventoryService{ProductDao: env.products, OrderDao: env.orders, Shop: env.cfg.Shop}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.LowStockCount)

	low, err := svc.List(ctx, StockLow)
	require.NoError(t, err)
	assert.Len(t, low, 4)
}

func TestInventoryService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProduct(t, &models.Product{Name: "A", BasePrice: dec("100"), StockQuantity: 10})
	env.createProduct(t, &models.Product{Name: "B", BasePrice: dec("200"), StockQuantity: 2})
	env.createProduct(t, &models.Product{
		Name:      "C",
		BasePrice: dec("999"),
		Variations: []models.ProductVariation{
			{Name: "5mg", QuantityMg: 5, Price: dec("1000"), StockQuantity: 0},
			{Name: "10mg", QuantityMg: 10, Price: dec("1800"), StockQuantity: 6},
		},
	})
	paid := env.createOrder(t, models.OrderStatusDelivered, models.PaymentStatusPaid)
	env.createOrder(t, models.OrderStatusNew, models.PaymentStatusPending)
	svc := &InventoryService{ProductDao: env.products, OrderDao: env.orders, Shop: env.cfg.Shop}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ProductCount)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 1, stats.OutOfStock)
	// 10*100 + 2*200 + 6*1800
	assert.True(t, stats.InventoryValue.Equal(dec("12200")))
	assert.True(t, stats.TotalSales.Equal(paid.Total))
	assert.Equal(t, 2, stats.UnitsSold)

	low, err := svc.List(ctx, StockLow)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "B", low[0].ProductName)

	out, err := svc.List(ctx, StockOut)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].VariationName)
	assert.Equal(t, "5mg", *out[0].VariationName)

	all, err := svc.List(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
