package service

import (
	"context"
	"errors"
	"storefront/models"
	"storefront/pkg/checkout"
	"storefront/pkg/pricing"
	"storefront/pkg/utils"
	"storefront/types"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func details() *types.DetailsRequest {
	return &types.DetailsRequest{
		FullName: "Juan Dela Cruz",
		Email:    "juan@example.com",
		Phone:    "09171234567",
		Address:  "123 Rizal St",
		City:     "Makati",
		State:    "Metro Manila",
		ZipCode:  "1200",
		Country:  "Philippines",
		Region:   "NCR",
	}
}

// fillCart [{1000 x2}, {500 x1}]
func fillCart(t *testing.T, env *testEnv, cartID string) {
	t.Helper()
	ctx := context.Background()
	a := env.createProduct(t, &models.Product{Name: "BPC-157", BasePrice: dec("1000"), StockQuantity: 10, PurityPercentage: 99.5})
	b := env.createProduct(t, &models.Product{Name: "TB-500", BasePrice: dec("500"), StockQuantity: 10, PurityPercentage: 98})
	_, err := env.cartService().Add(ctx, cartID, &types.AddCartItemRequest{ProductID: a.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = env.cartService().Add(ctx, cartID, &types.AddCartItemRequest{ProductID: b.ID, Quantity: 1})
	require.NoError(t, err)
}

func TestCheckoutService_Submit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fillCart(t, env, "cart-1")
	method := env.createPaymentMethod(t)
	events := &recordingEvents{}
	svc := env.checkoutService(events)

	view, err := svc.SubmitDetails(ctx, "cart-1", details())
	require.NoError(t, err)
	assert.Equal(t, checkout.StagePayment, view.Stage)
	assert.True(t, view.Totals.Subtotal.Equal(dec("2500")))
	assert.True(t, view.Totals.ShippingFee.Equal(dec("160")))
	assert.True(t, view.Totals.Total.Equal(dec("2660")))

	_, err = svc.SelectPayment(ctx, "cart-1", &types.PaymentRequest{PaymentMethodID: method.ID, ContactChannel: "messenger"})
	require.NoError(t, err)

	resp, err := svc.Submit(ctx, "cart-1")
	require.NoError(t, err)
	assert.True(t, resp.Totals.Total.Equal(dec("2660")))
	assert.Contains(t, resp.Message, "ORDER ID: "+resp.OrderRef)
	assert.Contains(t, resp.Links, "messenger")
	assert.Contains(t, resp.Links, "viber")

	id, err := utils.DecodeHashID(env.cfg.App.HashSalt, resp.OrderRef)
	require.NoError(t, err)
	order, err := env.orders.FindById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, order.OrderStatus)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "NCR", order.ShippingRegion)
	assert.Len(t, order.OrderItems, 2)
	assert.True(t, order.Total.Equal(dec("2660")))

	c, err := env.carts.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	require.Len(t, events.placed, 1)

	view, err = svc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, checkout.StageConfirmation, view.Stage)
	assert.Equal(t, resp.OrderRef, view.OrderRef)
	assert.NotEmpty(t, view.Links)
}

func TestCheckoutService_SubmitInsertFailureKeepsState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fillCart(t, env, "cart-1")
	method := env.createPaymentMethod(t)
	events := &recordingEvents{}
	svc := env.checkoutService(events)

	_, err := svc.SubmitDetails(ctx, "cart-1", details())
	require.NoError(t, err)
	_, err = svc.SelectPayment(ctx, "cart-1", &types.PaymentRequest{PaymentMethodID: method.ID, ContactChannel: "viber"})
	require.NoError(t, err)

	require.NoError(t, env.db.Migrator().DropTable(&models.Order{}))

	_, err = svc.Submit(ctx, "cart-1")
	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Contains(t, submitErr.Hint, "migrate")

	view, err := svc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, checkout.StagePayment, view.Stage)
	assert.Equal(t, "Juan Dela Cruz", view.Details.FullName)

	c, err := env.carts.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Empty(t, events.placed)
}

func TestCheckoutService_IncompleteDetailsSavedAsDraft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fillCart(t, env, "cart-1")
	svc := env.checkoutService(&recordingEvents{})

	req := details()
	req.Phone = ""
	_, err := svc.SubmitDetails(ctx, "cart-1", req)
	assert.ErrorIs(t, err, checkout.ErrIncomplete)

	view, err := svc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, checkout.StageDetails, view.Stage)
	assert.Equal(t, "juan@example.com", view.Details.Email)
}

func TestCheckoutService_UnknownRegion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fillCart(t, env, "cart-1")
	svc := env.checkoutService(&recordingEvents{})

	req := details()
	req.Region = "MARS"
	_, err := svc.SubmitDetails(ctx, "cart-1", req)
	assert.ErrorIs(t, err, ErrUnknownShippingZone)
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	svc := env.checkoutService(&recordingEvents{})

	_, err := svc.SubmitDetails(context.Background(), "cart-empty", details())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutService_BackKeepsDetails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fillCart(t, env, "cart-1")
	svc := env.checkoutService(&recordingEvents{})

	_, err := svc.SubmitDetails(ctx, "cart-1", details())
	require.NoError(t, err)
	view, err := svc.Back(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, checkout.StageDetails, view.Stage)
	assert.Equal(t, "Makati", view.Details.City)
}

func TestCheckoutService_InactivePaymentMethod(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fillCart(t, env, "cart-1")
	method := env.createPaymentMethod(t)
	require.NoError(t, env.payments.UpdateById(ctx, method.ID, map[string]any{"active": false}))
	svc := env.checkoutService(&recordingEvents{})

	_, err := svc.SubmitDetails(ctx, "cart-1", details())
	require.NoError(t, err)
	_, err = svc.SelectPayment(ctx, "cart-1", &types.PaymentRequest{PaymentMethodID: method.ID, ContactChannel: "viber"})
	assert.ErrorIs(t, err, ErrPaymentMethod)
}

func TestCheckoutService_PromoUsage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fillCart(t, env, "cart-1")
	method := env.createPaymentMethod(t)
	limit := 1
	promo := &models.PromoCode{Code: "SAVE10", DiscountType: models.DiscountTypePercentage, DiscountValue: dec("10"), UsageLimit: &limit, Active: true}
	require.NoError(t, env.promos.Create(ctx, promo))
	svc := env.checkoutService(&recordingEvents{})

	_, err := svc.SubmitDetails(ctx, "cart-1", details())
	require.NoError(t, err)
	view, err := svc.SelectPayment(ctx, "cart-1", &types.PaymentRequest{PaymentMethodID: method.ID, ContactChannel: "instagram", PromoCode: " save10 "})
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", view.Payment.PromoCode)
	assert.True(t, view.Totals.Discount.Equal(dec("250")))
	assert.True(t, view.Totals.Total.Equal(dec("2410")))

	resp, err := svc.Submit(ctx, "cart-1")
	require.NoError(t, err)
	assert.True(t, resp.Totals.Total.Equal(dec("2410")))

	saved, err := env.promos.FindByCode(ctx, "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, 1, saved.UsageCount)

	// 额度用完后同一优惠码不可再用
	fillCart(t, env, "cart-2")
	_, err = svc.SubmitDetails(ctx, "cart-2", details())
	require.NoError(t, err)
	_, err = svc.SelectPayment(ctx, "cart-2", &types.PaymentRequest{PaymentMethodID: method.ID, ContactChannel: "viber", PromoCode: "SAVE10"})
	assert.ErrorIs(t, err, pricing.ErrPromoExhausted)
}

// prepareSubmit 填写资料并选择支付方式，停在 payment 阶段
func prepareSubmit(t *testing.T, env *testEnv, svc *CheckoutService, cartID string) {
	t.Helper()
	ctx := context.Background()
	fillCart(t, env, cartID)
	method := env.createPaymentMethod(t)
	_, err := svc.SubmitDetails(ctx, cartID, details())
	require.NoError(t, err)
	_, err = svc.SelectPayment(ctx, cartID, &types.PaymentRequest{PaymentMethodID: method.ID, ContactChannel: "viber"})
	require.NoError(t, err)
}

func TestCheckoutService_GetAfterSubmitKeepsOrderTotals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.checkoutService(&recordingEvents{})
	prepareSubmit(t, env, svc, "cart-1")

	resp, err := svc.Submit(ctx, "cart-1")
	require.NoError(t, err)

	view, err := svc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, checkout.StageConfirmation, view.Stage)
	assert.Equal(t, resp.OrderRef, view.OrderRef)
	assert.True(t, view.Totals.Subtotal.Equal(dec("2500")))
	assert.True(t, view.Totals.ShippingFee.Equal(dec("160")))
	assert.True(t, view.Totals.Total.Equal(dec("2660")))
	assert.Equal(t, resp.Message, view.Message)
	assert.Contains(t, view.Links, "viber")
}

func TestCheckoutService_ConcurrentSubmitPlacesOneOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	events := &recordingEvents{}
	svc := env.checkoutService(events)
	prepareSubmit(t, env, svc, "cart-1")

	const n = 4
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
		ok   int
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Submit(ctx, "cart-1")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
				return
			}
			errs = append(errs, err)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, ok)
	for _, err := range errs {
		assert.True(t, errors.Is(err, checkout.ErrWrongStage) || errors.Is(err, checkout.ErrFinished), err)
	}

	var count int64
	require.NoError(t, env.db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.Len(t, events.placed, 1)
}

func TestCheckoutService_SubmitReleasesLock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.checkoutService(&recordingEvents{})
	fillCart(t, env, "cart-1")
	_, err := svc.SubmitDetails(ctx, "cart-1", details())
	require.NoError(t, err)

	// 未选支付方式，下单失败后锁应已释放
	_, err = svc.Submit(ctx, "cart-1")
	require.ErrorIs(t, err, checkout.ErrIncomplete)

	token, ok, err := env.flows.Lock(ctx, "cart-1")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, env.flows.Unlock(ctx, "cart-1", token))
}
