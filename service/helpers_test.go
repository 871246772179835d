package service

import (
	"context"
	"fmt"
	"storefront/config"
	"storefront/dao"
	"storefront/dao/cache"
	"storefront/models"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db       *gorm.DB
	redis    *redis.Client
	cfg      *config.Config
	carts    *cache.CartStorage
	flows    *cache.FlowStorage
	sessions *cache.SessionStorage

	products  *dao.Product
	variation *dao.Variation
	payments  *dao.PaymentMethod
	promos    *dao.Promo
	orders    *dao.Order
	shipping  *dao.ShippingLocation
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))

	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	cfg := &config.Config{
		App:   &config.App{HashSalt: "test-salt"},
		Jwt:   &config.Jwt{Secret: "test-secret", ExpiresIn: 3600},
		Admin: &config.Admin{LoginRate: 5},
		Shop: &config.Shop{
			Name:              "My Peptide Journey",
			ShippingRegions:   config.DefaultShippingRegions(),
			Messaging:         config.Messaging{Messenger: "shop", Viber: "+639000000000"},
			CartTTLHours:      24,
			LowStockThreshold: 5,
		},
		RocketMQ: &config.RocketMQConfig{OrderTopic: "order_placed", ConfirmDelayLevel: 17},
	}

	return &testEnv{
		db:        db,
		redis:     rds,
		cfg:       cfg,
		carts:     cache.NewCartStorage(rds, cfg.Shop),
		flows:     cache.NewFlowStorage(rds),
		sessions:  cache.NewSessionStorage(rds),
		products:  dao.NewProduct(db),
		variation: dao.NewVariation(db),
		payments:  dao.NewPaymentMethod(db),
		promos:    dao.NewPromo(db),
		orders:    dao.NewOrder(db),
		shipping:  dao.NewShippingLocation(db),
	}
}

func (e *testEnv) cartService() *CartService {
	return &CartService{Carts: e.carts, ProductDao: e.products, VariationDao: e.variation}
}

func (e *testEnv) shippingService() *ShippingService {
	return &ShippingService{ShippingDao: e.shipping, Shop: e.cfg.Shop}
}

func (e *testEnv) checkoutService(events IOrderEventService) *CheckoutService {
	return &CheckoutService{
		Carts:            e.carts,
		Flows:            e.flows,
		PaymentMethodDao: e.payments,
		PromoDao:         e.promos,
		OrderDao:         e.orders,
		Shipping:         e.shippingService(),
		Events:           events,
		Config:           e.cfg,
	}
}

func (e *testEnv) orderService() *OrderService {
	return &OrderService{OrderDao: e.orders, App: e.cfg.App}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (e *testEnv) createProduct(t *testing.T, p *models.Product) *models.Product {
	t.Helper()
	p.Available = true
	require.NoError(t, e.db.Omit("Variations").Create(p).Error)
	for i := range p.Variations {
		p.Variations[i].ProductID = p.ID
		require.NoError(t, e.db.Create(&p.Variations[i]).Error)
	}
	return p
}

func (e *testEnv) createPaymentMethod(t *testing.T) *models.PaymentMethod {
	t.Helper()
	m := &models.PaymentMethod{Name: "GCash", AccountNumber: "0917 000 0000", AccountName: "MPJ", Active: true}
	require.NoError(t, e.payments.Create(context.Background(), m))
	return m
}

// recordingEvents 记录投递过的订单
type recordingEvents struct {
	placed []*models.Order
}

func (r *recordingEvents) PublishPlaced(_ context.Context, order *models.Order) {
	r.placed = append(r.placed, order)
}

func (r *recordingEvents) HandlePlaced(context.Context, []byte) error {
	return nil
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}
