package dao

import (
	"storefront/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewProduct,
	NewVariation,
	NewCategory,
	NewPaymentMethod,
	NewCOAReport,
	NewFAQ,
	NewPromo,
	NewShippingLocation,
	NewOrder,
	cache.NewCartStorage,
	cache.NewFlowStorage,
	cache.NewSessionStorage,
)
