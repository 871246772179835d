package server

import (
	"storefront/handler"
)

type Handlers struct {
	Storefront     *handler.Storefront
	Cart           *handler.Cart
	Checkout       *handler.Checkout
	Tracking       *handler.Tracking
	AdminAuth      *handler.AdminAuth
	AdminProduct   *handler.AdminProduct
	AdminOrder     *handler.AdminOrder
	AdminCatalog   *handler.AdminCatalog
	AdminImage     *handler.AdminImage
	AdminInventory *handler.AdminInventory
}
