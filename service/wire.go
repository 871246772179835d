package service

import (
	"storefront/pkg/oss"
	"storefront/pkg/rocketmq"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	wire.Struct(new(ShippingService), "*"),
	wire.Bind(new(IShippingService), new(*ShippingService)),

	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),

	wire.Struct(new(CheckoutService), "*"),
	wire.Bind(new(ICheckoutService), new(*CheckoutService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(OrderEventService), "*"),
	wire.Bind(new(IOrderEventService), new(*OrderEventService)),
	wire.Bind(new(EventPublisher), new(*rocketmq.Publisher)),

	wire.Struct(new(AdminAuthService), "*"),
	wire.Bind(new(IAdminAuthService), new(*AdminAuthService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(CategoryService), "*"),
	wire.Bind(new(ICategoryService), new(*CategoryService)),

	wire.Struct(new(PaymentMethodService), "*"),
	wire.Bind(new(IPaymentMethodService), new(*PaymentMethodService)),

	wire.Struct(new(COAService), "*"),
	wire.Bind(new(ICOAService), new(*COAService)),

	wire.Struct(new(FAQService), "*"),
	wire.Bind(new(IFAQService), new(*FAQService)),

	wire.Struct(new(PromoService), "*"),
	wire.Bind(new(IPromoService), new(*PromoService)),

	wire.Struct(new(ImageService), "*"),
	wire.Bind(new(IImageService), new(*ImageService)),
	wire.Bind(new(ObjectStore), new(*oss.Client)),

	wire.Struct(new(InventoryService), "*"),
	wire.Bind(new(IInventoryService), new(*InventoryService)),
)
