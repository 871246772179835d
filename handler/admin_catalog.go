package handler

import (
	"storefront/middleware"
	"storefront/pkg/context"
	"storefront/pkg/response"
	"storefront/service"
	"storefront/types"

	"github.com/gin-gonic/gin"
)

// AdminCatalog 分类、支付方式、检测报告、FAQ、优惠码、运费分区
type AdminCatalog struct {
	AuthService          service.IAdminAuthService
	CatalogService       service.ICatalogService
	CategoryService      service.ICategoryService
	PaymentMethodService service.IPaymentMethodService
	COAService           service.ICOAService
	FAQService           service.IFAQService
	PromoService         service.IPromoService
	ShippingService      service.IShippingService
}

func (h *AdminCatalog) RegisterRouter(r gin.IRouter) {
	g := r.Group("/admin", middleware.AdminAuth(h.AuthService))

	g.GET("/categories", context.Wrap(h.ListCategories))
	g.POST("/categories", context.Wrap(h.CreateCategory))
	g.PUT("/categories/:id", context.Wrap(h.UpdateCategory))
	g.DELETE("/categories/:id", context.Wrap(h.DeleteCategory))

	g.GET("/payment-methods", context.Wrap(h.ListPaymentMethods))
	g.POST("/payment-methods", context.Wrap(h.CreatePaymentMethod))
	g.PUT("/payment-methods/:id", context.Wrap(h.UpdatePaymentMethod))
	g.PUT("/payment-methods/:id/active", context.Wrap(h.TogglePaymentMethod))
	g.DELETE("/payment-methods/:id", context.Wrap(h.DeletePaymentMethod))

	g.GET("/coa", context.Wrap(h.ListCOA))
	g.POST("/coa", context.Wrap(h.CreateCOA))
	g.PUT("/coa/:id", context.Wrap(h.UpdateCOA))
	g.DELETE("/coa/:id", context.Wrap(h.DeleteCOA))

	g.GET("/faqs", context.Wrap(h.ListFAQs))
	g.POST("/faqs", context.Wrap(h.CreateFAQ))
	g.PUT("/faqs/:id", context.Wrap(h.UpdateFAQ))
	g.PUT("/faqs/:id/active", context.Wrap(h.ToggleFAQ))
	g.DELETE("/faqs/:id", context.Wrap(h.DeleteFAQ))

	g.GET("/promo-codes", context.Wrap(h.ListPromos))
	g.POST("/promo-codes", context.Wrap(h.CreatePromo))
	g.PUT("/promo-codes/:id", context.Wrap(h.UpdatePromo))
	g.PUT("/promo-codes/:id/active", context.Wrap(h.TogglePromo))
	g.DELETE("/promo-codes/:id", context.Wrap(h.DeletePromo))

	g.GET("/shipping-locations", context.Wrap(h.ListShipping))
	g.POST("/shipping-locations", context.Wrap(h.CreateShipping))
	g.PUT("/shipping-locations/:id", context.Wrap(h.UpdateShipping))
	g.PUT("/shipping-locations/:id/active", context.Wrap(h.ToggleShipping))
	g.DELETE("/shipping-locations/:id", context.Wrap(h.DeleteShipping))
}

// reply 统一处理 (data, err) 返回
func reply(c *gin.Context, data any, err error) error {
	if err != nil {
		return bizError(err)
	}
	response.Success(c, data)
	return nil
}

func bindToggle(c *gin.Context) (bool, error) {
	var req types.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return false, bindError(err)
	}
	return *req.Active, nil
}

func (h *AdminCatalog) ListCategories(c *gin.Context) error {
	items, err := h.CategoryService.List(c.Request.Context())
	return reply(c, items, err)
}

func (h *AdminCatalog) CreateCategory(c *gin.Context) error {
	var req types.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	item, err := h.CategoryService.Create(c.Request.Context(), &req)
	return reply(c, item, err)
}

func (h *AdminCatalog) UpdateCategory(c *gin.Context) error {
	var req types.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	return reply(c, nil, h.CategoryService.Update(c.Request.Context(), c.Param("id"), &req))
}

func (h *AdminCatalog) DeleteCategory(c *gin.Context) error {
	return reply(c, nil, h.CategoryService.Delete(c.Request.Context(), c.Param("id")))
}

func (h *AdminCatalog) ListPaymentMethods(c *gin.Context) error {
	items, err := h.PaymentMethodService.List(c.Request.Context())
	return reply(c, items, err)
}

func (h *AdminCatalog) CreatePaymentMethod(c *gin.Context) error {
	var req types.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	item, err := h.PaymentMethodService.Create(c.Request.Context(), &req)
	return reply(c, item, err)
}

func (h *AdminCatalog) UpdatePaymentMethod(c *gin.Context) error {
	var req types.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	return reply(c, nil, h.PaymentMethodService.Update(c.Request.Context(), c.Param("id"), &req))
}

func (h *AdminCatalog) TogglePaymentMethod(c *gin.Context) error {
	active, err := bindToggle(c)
	if err != nil {
		return err
	}
	return reply(c, nil, h.PaymentMethodService.Toggle(c.Request.Context(), c.Param("id"), active))
}

func (h *AdminCatalog) DeletePaymentMethod(c *gin.Context) error {
	return reply(c, nil, h.PaymentMethodService.Delete(c.Request.Context(), c.Param("id")))
}

func (h *AdminCatalog) ListCOA(c *gin.Context) error {
	items, err := h.CatalogService.ListCOA(c.Request.Context())
	return reply(c, items, err)
}

func (h *AdminCatalog) CreateCOA(c *gin.Context) error {
	var req types.COARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	item, err := h.COAService.Create(c.Request.Context(), &req)
	return reply(c, item, err)
}

func (h *AdminCatalog) UpdateCOA(c *gin.Context) error {
	var req types.COARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	return reply(c, nil, h.COAService.Update(c.Request.Context(), c.Param("id"), &req))
}

func (h *AdminCatalog) DeleteCOA(c *gin.Context) error {
	return reply(c, nil, h.COAService.Delete(c.Request.Context(), c.Param("id")))
}

func (h *AdminCatalog) ListFAQs(c *gin.Context) error {
	items, err := h.FAQService.List(c.Request.Context())
	return reply(c, items, err)
}

func (h *AdminCatalog) CreateFAQ(c *gin.Context) error {
	var req types.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	item, err := h.FAQService.Create(c.Request.Context(), &req)
	return reply(c, item, err)
}

func (h *AdminCatalog) UpdateFAQ(c *gin.Context) error {
	var req types.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	return reply(c, nil, h.FAQService.Update(c.Request.Context(), c.Param("id"), &req))
}

func (h *AdminCatalog) ToggleFAQ(c *gin.Context) error {
	active, err := bindToggle(c)
	if err != nil {
		return err
	}
	return reply(c, nil, h.FAQService.Toggle(c.Request.Context(), c.Param("id"), active))
}

func (h *AdminCatalog) DeleteFAQ(c *gin.Context) error {
	return reply(c, nil, h.FAQService.Delete(c.Request.Context(), c.Param("id")))
}

func (h *AdminCatalog) ListPromos(c *gin.Context) error {
	items, err := h.PromoService.List(c.Request.Context())
	return reply(c, items, err)
}

func (h *AdminCatalog) CreatePromo(c *gin.Context) error {
	var req types.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	item, err := h.PromoService.Create(c.Request.Context(), &req)
	return reply(c, item, err)
}

func (h *AdminCatalog) UpdatePromo(c *gin.Context) error {
	var req types.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	return reply(c, nil, h.PromoService.Update(c.Request.Context(), c.Param("id"), &req))
}

func (h *AdminCatalog) TogglePromo(c *gin.Context) error {
	active, err := bindToggle(c)
	if err != nil {
		return err
	}
	return reply(c, nil, h.PromoService.Toggle(c.Request.Context(), c.Param("id"), active))
}

func (h *AdminCatalog) DeletePromo(c *gin.Context) error {
	return reply(c, nil, h.PromoService.Delete(c.Request.Context(), c.Param("id")))
}

func (h *AdminCatalog) ListShipping(c *gin.Context) error {
	items, err := h.ShippingService.List(c.Request.Context())
	return reply(c, items, err)
}

func (h *AdminCatalog) CreateShipping(c *gin.Context) error {
	var req types.ShippingLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	item, err := h.ShippingService.Create(c.Request.Context(), &req)
	return reply(c, item, err)
}

func (h *AdminCatalog) UpdateShipping(c *gin.Context) error {
	var req types.ShippingLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	return reply(c, nil, h.ShippingService.Update(c.Request.Context(), c.Param("id"), &req))
}

func (h *AdminCatalog) ToggleShipping(c *gin.Context) error {
	active, err := bindToggle(c)
	if err != nil {
		return err
	}
	return reply(c, nil, h.ShippingService.Toggle(c.Request.Context(), c.Param("id"), active))
}

func (h *AdminCatalog) DeleteShipping(c *gin.Context) error {
	return reply(c, nil, h.ShippingService.Delete(c.Request.Context(), c.Param("id")))
}
