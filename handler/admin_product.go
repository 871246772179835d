package handler

import (
	"storefront/middleware"
	"storefront/pkg/context"
	"storefront/pkg/response"
	"storefront/service"
	"storefront/types"

	"github.com/gin-gonic/gin"
)

type AdminProduct struct {
	AuthService    service.IAdminAuthService
	ProductService service.IProductService
}

func (h *AdminProduct) RegisterRouter(r gin.IRouter) {
	g := r.Group("/admin/products", middleware.AdminAuth(h.AuthService))
	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Create))
	g.DELETE("/bulk", context.Wrap(h.BulkDelete))
	g.GET("/:id", context.Wrap(h.Get))
	g.PUT("/:id", context.Wrap(h.Update))
	g.DELETE("/:id", context.Wrap(h.Delete))
	g.PUT("/:id/stock", context.Wrap(h.UpdateStock))
	g.POST("/:id/variations", context.Wrap(h.CreateVariation))
	g.PUT("/:id/variations/:vid", context.Wrap(h.UpdateVariation))
	g.DELETE("/:id/variations/:vid", context.Wrap(h.DeleteVariation))
	g.PUT("/:id/variations/:vid/stock", context.Wrap(h.UpdateVariationStock))
}

func (h *AdminProduct) List(c *gin.Context) error {
	items, err := h.ProductService.List(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}

func (h *AdminProduct) Get(c *gin.Context) error {
	item, err := h.ProductService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, item)
	return nil
}

func (h *AdminProduct) Create(c *gin.Context) error {
	var req types.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	item, err := h.ProductService.Create(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, item)
	return nil
}

func (h *AdminProduct) Update(c *gin.Context) error {
	var req types.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	item, err := h.ProductService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, item)
	return nil
}

func (h *AdminProduct) Delete(c *gin.Context) error {
	if err := h.ProductService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

// BulkDelete 部分失败时仍返回 200，由前端展示成功与失败数量
func (h *AdminProduct) BulkDelete(c *gin.Context) error {
	var req types.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	response.Success(c, h.ProductService.BulkDelete(c.Request.Context(), req.IDs))
	return nil
}

func (h *AdminProduct) UpdateStock(c *gin.Context) error {
	var req types.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	if err := h.ProductService.UpdateStock(c.Request.Context(), c.Param("id"), *req.StockQuantity); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminProduct) CreateVariation(c *gin.Context) error {
	var req types.VariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	v, err := h.ProductService.CreateVariation(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, v)
	return nil
}

func (h *AdminProduct) UpdateVariation(c *gin.Context) error {
	var req types.VariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	if err := h.ProductService.UpdateVariation(c.Request.Context(), c.Param("id"), c.Param("vid"), &req); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminProduct) DeleteVariation(c *gin.Context) error {
	if err := h.ProductService.DeleteVariation(c.Request.Context(), c.Param("id"), c.Param("vid")); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminProduct) UpdateVariationStock(c *gin.Context) error {
	var req types.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	err := h.ProductService.UpdateVariationStock(c.Request.Context(), c.Param("id"), c.Param("vid"), *req.StockQuantity)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}
