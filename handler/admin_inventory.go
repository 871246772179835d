package handler

import (
	"storefront/middleware"
	"storefront/pkg/context"
	"storefront/service"
	"storefront/types"

	"github.com/gin-gonic/gin"
)

type AdminInventory struct {
	AuthService      service.IAdminAuthService
	InventoryService service.IInventoryService
}

func (h *AdminInventory) RegisterRouter(r gin.IRouter) {
	g := r.Group("/admin/inventory", middleware.AdminAuth(h.AuthService))
	g.GET("", context.Wrap(h.List))
	g.GET("/stats", context.Wrap(h.Stats))
}

func (h *AdminInventory) Stats(c *gin.Context) error {
	stats, err := h.InventoryService.Stats(c.Request.Context())
	return reply(c, stats, err)
}

func (h *AdminInventory) List(c *gin.Context) error {
	var req types.InventoryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindError(err)
	}
	items, err := h.InventoryService.List(c.Request.Context(), req.Filter)
	return reply(c, items, err)
}
