package handler

import (
	"storefront/config"
	"storefront/middleware"
	"storefront/pkg/context"
	"storefront/pkg/response"
	"storefront/service"

	"github.com/gin-gonic/gin"
)

type Tracking struct {
	OrderService service.IOrderService
	Shop         *config.Shop
}

func (h *Tracking) RegisterRouter(r gin.IRouter) {
	limiter := middleware.NewIPRateLimiter(h.Shop.TrackingRate)
	r.GET("/v1/orders/track/:ref", middleware.RateLimit(limiter), context.Wrap(h.Track))
}

// Track 按订单编号查询进度，不返回客户信息
func (h *Tracking) Track(c *gin.Context) error {
	view, err := h.OrderService.Track(c.Request.Context(), c.Param("ref"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, view)
	return nil
}
