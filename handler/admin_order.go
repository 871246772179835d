package handler

import (
	"storefront/middleware"
	"storefront/pkg/context"
	"storefront/pkg/response"
	"storefront/service"
	"storefront/types"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminOrder struct {
	AuthService  service.IAdminAuthService
	OrderService service.IOrderService
}

func (h *AdminOrder) RegisterRouter(r gin.IRouter) {
	g := r.Group("/admin/orders", middleware.AdminAuth(h.AuthService))
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Get))
	g.PUT("/:id/status", context.Wrap(h.UpdateStatus))
	g.PUT("/:id/payment-status", context.Wrap(h.UpdatePaymentStatus))
	g.PUT("/:id/shipping", context.Wrap(h.UpdateShipping))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

func orderID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, response.BadRequest("order id must be a number")
	}
	return id, nil
}

// List 游标分页，escalated=true 只看超时未确认的订单
func (h *AdminOrder) List(c *gin.Context) error {
	var req types.OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindError(err)
	}
	resp, err := h.OrderService.List(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *AdminOrder) Get(c *gin.Context) error {
	id, err := orderID(c)
	if err != nil {
		return err
	}
	order, err := h.OrderService.Get(c.Request.Context(), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, order)
	return nil
}

func (h *AdminOrder) UpdateStatus(c *gin.Context) error {
	id, err := orderID(c)
	if err != nil {
		return err
	}
	var req types.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	if err := h.OrderService.UpdateStatus(c.Request.Context(), id, req.OrderStatus); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminOrder) UpdatePaymentStatus(c *gin.Context) error {
	id, err := orderID(c)
	if err != nil {
		return err
	}
	var req types.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	if err := h.OrderService.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminOrder) UpdateShipping(c *gin.Context) error {
	id, err := orderID(c)
	if err != nil {
		return err
	}
	var req types.ShippingInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	if err := h.OrderService.UpdateShipping(c.Request.Context(), id, &req); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *AdminOrder) Delete(c *gin.Context) error {
	id, err := orderID(c)
	if err != nil {
		return err
	}
	if err := h.OrderService.Delete(c.Request.Context(), id); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}
