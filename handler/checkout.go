package handler

import (
	"storefront/middleware"
	"storefront/pkg/context"
	"storefront/pkg/response"
	"storefront/service"
	"storefront/types"

	"github.com/gin-gonic/gin"
)

type Checkout struct {
	CheckoutService service.ICheckoutService
}

func (h *Checkout) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/checkout", middleware.CartSession())
	g.GET("", context.Wrap(h.Get))
	g.DELETE("", context.Wrap(h.Reset))
	g.PUT("/details", context.Wrap(h.SubmitDetails))
	g.POST("/back", context.Wrap(h.Back))
	g.PUT("/payment", context.Wrap(h.SelectPayment))
	g.POST("/submit", context.Wrap(h.Submit))
}

// Get 确认阶段同样返回消息，供前端复制
func (h *Checkout) Get(c *gin.Context) error {
	view, err := h.CheckoutService.Get(c.Request.Context(), context.GetCartID(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, view)
	return nil
}

func (h *Checkout) SubmitDetails(c *gin.Context) error {
	var req types.DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	view, err := h.CheckoutService.SubmitDetails(c.Request.Context(), context.GetCartID(c), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, view)
	return nil
}

func (h *Checkout) Back(c *gin.Context) error {
	view, err := h.CheckoutService.Back(c.Request.Context(), context.GetCartID(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, view)
	return nil
}

func (h *Checkout) SelectPayment(c *gin.Context) error {
	var req types.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	view, err := h.CheckoutService.SelectPayment(c.Request.Context(), context.GetCartID(c), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, view)
	return nil
}

func (h *Checkout) Submit(c *gin.Context) error {
	resp, err := h.CheckoutService.Submit(c.Request.Context(), context.GetCartID(c))
	if err != nil {
		middleware.OrdersPlaced.WithLabelValues("failed").Inc()
		return bizError(err)
	}
	middleware.OrdersPlaced.WithLabelValues("ok").Inc()
	response.Success(c, resp)
	return nil
}

func (h *Checkout) Reset(c *gin.Context) error {
	if err := h.CheckoutService.Reset(c.Request.Context(), context.GetCartID(c)); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}
