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

type Cart struct {
	CartService  service.ICartService
	PromoService service.IPromoService
}

func (h *Cart) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/cart", middleware.CartSession())
	g.GET("", context.Wrap(h.Get))
	g.DELETE("", context.Wrap(h.Clear))
	g.POST("/items", context.Wrap(h.Add))
	g.PUT("/items/:index", context.Wrap(h.UpdateQuantity))
	g.DELETE("/items/:index", context.Wrap(h.Remove))
	g.POST("/promo", context.Wrap(h.CheckPromo))
}

func lineIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, response.BadRequest("line index must be a number")
	}
	return index, nil
}

func (h *Cart) Get(c *gin.Context) error {
	view, err := h.CartService.Get(c.Request.Context(), context.GetCartID(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, view)
	return nil
}

// Add 加入购物车，同一商品重复加入会新增一行
func (h *Cart) Add(c *gin.Context) error {
	var req types.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	view, err := h.CartService.Add(c.Request.Context(), context.GetCartID(c), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, view)
	return nil
}

func (h *Cart) UpdateQuantity(c *gin.Context) error {
	index, err := lineIndex(c)
	if err != nil {
		return err
	}
	var req types.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	view, err := h.CartService.UpdateQuantity(c.Request.Context(), context.GetCartID(c), index, req.Quantity)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, view)
	return nil
}

func (h *Cart) Remove(c *gin.Context) error {
	index, err := lineIndex(c)
	if err != nil {
		return err
	}
	view, err := h.CartService.Remove(c.Request.Context(), context.GetCartID(c), index)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, view)
	return nil
}

func (h *Cart) Clear(c *gin.Context) error {
	if err := h.CartService.Clear(c.Request.Context(), context.GetCartID(c)); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Cart) CheckPromo(c *gin.Context) error {
	var req types.PromoCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	resp, err := h.PromoService.Preview(c.Request.Context(), context.GetCartID(c), req.Code)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
