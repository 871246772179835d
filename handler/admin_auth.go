package handler

import (
	"storefront/config"
	"storefront/middleware"
	"storefront/pkg/context"
	"storefront/pkg/response"
	"storefront/service"
	"storefront/types"

	"github.com/gin-gonic/gin"
)

type AdminAuth struct {
	AuthService service.IAdminAuthService
	Admin       *config.Admin
}

func (h *AdminAuth) RegisterRouter(r gin.IRouter) {
	limiter := middleware.NewIPRateLimiter(h.Admin.LoginRate)
	g := r.Group("/admin")
	g.POST("/login", middleware.RateLimit(limiter), context.Wrap(h.Login))
	g.POST("/logout", middleware.AdminAuth(h.AuthService), context.Wrap(h.Logout))
}

func (h *AdminAuth) Login(c *gin.Context) error {
	var req types.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	resp, err := h.AuthService.Login(c.Request.Context(), req.Password)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *AdminAuth) Logout(c *gin.Context) error {
	sid, err := context.GetSessionID(c)
	if err != nil {
		return response.Unauthorized(err.Error())
	}
	if err := h.AuthService.Logout(c.Request.Context(), sid); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}
