package handler

import (
	"errors"
	"storefront/middleware"
	"storefront/pkg/context"
	"storefront/pkg/response"
	"storefront/service"
	"storefront/types"

	"github.com/gin-gonic/gin"
)

type AdminImage struct {
	AuthService  service.IAdminAuthService
	ImageService service.IImageService
}

func (h *AdminImage) RegisterRouter(r gin.IRouter) {
	g := r.Group("/admin/images", middleware.AdminAuth(h.AuthService))
	g.POST("", context.Wrap(h.Upload))
	g.DELETE("", context.Wrap(h.Delete))
}

// Upload 表单字段 image，可选 folder
func (h *AdminImage) Upload(c *gin.Context) error {
	header, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest("missing image file")
	}
	resp, err := h.ImageService.Upload(c.Request.Context(), header, c.PostForm("folder"))
	switch {
	case err == nil:
		middleware.ImageUploads.WithLabelValues("ok").Inc()
	case errors.Is(err, service.ErrUploadTimeout):
		middleware.ImageUploads.WithLabelValues("timeout").Inc()
	default:
		middleware.ImageUploads.WithLabelValues("error").Inc()
	}
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *AdminImage) Delete(c *gin.Context) error {
	var req types.DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	if err := h.ImageService.Delete(c.Request.Context(), req.URL); err != nil {
		return bizError(err)
	}
	response.Success(c, nil)
	return nil
}
