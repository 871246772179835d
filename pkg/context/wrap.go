package context

import (
	"errors"
	"net/http"
	"storefront/pkg/log"
	"storefront/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxSessionID = "admin_session_id"
	CtxCartID    = "cart_id"
)

type HandlerFunc func(*gin.Context) error

type errorBody struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Hint string `json:"hint,omitempty"`
}

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				status := be.Code
				if status < 400 || status > 599 {
					status = http.StatusOK
				}
				if status >= http.StatusInternalServerError {
					log.L.Error("request failed", zap.String("path", c.FullPath()), zap.String("msg", be.Msg))
				}
				c.JSON(status, errorBody{
					Code: be.Code,
					Msg:  be.Msg,
					Hint: be.Hint,
				})
				return
			}
			log.L.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, errorBody{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetSessionID(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxSessionID)
	if !ok {
		return "", errors.New("admin session missing")
	}

	sid, ok := v.(string)
	if !ok {
		return "", errors.New("admin session has wrong type")
	}

	return sid, nil
}

// GetCartID 购物车 ID 由 middleware.CartSession 写入
func GetCartID(c *gin.Context) string {
	return c.GetString(CtxCartID)
}
