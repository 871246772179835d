package middleware

import (
	"storefront/pkg/context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CartHeader = "X-Cart-Id"

// CartSession 读取购物车 ID，缺失或非法时签发新的并通过响应头返回
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CartHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(CartHeader, id)
		c.Set(context.CtxCartID, id)
		c.Next()
	}
}
