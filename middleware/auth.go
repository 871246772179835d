package middleware

import (
	"context"
	"net/http"
	"strings"

	appctx "storefront/pkg/context"
	"storefront/pkg/log"
	"storefront/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionVerifier 校验管理员 token 与服务端会话
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// AdminAuth 每次请求都检查 redis 中的会话，注销后旧 token 立即失效
func AdminAuth(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		sid, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			log.L.Info("admin auth rejected", zap.String("path", c.FullPath()), zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "admin session expired, please log in again")
			return
		}
		c.Set(appctx.CtxSessionID, sid)

		c.Next()
	}
}
