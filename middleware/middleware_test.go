package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appctx "storefront/pkg/context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIPRateLimiter(t *testing.T) {
	l := NewIPRateLimiter(3)
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"))
	}
	assert.False(t, l.Allow("10.0.0.1"))
	// 不同 IP 互不影响
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.GET("/track", RateLimit(NewIPRateLimiter(1)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/track", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/track", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestCartSession(t *testing.T) {
	r := gin.New()
	r.GET("/cart", CartSession(), func(c *gin.Context) {
		c.String(http.StatusOK, appctx.GetCartID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))
	issued := w.Header().Get(CartHeader)
	_, err := uuid.Parse(issued)
	assert.NoError(t, err)
	assert.Equal(t, issued, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(CartHeader, issued)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, issued, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(CartHeader, "../../etc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "../../etc", w.Header().Get(CartHeader))
}

type stubVerifier map[string]string

func (s stubVerifier) Verify(_ context.Context, token string) (string, error) {
	if sid, ok := s[token]; ok {
		return sid, nil
	}
	return "", errors.New("expired")
}

func TestAdminAuth(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AdminAuth(stubVerifier{"good": "sid-1"}), func(c *gin.Context) {
		sid, err := appctx.GetSessionID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, sid)
	})

	cases := []struct {
		header string
		code   int
	}{
		{"", http.StatusUnauthorized},
		{"Token good", http.StatusUnauthorized},
		{"Bearer bad", http.StatusUnauthorized},
		{"Bearer good", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.code, w.Code, tc.header)
		if tc.code == http.StatusOK {
			assert.Equal(t, "sid-1", w.Body.String())
		}
	}
}
