package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareEchoesOrReplacesHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	var seen, fromCtx string
	r.GET("/", func(c *gin.Context) {
		seen = Value(c)
		fromCtx = FromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	for _, tc := range []struct {
		header string
		echo   bool
	}{
		{"cli-7f3a", true},
		{"", false},
		{"has space", false},
		{strings.Repeat("a", 65), false},
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set(HeaderKey, tc.header)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		got := rec.Header().Get(HeaderKey)
		assert.NotEmpty(t, got)
		assert.Equal(t, got, seen)
		assert.Equal(t, got, fromCtx)
		if tc.echo {
			assert.Equal(t, tc.header, got)
		} else {
			assert.NotEqual(t, tc.header, got)
		}
	}
}

func TestFromContext(t *testing.T) {
	ctx := WithContext(context.Background(), "pinned")
	assert.Equal(t, "pinned", FromContext(ctx))

	a, b := FromContext(context.Background()), FromContext(context.Background())
	assert.NotEqual(t, a, b)
}
