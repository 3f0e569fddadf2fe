package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cocursor/todo-service/internal/infrastructure/config"
)

func newGuard() *BasicAuth {
	return NewBasicAuth(&config.AuthConfig{Username: "admin", Password: "admin"})
}

func TestBasicAuth_Verify(t *testing.T) {
	guard := newGuard()

	tests := []struct {
		name     string
		username string
		password string
		expected bool
	}{
		{"正确凭证", "admin", "admin", true},
		{"错误密码", "admin", "wrong", false},
		{"错误用户名", "invalid", "admin", false},
		{"空凭证", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/todos/1", nil)
			req.SetBasicAuth(tt.username, tt.password)
			assert.Equal(t, tt.expected, guard.Verify(req))
		})
	}
}

func TestBasicAuth_VerifyWithoutHeader(t *testing.T) {
	guard := newGuard()
	req := httptest.NewRequest(http.MethodDelete, "/todos/1", nil)

	assert.False(t, guard.Verify(req))
	assert.False(t, guard.HasCredentials(req))

	req.SetBasicAuth("admin", "admin")
	assert.True(t, guard.HasCredentials(req))
}

func TestBasicAuth_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	guard := newGuard()

	router := gin.New()
	router.DELETE("/todos/:id", guard.Handler(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("无凭证被拦截", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/todos/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
	})

	t.Run("正确凭证放行", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/todos/1", nil)
		req.SetBasicAuth("admin", "admin")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestBasicAuth_SetCredentials(t *testing.T) {
	guard := newGuard()

	req := httptest.NewRequest(http.MethodDelete, "/todos/1", nil)
	req.SetBasicAuth("admin", "admin")
	assert.True(t, guard.Verify(req))

	// 热更新后旧凭证立即失效
	guard.SetCredentials("operator", "s3cret")
	assert.False(t, guard.Verify(req))

	req.SetBasicAuth("operator", "s3cret")
	assert.True(t, guard.Verify(req))
}
