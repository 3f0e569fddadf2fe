package middleware

import (
	"crypto/subtle"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/cocursor/todo-service/internal/infrastructure/config"
	"github.com/cocursor/todo-service/internal/interfaces/http/response"
)

// 认证失败业务码
const codeUnauthorized = 100401

// BasicAuth HTTP Basic 认证守卫
// 凭证可在运行时替换（配置热更新），读写用锁保护
type BasicAuth struct {
	mu       sync.RWMutex
	username string
	password string
}

// NewBasicAuth 创建认证守卫
func NewBasicAuth(cfg *config.AuthConfig) *BasicAuth {
	return &BasicAuth{
		username: cfg.Username,
		password: cfg.Password,
	}
}

// SetCredentials 替换凭证（配置热更新时调用）
func (a *BasicAuth) SetCredentials(username, password string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.username = username
	a.password = password
}

// Verify 校验请求携带的 Basic 凭证
func (a *BasicAuth) Verify(r *http.Request) bool {
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(a.password)) == 1
	return userOK && passOK
}

// HasCredentials 请求是否携带了 Authorization 头
func (a *BasicAuth) HasCredentials(r *http.Request) bool {
	return r.Header.Get("Authorization") != ""
}

// Handler 认证中间件
// 凭证缺失或错误一律 401，先于资源存在性检查执行
func (a *BasicAuth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Verify(c.Request) {
			c.Header("WWW-Authenticate", `Basic realm="todo-service"`)
			response.Error(c, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
