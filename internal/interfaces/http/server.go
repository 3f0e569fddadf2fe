package http

import (
	"context"
	"net/http"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cocursor/todo-service/internal/infrastructure/config"
	"github.com/cocursor/todo-service/internal/infrastructure/log"
	"github.com/cocursor/todo-service/internal/interfaces/http/handler"
	"github.com/cocursor/todo-service/internal/interfaces/http/middleware"

	_ "github.com/cocursor/todo-service/docs" // Swagger docs
)

// HTTPServer HTTP 服务器
type HTTPServer struct {
	router   *gin.Engine
	httpPort string
	server   *http.Server
	logger   *slog.Logger
}

// NewServer 创建 HTTP 服务器
func NewServer(
	todoHandler *handler.TodoHandler,
	wsHandler *handler.WSHandler,
	authGuard *middleware.BasicAuth,
	serverCfg *config.ServerConfig,
) *HTTPServer {
	router := gin.Default()

	logger := log.NewModuleLogger("http", "server")

	// 注册路由
	// 创建和查询无需认证；删除必须先通过认证（凭证错误优先于 404）；
	// 更新的认证与请求体检查顺序由 handler 内部控制
	router.POST("/todos", todoHandler.Create)
	router.GET("/todos", todoHandler.List)
	router.PUT("/todos/:id", todoHandler.Update)
	router.DELETE("/todos/:id", authGuard.Handler(), todoHandler.Delete)

	// WebSocket 推送
	router.GET("/ws", wsHandler.Handle)

	// 健康检查（同时用于单例锁探测）
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &HTTPServer{
		router:   router,
		httpPort: serverCfg.HTTPPort,
		logger:   logger,
	}
}

// Start 启动服务器
func (s *HTTPServer) Start() error {
	s.server = &http.Server{
		Addr:    s.httpPort,
		Handler: s.router,
	}

	s.logger.Info("HTTP server starting",
		"port", s.httpPort,
	)

	return s.server.ListenAndServe()
}

// Shutdown 优雅关闭
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Stop 停止服务器
func (s *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}
