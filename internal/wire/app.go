package wire

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/cocursor/todo-service/internal/infrastructure/config"
	applog "github.com/cocursor/todo-service/internal/infrastructure/log"
	"github.com/cocursor/todo-service/internal/infrastructure/watcher"
	"github.com/cocursor/todo-service/internal/infrastructure/websocket"
	httpserver "github.com/cocursor/todo-service/internal/interfaces/http"
	"github.com/cocursor/todo-service/internal/interfaces/http/middleware"
)

// App 应用主结构，组合所有服务
type App struct {
	HTTPServer    *httpserver.HTTPServer
	wsHub         *websocket.Hub
	configWatcher *watcher.ConfigWatcher
	authGuard     *middleware.BasicAuth
	logger        *slog.Logger
}

// NewApp 创建应用实例
func NewApp(
	httpServer *httpserver.HTTPServer,
	wsHub *websocket.Hub,
	configWatcher *watcher.ConfigWatcher,
	authGuard *middleware.BasicAuth,
) *App {
	return &App{
		HTTPServer:    httpServer,
		wsHub:         wsHub,
		configWatcher: configWatcher,
		authGuard:     authGuard,
		logger:        applog.NewModuleLogger("app", "main"),
	}
}

// Start 启动所有服务
func (a *App) Start() error {
	// 启动 WebSocket Hub
	a.wsHub.Start()

	// 配置热更新：凭证和日志级别无需重启即可生效
	a.configWatcher.OnReload(func(cfg *config.Config) {
		a.authGuard.SetCredentials(cfg.Auth.Username, cfg.Auth.Password)
		applog.SetLevel(cfg.Log.Level)
		a.logger.Info("credentials and log level refreshed")
	})
	if err := a.configWatcher.Start(); err != nil {
		a.logger.Error("Failed to start config watcher",
			"error", err,
		)
	}

	// 启动 HTTP 服务器（goroutine）
	go func() {
		if err := a.HTTPServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	a.logger.Info("todo-service application started successfully")
	return nil
}

// Stop 停止所有服务
func (a *App) Stop() error {
	var firstErr error

	if err := a.HTTPServer.Stop(); err != nil {
		a.logger.Error("Error stopping HTTP server",
			"error", err,
		)
		firstErr = err
	}

	a.configWatcher.Stop()
	a.wsHub.Stop()

	return firstErr
}
