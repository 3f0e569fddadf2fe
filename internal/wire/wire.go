//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/cocursor/todo-service/internal/application"
	appNotification "github.com/cocursor/todo-service/internal/application/notification"
	"github.com/cocursor/todo-service/internal/infrastructure"
	infraNotification "github.com/cocursor/todo-service/internal/infrastructure/notification"
	"github.com/cocursor/todo-service/internal/interfaces/http"
	"github.com/google/wire"
)

// InitializeAll 初始化所有服务
func InitializeAll() (*App, error) {
	wire.Build(
		// 按层组合 ProviderSet
		infrastructure.ProviderSet, // 基础设施层
		application.ProviderSet,    // 应用层
		http.ProviderSet,           // 接口层
		// 接口绑定：application.Pusher -> infrastructure.WebSocketPusher
		wire.Bind(
			new(appNotification.Pusher),
			new(*infraNotification.WebSocketPusher),
		),
		NewApp, // 组合所有服务的应用结构
	)
	return nil, nil
}
