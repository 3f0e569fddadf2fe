package infrastructure

import (
	"github.com/cocursor/todo-service/internal/infrastructure/config"
	"github.com/cocursor/todo-service/internal/infrastructure/notification"
	"github.com/cocursor/todo-service/internal/infrastructure/storage"
	"github.com/cocursor/todo-service/internal/infrastructure/watcher"
	"github.com/cocursor/todo-service/internal/infrastructure/websocket"
	"github.com/google/wire"
)

// ProviderSet Infrastructure 层总 ProviderSet
var ProviderSet = wire.NewSet(
	config.ProviderSet,
	websocket.ProviderSet,
	notification.ProviderSet,
	storage.ProviderSet,
	watcher.ProviderSet,
)
