package http

import (
	"github.com/cocursor/todo-service/internal/interfaces/http/handler"
	"github.com/cocursor/todo-service/internal/interfaces/http/middleware"
	"github.com/google/wire"
)

// ProviderSet HTTP 接口层 ProviderSet
var ProviderSet = wire.NewSet(
	handler.ProviderSet,
	middleware.NewBasicAuth,
	NewServer,
)
