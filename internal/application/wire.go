package application

import (
	"github.com/cocursor/todo-service/internal/application/todo"
	"github.com/google/wire"
)

// ProviderSet Application 层总 ProviderSet
var ProviderSet = wire.NewSet(
	todo.ProviderSet,
)
