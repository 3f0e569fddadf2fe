package storage

import (
	"github.com/cocursor/todo-service/internal/domain/todo"
	"github.com/google/wire"
)

// ProviderSet Storage 基础设施层 ProviderSet
var ProviderSet = wire.NewSet(
	NewMemoryTodoRepository, // 内存待办仓储
	wire.Bind(new(todo.Repository), new(*MemoryTodoRepository)),
)
