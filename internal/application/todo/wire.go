package todo

import "github.com/google/wire"

// ProviderSet Todo 应用服务 ProviderSet
var ProviderSet = wire.NewSet(
	NewService,
)
