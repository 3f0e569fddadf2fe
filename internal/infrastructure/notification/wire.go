package notification

import "github.com/google/wire"

// ProviderSet Notification 基础设施层 ProviderSet
var ProviderSet = wire.NewSet(
	NewWebSocketPusher,
)
