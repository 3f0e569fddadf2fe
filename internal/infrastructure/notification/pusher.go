package notification

import (
	"github.com/cocursor/todo-service/internal/application/notification"
	"github.com/cocursor/todo-service/internal/infrastructure/websocket"
)

// WebSocketPusher WebSocket 推送实现
type WebSocketPusher struct {
	hub *websocket.Hub
}

// NewWebSocketPusher 创建 WebSocket 推送器
func NewWebSocketPusher(hub *websocket.Hub) *WebSocketPusher {
	return &WebSocketPusher{hub: hub}
}

// Push 广播事件到所有连接
func (p *WebSocketPusher) Push(event *notification.NewTodoEvent) error {
	return p.hub.Broadcast(event)
}

// 编译时检查接口实现
var _ notification.Pusher = (*WebSocketPusher)(nil)
