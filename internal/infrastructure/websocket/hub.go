package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/cocursor/todo-service/internal/infrastructure/log"
)

// Hub WebSocket 连接管理中心
// 所有连接变更和广播都在 Run 循环中处理，保证事件按触发顺序送达
type Hub struct {
	clients map[*Client]bool
	// 注册连接
	register chan *Client
	// 注销连接
	unregister chan *Client
	// 广播消息
	broadcast chan []byte
	// 停止信号
	stopCh chan struct{}
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHub 创建 Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		stopCh:     make(chan struct{}),
		logger:     log.NewModuleLogger("websocket", "hub"),
	}
}

// Run 运行 Hub（需要在 goroutine 中运行）
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("client registered",
				"client_id", client.ID,
				"total", h.ClientCount(),
			)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Debug("client unregistered",
				"client_id", client.ID,
				"total", h.ClientCount(),
			)

		case data := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// 发送队列已满，断开该连接，不阻塞其他连接
					delete(h.clients, client)
					close(client.send)
					h.logger.Warn("client send buffer full, dropping connection",
						"client_id", client.ID,
					)
				}
			}
			h.mu.Unlock()

		case <-h.stopCh:
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Start 启动 Hub（启动后台 goroutine）
func (h *Hub) Start() {
	go h.Run()
}

// Stop 停止 Hub，关闭所有连接
func (h *Hub) Stop() {
	close(h.stopCh)
}

// Register 注册连接
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.stopCh:
	}
}

// Unregister 注销连接，重复调用安全
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.stopCh:
	}
}

// Broadcast 向所有连接广播消息
// 序列化一次，投递由 Run 循环完成，调用方不等待发送结果
func (h *Hub) Broadcast(data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- jsonData:
	case <-h.stopCh:
	}
	return nil
}

// ClientCount 当前连接数
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
