package handler

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"

	"github.com/cocursor/todo-service/internal/infrastructure/config"
	"github.com/cocursor/todo-service/internal/infrastructure/log"
	"github.com/cocursor/todo-service/internal/infrastructure/websocket"
)

// WSHandler WebSocket 接入处理器
type WSHandler struct {
	hub      *websocket.Hub
	sendBuf  int
	upgrader gorilla.Upgrader
	logger   *slog.Logger
}

// NewWSHandler 创建 WebSocket 接入处理器
func NewWSHandler(hub *websocket.Hub, cfg *config.WebSocketConfig) *WSHandler {
	return &WSHandler{
		hub:     hub,
		sendBuf: cfg.SendBufferSize,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true // 测试客户端无 Origin 头
			},
		},
		logger: log.NewModuleLogger("http", "ws_handler"),
	}
}

// Handle 处理 WebSocket 升级请求
// 连接无需握手载荷，升级成功即注册到 Hub 开始接收广播
func (h *WSHandler) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection",
			"remote", c.Request.RemoteAddr,
			"error", err,
		)
		return
	}

	client := websocket.NewClient(h.hub, conn, h.sendBuf)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
