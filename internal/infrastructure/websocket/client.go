package websocket

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/cocursor/todo-service/internal/infrastructure/log"
)

const (
	// 写超时
	writeWait = 10 * time.Second
	// pong 等待时间，超时视为连接断开
	pongWait = 60 * time.Second
	// ping 发送周期，必须小于 pongWait
	pingPeriod = (pongWait * 9) / 10
	// 入站消息大小上限，本服务不处理入站消息
	maxMessageSize = 512
)

// Client 单个 WebSocket 连接
type Client struct {
	// ID 连接标识，用于日志排查
	ID     string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	logger *slog.Logger
}

// NewClient 创建连接对象
func NewClient(hub *Hub, conn *websocket.Conn, sendBufferSize int) *Client {
	if sendBufferSize <= 0 {
		sendBufferSize = 256
	}
	return &Client{
		ID:     uuid.NewString(),
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		logger: log.NewModuleLogger("websocket", "client"),
	}
}

// ReadPump 读取循环
// 客户端不需要发送业务消息，入站数据直接丢弃，读错误即注销连接
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
			) {
				c.logger.Warn("unexpected close",
					"client_id", c.ID,
					"error", err,
				)
			}
			return
		}
	}
}

// WritePump 写入循环
// 从发送队列取消息写出，定期发送 ping 保活
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub 已关闭该连接
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.logger.Debug("write failed",
					"client_id", c.ID,
					"error", err,
				)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
