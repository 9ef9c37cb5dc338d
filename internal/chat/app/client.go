package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"social_chat_service/internal/chat/domain"
	"social_chat_service/pkg/config"
	"social_chat_service/pkg/logger"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrClientClosed client already closed
	ErrClientClosed = errors.New("connection closed")
	// ErrSendBufferFull outbound queue full, client is closed
	ErrSendBufferFull = errors.New("connection buffer exceeded")
)

// wsConn websocket write side, *websocket.Conn 實作
type wsConn interface {
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Client 一條 websocket 連線
//
// 所有寫入都經過 send channel 由 writeLoop 單一 goroutine 送出.
type Client struct {
	ID string

	ws      wsConn
	cfg     config.WebsocketConfig
	send    chan []byte
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once

	closeCode   int
	closeReason string

	mu     sync.RWMutex
	userID string
}

// NewClient create Client, ID 為新的 uuid
func NewClient(ws wsConn, cfg config.WebsocketConfig) *Client {
	return &Client{
		ID:      uuid.NewString(),
		ws:      ws,
		cfg:     cfg,
		send:    make(chan []byte, cfg.SendBuffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// UserID identify 後綁定的 user, 未 identify 時為空字串
func (c *Client) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

func (c *Client) setUserID(userID string) {
	c.mu.Lock()
	c.userID = userID
	c.mu.Unlock()
}

// Start launch the write loop, 每條連線只能呼叫一次
func (c *Client) Start() {
	go c.writeLoop()
}

// Send 序列化後放入 send queue
func (c *Client) Send(evt domain.WSEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", evt.Action, err)
	}
	return c.sendRaw(data)
}

// sendRaw 不阻塞, queue 滿時直接關閉連線
func (c *Client) sendRaw(data []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}

	select {
	case c.send <- data:
		return nil
	default:
		c.Close(websocket.CloseGoingAway, "send buffer full")
		return ErrSendBufferFull
	}
}

// Done closed when the client is closed
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Wait 等 writeLoop 結束, 之後不會再碰底層連線
func (c *Client) Wait() {
	<-c.stopped
}

// Close 標記關閉, close frame 與底層連線由 writeLoop 處理
func (c *Client) Close(code int, reason string) {
	c.once.Do(func() {
		c.closeCode = code
		c.closeReason = reason
		close(c.done)
	})
}

func (c *Client) writeLoop() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.writeClose()
		close(c.stopped)
	}()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.write(websocket.TextMessage, msg); err != nil {
				logger.Log.Debug("websocket write error", zap.String("conn_id", c.ID), zap.Error(err))
				c.Close(websocket.CloseAbnormalClosure, "")
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				logger.Log.Debug("websocket ping error", zap.String("conn_id", c.ID), zap.Error(err))
				c.Close(websocket.CloseAbnormalClosure, "")
				return
			}
		}
	}
}

func (c *Client) write(messageType int, data []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(messageType, data)
}

func (c *Client) writeClose() {
	if c.closeCode != websocket.CloseAbnormalClosure {
		deadline := time.Now().Add(c.cfg.WriteWait)
		_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(c.closeCode, c.closeReason), deadline)
	}
	_ = c.ws.Close()
}
