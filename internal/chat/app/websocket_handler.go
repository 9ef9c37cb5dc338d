package app

import (
	"context"
	"encoding/json"
	"time"

	"social_chat_service/internal/chat/domain"
	"social_chat_service/pkg/config"
	"social_chat_service/pkg/logger"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// ChatWebsocketHandler websocket 連線進入點
type ChatWebsocketHandler struct {
	router *EventRouter
	cfg    config.WebsocketConfig
}

// NewChatWebsocketHandler create ChatWebsocketHandler
func NewChatWebsocketHandler(router *EventRouter, cfg config.WebsocketConfig) *ChatWebsocketHandler {
	return &ChatWebsocketHandler{
		router: router,
		cfg:    cfg,
	}
}

// HandleConnection 是 WebSocket 連線的進入點, 回傳時連線已結束
func (h *ChatWebsocketHandler) HandleConnection(ctx context.Context, conn *websocket.Conn) {
	client := NewClient(conn, h.cfg)
	logger.Log.Info("websocket open", zap.String("conn_id", client.ID), zap.String("remote", conn.RemoteAddr().String()))

	h.router.Connect(client)
	client.Start()

	defer func() {
		h.router.Disconnect(client)
		client.Close(websocket.CloseNormalClosure, "")
		// handler 回傳後 fiber 會回收 conn
		client.Wait()
		logger.Log.Info("websocket close", zap.String("conn_id", client.ID), zap.String("user_id", client.UserID()))
	}()

	//server發出ping之後client連線正常會回pong, 每次pong延長讀取期限
	_ = conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})

	//client發出close
	//fiber會自動處理(在read msg 回傳err),故需要SetCloseHandler另外接出
	conn.SetCloseHandler(func(code int, text string) error {
		logger.Log.Debug("websocket close frame", zap.String("conn_id", client.ID), zap.Int("code", code))
		return nil
	})

	for {
		// 1. 讀取前端訊息
		mt, message, err := conn.ReadMessage()
		if err != nil {
			// 檢查是否為 Close 正常結束
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Log.Debug("connection closed", zap.String("conn_id", client.ID), zap.Error(err))
			} else {
				//直接斷線 1006 or read deadline
				logger.Log.Warn("websocket read error", zap.String("conn_id", client.ID), zap.Error(err))
			}
			return
		}
		h.execWebsocketAction(ctx, client, mt, message)
	}
}

func (h *ChatWebsocketHandler) execWebsocketAction(ctx context.Context, client *Client, mt int, msg []byte) {
	switch mt {
	case websocket.TextMessage:
		var req domain.WSRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			h.router.replyError(client, "", "invalid json frame")
			return
		}
		h.router.Dispatch(ctx, client, req)

	default:
		h.router.replyError(client, "", "unsupported message type")
	}
}
