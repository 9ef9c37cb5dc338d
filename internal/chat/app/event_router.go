package app

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"social_chat_service/internal/chat/domain"
	"social_chat_service/pkg/logger"

	"go.uber.org/zap"
)

// MessageSender persist a chat message, 只有寫入訊息失敗才回傳 error
type MessageSender interface {
	Execute(ctx context.Context, conversationID, senderID, text string) (*domain.Message, error)
}

// EventRouter 處理每條連線的 realtime event
//
// mu 保護 clients, 並讓 presence 變動與 online_users 廣播依同一順序送出.
type EventRouter struct {
	mu      sync.Mutex
	clients map[string]*Client

	presence  *PresenceRegistry
	messageUC MessageSender
	metrics   *Metrics
	opTimeout time.Duration
}

// NewEventRouter create EventRouter
func NewEventRouter(presence *PresenceRegistry, messageUC MessageSender, metrics *Metrics, opTimeout time.Duration) *EventRouter {
	return &EventRouter{
		clients:   make(map[string]*Client),
		presence:  presence,
		messageUC: messageUC,
		metrics:   metrics,
		opTimeout: opTimeout,
	}
}

// Connect 新連線加入廣播名單 (尚未 identify)
func (r *EventRouter) Connect(c *Client) {
	r.mu.Lock()
	r.clients[c.ID] = c
	r.metrics.Connections.Set(float64(len(r.clients)))
	r.mu.Unlock()
}

// Disconnect 依連線 ID 移除 presence 並廣播 online_users
func (r *EventRouter) Disconnect(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clients, c.ID)
	r.metrics.Connections.Set(float64(len(r.clients)))

	if userID, ok := r.presence.Unregister(c.ID); ok {
		logger.Log.Info("user offline", zap.String("user_id", userID), zap.String("conn_id", c.ID))
	}
	r.broadcastOnlineUsersLocked()
}

// Dispatch 執行單一 event, 同一連線的 event 依序呼叫
func (r *EventRouter) Dispatch(ctx context.Context, c *Client, req domain.WSRequest) {
	switch req.Action {
	case domain.Identify:
		r.countEvent(req.Action)
		r.identify(c, req)

	case domain.SendMessage:
		r.countEvent(req.Action)
		r.sendMessage(ctx, c, req)

	case domain.TypingStart:
		r.countEvent(req.Action)
		r.typing(c, req, domain.TypingIndicatorOn)

	case domain.TypingStop:
		r.countEvent(req.Action)
		r.typing(c, req, domain.TypingIndicatorOff)

	default:
		r.countEvent("unknown")
		r.replyError(c, req.Action, "unknown action")
	}
}

// PushToUser 送到 user 目前的連線, 不在線回傳 false
func (r *EventRouter) PushToUser(userID string, evt domain.WSEvent) bool {
	return r.pushToUser(userID, evt, "")
}

func (r *EventRouter) pushToUser(userID string, evt domain.WSEvent, skipConnID string) bool {
	r.mu.Lock()
	var target *Client
	if connID, ok := r.presence.Lookup(userID); ok && connID != skipConnID {
		target = r.clients[connID]
	}
	r.mu.Unlock()

	if target == nil {
		r.metrics.PushOffline.WithLabelValues(string(evt.Action)).Inc()
		return false
	}
	if err := target.Send(evt); err != nil {
		r.logSendErr(target, evt.Action, err)
		return false
	}
	r.metrics.PushOK.WithLabelValues(string(evt.Action)).Inc()
	return true
}

func (r *EventRouter) countEvent(action domain.Action) {
	r.metrics.Events.WithLabelValues(string(action)).Inc()
}

func (r *EventRouter) identify(c *Client, req domain.WSRequest) {
	if req.UserID == "" {
		r.replyError(c, req.Action, "user_id is required")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.presence.Register(req.UserID, c.ID)
	c.setUserID(req.UserID)
	logger.Log.Info("user online", zap.String("user_id", req.UserID), zap.String("conn_id", c.ID))
	r.broadcastOnlineUsersLocked()
}

func (r *EventRouter) sendMessage(ctx context.Context, c *Client, req domain.WSRequest) {
	senderID := req.Sender
	if senderID == "" {
		senderID = c.UserID()
	}
	if senderID == "" {
		r.replyError(c, req.Action, "sender is required")
		return
	}

	// 連線中斷不取消已開始的寫入
	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.opTimeout)
	defer cancel()

	msg, err := r.messageUC.Execute(opCtx, req.ConversationID, senderID, req.Text)
	if err != nil {
		logger.Log.Error("send message dropped",
			zap.String("conn_id", c.ID),
			zap.String("user_id", senderID),
			zap.String("conversation_id", req.ConversationID),
			zap.Error(err),
		)
		return
	}

	evt := domain.WSEvent{Action: domain.MessageDelivered, Payload: msg}
	if req.ReceiverID != "" {
		r.pushToUser(req.ReceiverID, evt, c.ID)
	}
	if err := c.Send(evt); err != nil {
		r.logSendErr(c, evt.Action, err)
	}
}

func (r *EventRouter) typing(c *Client, req domain.WSRequest, action domain.Action) {
	if req.ReceiverID == "" {
		r.replyError(c, req.Action, "receiver_id is required")
		return
	}
	r.pushToUser(req.ReceiverID, domain.WSEvent{Action: action}, "")
}

func (r *EventRouter) broadcastOnlineUsersLocked() {
	ids := r.presence.ListOnlineUserIDs()
	r.metrics.OnlineUsers.Set(float64(len(ids)))

	data, err := json.Marshal(domain.WSEvent{Action: domain.OnlineUsers, Payload: ids})
	if err != nil {
		logger.Log.Errorf("marshal online users", err)
		return
	}
	for _, c := range r.clients {
		if err := c.sendRaw(data); err != nil {
			r.logSendErr(c, domain.OnlineUsers, err)
		}
	}
}

func (r *EventRouter) replyError(c *Client, action domain.Action, msg string) {
	logger.Log.Warn("websocket bad request",
		zap.String("conn_id", c.ID),
		zap.String("user_id", c.UserID()),
		zap.String("action", string(action)),
		zap.String("err", msg),
	)
	if err := c.Send(domain.WSEvent{Action: domain.ActionError, Payload: domain.ErrorPayload{Error: msg}}); err != nil {
		r.logSendErr(c, domain.ActionError, err)
	}
}

func (r *EventRouter) logSendErr(c *Client, action domain.Action, err error) {
	if errors.Is(err, ErrSendBufferFull) {
		r.metrics.Backpressure.Inc()
	}
	logger.Log.Debug("websocket send skipped",
		zap.String("conn_id", c.ID),
		zap.String("action", string(action)),
		zap.Error(err),
	)
}
