package app

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"social_chat_service/internal/chat/domain"
	"social_chat_service/internal/chat/repository"
	"social_chat_service/pkg/logger"

	"go.uber.org/zap"
)

// Notifier create and push a notification
type Notifier interface {
	Notify(ctx context.Context, req domain.NotifyRequest) (*domain.Notification, error)
}

// NotificationRelay 訂閱 redis channel, 其他服務發布的 NotifyRequest 由這裡寫入並推送
type NotificationRelay struct {
	pubsub    repository.PubSub
	channel   string
	notifier  Notifier
	opTimeout time.Duration
}

// NewNotificationRelay create NotificationRelay
func NewNotificationRelay(pubsub repository.PubSub, channel string, notifier Notifier, opTimeout time.Duration) *NotificationRelay {
	return &NotificationRelay{
		pubsub:    pubsub,
		channel:   channel,
		notifier:  notifier,
		opTimeout: opTimeout,
	}
}

// Start 訂閱 channel 直到 ctx 取消
func (r *NotificationRelay) Start(ctx context.Context) error {
	return r.pubsub.Subscribe(ctx, r.channel, r.handle)
}

// Publish 發布 NotifyRequest 給所有 chat service instance
func (r *NotificationRelay) Publish(ctx context.Context, req domain.NotifyRequest) error {
	return r.pubsub.Publish(ctx, r.channel, req)
}

func (r *NotificationRelay) handle(payload []byte) {
	var req domain.NotifyRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		logger.Log.Error("relay unmarshal notify request", zap.String("channel", r.channel), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.opTimeout)
	defer cancel()

	if _, err := r.notifier.Notify(ctx, req); err != nil {
		if errors.Is(err, domain.ErrSelfNotification) {
			logger.Log.Debug("relay skip self notification", zap.String("sender_id", req.SenderID))
			return
		}
		logger.Log.Error("relay notify",
			zap.String("recipient_id", req.RecipientID),
			zap.String("type", string(req.Type)),
			zap.Error(err),
		)
	}
}
