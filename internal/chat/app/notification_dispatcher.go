package app

import "social_chat_service/internal/chat/domain"

// UserPusher push an event to a user's live connection
type UserPusher interface {
	PushToUser(userID string, evt domain.WSEvent) bool
}

// NotificationDispatcher 通知即時推送, 離線時不排隊也不重試
type NotificationDispatcher struct {
	pusher UserPusher
}

// NewNotificationDispatcher create NotificationDispatcher
func NewNotificationDispatcher(pusher UserPusher) *NotificationDispatcher {
	return &NotificationDispatcher{pusher: pusher}
}

// Dispatch 收件者在線時推送 notification_pushed, 回傳是否送出
func (d *NotificationDispatcher) Dispatch(n *domain.Notification) bool {
	return d.pusher.PushToUser(n.RecipientID, domain.WSEvent{
		Action:  domain.NotificationPushed,
		Payload: n,
	})
}
