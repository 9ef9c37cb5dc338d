package domain

import "errors"

var (
	// ErrEmptyReceiver receiver id is required
	ErrEmptyReceiver = errors.New("receiver id is required")
	// ErrSelfConversation cannot start a chat with yourself
	ErrSelfConversation = errors.New("cannot start a conversation with yourself")
	// ErrInvalidNotificationType type not in like / comment / follow
	ErrInvalidNotificationType = errors.New("invalid notification type")
	// ErrSelfNotification actor and recipient are the same member
	ErrSelfNotification = errors.New("cannot notify yourself")
)
