package domain

// Action websocket event name
type Action string

// client -> server
const (
	// Identify websocket action identify, 綁定 user 與連線
	Identify Action = "identify"
	// SendMessage websocket action send_message
	SendMessage Action = "send_message"
	// TypingStart websocket action typing_start
	TypingStart Action = "typing_start"
	// TypingStop websocket action typing_stop
	TypingStop Action = "typing_stop"
)

// server -> client
const (
	// OnlineUsers full online user id list, 每次上下線廣播
	OnlineUsers Action = "online_users"
	// MessageDelivered persisted message push to sender & receiver
	MessageDelivered Action = "message_delivered"
	// TypingIndicatorOn receiver sees peer typing
	TypingIndicatorOn Action = "typing_indicator_on"
	// TypingIndicatorOff receiver sees peer stop typing
	TypingIndicatorOff Action = "typing_indicator_off"
	// NotificationPushed like / comment / follow notification
	NotificationPushed Action = "notification_pushed"
	// ActionError bad frame or unknown action
	ActionError Action = "error"
)

// WSRequest websocket Request
type WSRequest struct {
	Action         Action `json:"action"`
	UserID         string `json:"user_id,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	Sender         string `json:"sender,omitempty"`
	ReceiverID     string `json:"receiver_id,omitempty"`
	Text           string `json:"text,omitempty"`
}

// WSEvent websocket server push
type WSEvent struct {
	Action  Action      `json:"action"`
	Payload interface{} `json:"payload,omitempty"`
}

// ErrorPayload payload of ActionError
type ErrorPayload struct {
	Error string `json:"error"`
}
