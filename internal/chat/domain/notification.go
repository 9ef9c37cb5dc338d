package domain

import "time"

// NotificationType 通知類型
type NotificationType string

const (
	// NotificationLike post liked
	NotificationLike NotificationType = "like"
	// NotificationComment post commented
	NotificationComment NotificationType = "comment"
	// NotificationFollow member followed
	NotificationFollow NotificationType = "follow"
)

// Valid check type is one of like / comment / follow
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationLike, NotificationComment, NotificationFollow:
		return true
	}
	return false
}

// Notification 由 like / comment / follow 動作產生
type Notification struct {
	ID          string           `bson:"_id" json:"id"`
	RecipientID string           `bson:"recipient_id" json:"-"`
	SenderID    string           `bson:"sender_id" json:"-"`
	Sender      *UserProfile     `bson:"-" json:"sender"`
	Type        NotificationType `bson:"type" json:"type"`
	PostID      string           `bson:"post_id,omitempty" json:"post,omitempty"`
	Read        bool             `bson:"read" json:"read"`
	CreatedAt   time.Time        `bson:"created_at" json:"created_at"`
}

// Populate set sender profile, fallback to bare id when profile missing
func (n *Notification) Populate(profiles map[string]UserProfile) {
	if p, ok := profiles[n.SenderID]; ok {
		n.Sender = &p
		return
	}
	n.Sender = &UserProfile{ID: n.SenderID}
}

// NotifyRequest CRUD 端送來的通知請求 (REST hook / redis relay)
type NotifyRequest struct {
	RecipientID string           `json:"recipient_id" validate:"required"`
	SenderID    string           `json:"sender_id" validate:"required"`
	Type        NotificationType `json:"type" validate:"required,oneof=like comment follow"`
	PostID      string           `json:"post_id,omitempty"`
}
