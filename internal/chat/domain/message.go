package domain

import "time"

// UserProfile 使用者公開資料, 用於 populate sender / other member
type UserProfile struct {
	ID             string `bson:"_id" json:"id"`
	Username       string `bson:"username" json:"username"`
	ProfilePicture string `bson:"profile_picture" json:"profile_picture"`
}

// Message 表示一則聊天訊息, 建立後不可修改
type Message struct {
	ID             string       `bson:"_id" json:"id"`
	ConversationID string       `bson:"conversation_id" json:"conversation_id"`
	SenderID       string       `bson:"sender_id" json:"-"`
	Sender         *UserProfile `bson:"-" json:"sender"`
	Text           string       `bson:"text" json:"text"`
	CreatedAt      time.Time    `bson:"created_at" json:"created_at"`
}

// Populate set sender profile, fallback to bare id when profile missing
func (m *Message) Populate(profiles map[string]UserProfile) {
	if p, ok := profiles[m.SenderID]; ok {
		m.Sender = &p
		return
	}
	m.Sender = &UserProfile{ID: m.SenderID}
}
