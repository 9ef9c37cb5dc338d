package domain

import (
	"sort"
	"strings"
	"time"
)

// Conversation 兩人對話, 每組成員只會有一筆
type Conversation struct {
	ID            string    `bson:"_id" json:"id"`
	Members       []string  `bson:"members" json:"members"`
	PairKey       string    `bson:"pair_key" json:"-"`
	LastMessageID string    `bson:"last_message,omitempty" json:"last_message,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// ConversationSummary conversation list item for one member
type ConversationSummary struct {
	ID          string       `json:"id"`
	OtherMember *UserProfile `json:"other_member"`
	LastMessage *Message     `json:"last_message"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// PairKey 無序成員組的唯一鍵
func PairKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, ":")
}

// OtherMember return the member that is not userID
func (c *Conversation) OtherMember(userID string) string {
	for _, m := range c.Members {
		if m != userID {
			return m
		}
	}
	return ""
}
