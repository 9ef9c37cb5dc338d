package router

import (
	"context"
	"sort"
	"sync"
	"time"

	"social_chat_service/internal/chat/domain"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memConversations struct {
	mu    sync.Mutex
	convs map[string]*domain.Conversation
}

func (r *memConversations) FindOrCreate(ctx context.Context, a, b string) (*domain.Conversation, error) {
	if c, _ := r.FindByMembers(ctx, a, b); c != nil {
		return c, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	c := &domain.Conversation{
		ID:        primitive.NewObjectID().Hex(),
		Members:   []string{a, b},
		PairKey:   domain.PairKey(a, b),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.convs[c.ID] = c
	cp := *c
	return &cp, nil
}

func (r *memConversations) FindByMembers(_ context.Context, a, b string) (*domain.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.convs {
		if c.PairKey == domain.PairKey(a, b) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memConversations) FindByID(_ context.Context, id string) (*domain.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.convs[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *memConversations) FindByMember(_ context.Context, userID string) ([]domain.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Conversation{}
	for _, c := range r.convs {
		if lo.Contains(c.Members, userID) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *memConversations) UpdateLastMessage(_ context.Context, conversationID, messageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.convs[conversationID]; ok {
		c.LastMessageID = messageID
		c.UpdatedAt = time.Now().UTC()
	}
	return nil
}

type memMessages struct {
	mu   sync.Mutex
	msgs []domain.Message
}

func (r *memMessages) Create(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, *msg)
	return nil
}

func (r *memMessages) FindByConversation(_ context.Context, conversationID string) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Message{}
	for _, m := range r.msgs {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMessages) FindByIDs(_ context.Context, ids []string) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Message{}
	for _, m := range r.msgs {
		for _, id := range ids {
			if m.ID == id {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

type memNotifications struct {
	mu   sync.Mutex
	list []domain.Notification
}

func (r *memNotifications) Create(_ context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, *n)
	return nil
}

func (r *memNotifications) FindByRecipient(_ context.Context, recipientID string) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Notification{}
	for i := len(r.list) - 1; i >= 0; i-- {
		if r.list[i].RecipientID == recipientID {
			out = append(out, r.list[i])
		}
	}
	return out, nil
}

func (r *memNotifications) MarkAllRead(_ context.Context, recipientID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for i := range r.list {
		if r.list[i].RecipientID == recipientID && !r.list[i].Read {
			r.list[i].Read = true
			n++
		}
	}
	return n, nil
}

type memUsers map[string]domain.UserProfile

func (u memUsers) FindProfiles(_ context.Context, ids []string) (map[string]domain.UserProfile, error) {
	out := make(map[string]domain.UserProfile)
	for _, id := range ids {
		if p, ok := u[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}
