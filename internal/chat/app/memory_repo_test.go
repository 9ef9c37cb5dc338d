package app

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"social_chat_service/internal/chat/domain"
	"social_chat_service/internal/chat/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryStore in-memory conversation / message / user repositories for router tests
type memoryStore struct {
	mu            sync.Mutex
	conversations map[string]*domain.Conversation
	messages      []domain.Message
	users         map[string]domain.UserProfile
	failCreate    bool
}

var (
	_ repository.ConversationRepository = (*memoryStore)(nil)
	_ repository.MessageRepository      = (*memoryMessages)(nil)
	_ repository.UserRepository         = (*memoryStore)(nil)
)

func newMemoryStore() *memoryStore {
	return &memoryStore{
		conversations: make(map[string]*domain.Conversation),
		users:         make(map[string]domain.UserProfile),
	}
}

func (s *memoryStore) addUser(id, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = domain.UserProfile{ID: id, Username: username, ProfilePicture: username + ".png"}
}

func (s *memoryStore) FindOrCreate(ctx context.Context, a, b string) (*domain.Conversation, error) {
	conv, _ := s.FindByMembers(ctx, a, b)
	if conv != nil {
		return conv, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	conv = &domain.Conversation{
		ID:        primitive.NewObjectID().Hex(),
		Members:   []string{a, b},
		PairKey:   domain.PairKey(a, b),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.conversations[conv.ID] = conv
	cp := *conv
	return &cp, nil
}

func (s *memoryStore) FindByMembers(_ context.Context, a, b string) (*domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.PairKey(a, b)
	for _, c := range s.conversations {
		if c.PairKey == key {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) FindByID(_ context.Context, id string) (*domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.conversations[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (s *memoryStore) FindByMember(_ context.Context, userID string) ([]domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Conversation{}
	for _, c := range s.conversations {
		for _, m := range c.Members {
			if m == userID {
				out = append(out, *c)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (s *memoryStore) UpdateLastMessage(_ context.Context, conversationID, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.conversations[conversationID]; ok {
		c.LastMessageID = messageID
		c.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (s *memoryStore) FindProfiles(_ context.Context, ids []string) (map[string]domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]domain.UserProfile)
	for _, id := range ids {
		if p, ok := s.users[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

// memoryMessages MessageRepository view of memoryStore
type memoryMessages struct {
	*memoryStore
}

func (s *memoryStore) messageRepo() *memoryMessages {
	return &memoryMessages{s}
}

func (m *memoryMessages) Create(_ context.Context, msg *domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate {
		return errors.New("mongo unavailable")
	}
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *memoryMessages) FindByConversation(_ context.Context, conversationID string) ([]domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Message{}
	for _, msg := range m.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *memoryMessages) FindByIDs(_ context.Context, ids []string) ([]domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Message{}
	for _, msg := range m.messages {
		for _, id := range ids {
			if msg.ID == id {
				out = append(out, msg)
			}
		}
	}
	return out, nil
}
