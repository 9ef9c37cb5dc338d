package app

import (
	"context"
	"testing"
	"time"

	"social_chat_service/internal/chat/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationUseCase_StartValidation(t *testing.T) {
	ctx := context.Background()
	uc := NewConversationUseCase(new(MockConversationRepository), new(MockMessageRepository), new(MockUserRepository))

	_, err := uc.Start(ctx, "A", "")
	assert.ErrorIs(t, err, domain.ErrEmptyReceiver)

	_, err = uc.Start(ctx, "A", "A")
	assert.ErrorIs(t, err, domain.ErrSelfConversation)
}

func TestConversationUseCase_Start(t *testing.T) {
	ctx := context.Background()
	mockConvRepo := new(MockConversationRepository)
	conv := &domain.Conversation{ID: "c1", Members: []string{"A", "B"}}
	mockConvRepo.On("FindOrCreate", ctx, "A", "B").Return(conv, nil)

	uc := NewConversationUseCase(mockConvRepo, new(MockMessageRepository), new(MockUserRepository))
	got, err := uc.Start(ctx, "A", "B")

	require.NoError(t, err)
	assert.Equal(t, conv, got)
	mockConvRepo.AssertExpectations(t)
}

func TestConversationUseCase_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	mockConvRepo := new(MockConversationRepository)
	mockMsgRepo := new(MockMessageRepository)
	mockUserRepo := new(MockUserRepository)

	mockConvRepo.On("FindByMember", ctx, "A").Return([]domain.Conversation{
		{ID: "c2", Members: []string{"C", "A"}, UpdatedAt: now},
		{ID: "c1", Members: []string{"A", "B"}, LastMessageID: "m1", UpdatedAt: now.Add(-time.Hour)},
	}, nil)
	mockMsgRepo.On("FindByIDs", ctx, []string{"m1"}).Return([]domain.Message{
		{ID: "m1", ConversationID: "c1", SenderID: "B", Text: "hi"},
	}, nil)
	mockUserRepo.On("FindProfiles", ctx, []string{"C", "B"}).Return(map[string]domain.UserProfile{
		"B": {ID: "B", Username: "bob"},
	}, nil)

	uc := NewConversationUseCase(mockConvRepo, mockMsgRepo, mockUserRepo)
	list, err := uc.List(ctx, "A")

	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "c2", list[0].ID)
	assert.Equal(t, "C", list[0].OtherMember.ID)
	assert.Nil(t, list[0].LastMessage)

	assert.Equal(t, "c1", list[1].ID)
	assert.Equal(t, "bob", list[1].OtherMember.Username)
	require.NotNil(t, list[1].LastMessage)
	assert.Equal(t, "hi", list[1].LastMessage.Text)
	assert.Equal(t, "bob", list[1].LastMessage.Sender.Username)
}
