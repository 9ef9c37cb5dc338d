package app

import (
	"context"

	"social_chat_service/internal/chat/domain"
	"social_chat_service/internal/chat/repository"

	"github.com/samber/lo"
)

// ConversationUseCase 對話建立與列表
type ConversationUseCase struct {
	convRepo repository.ConversationRepository
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
}

// NewConversationUseCase create ConversationUseCase
func NewConversationUseCase(
	convRepo repository.ConversationRepository,
	msgRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) *ConversationUseCase {
	return &ConversationUseCase{
		convRepo: convRepo,
		msgRepo:  msgRepo,
		userRepo: userRepo,
	}
}

// Start 取得兩人的對話, 不存在時建立
func (uc *ConversationUseCase) Start(ctx context.Context, userID, receiverID string) (*domain.Conversation, error) {
	if receiverID == "" {
		return nil, domain.ErrEmptyReceiver
	}
	if receiverID == userID {
		return nil, domain.ErrSelfConversation
	}
	return uc.convRepo.FindOrCreate(ctx, userID, receiverID)
}

// List userID 參與的對話, 最近更新的在前
func (uc *ConversationUseCase) List(ctx context.Context, userID string) ([]domain.ConversationSummary, error) {
	convs, err := uc.convRepo.FindByMember(ctx, userID)
	if err != nil {
		return nil, err
	}

	lastIDs := lo.Compact(lo.Map(convs, func(c domain.Conversation, _ int) string { return c.LastMessageID }))
	lastMsgs, err := uc.msgRepo.FindByIDs(ctx, lastIDs)
	if err != nil {
		return nil, err
	}
	msgByID := lo.KeyBy(lastMsgs, func(m domain.Message) string { return m.ID })

	userIDs := lo.Map(convs, func(c domain.Conversation, _ int) string { return c.OtherMember(userID) })
	userIDs = append(userIDs, lo.Map(lastMsgs, func(m domain.Message, _ int) string { return m.SenderID })...)
	profiles, err := uc.userRepo.FindProfiles(ctx, lo.Uniq(userIDs))
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ConversationSummary, 0, len(convs))
	for _, c := range convs {
		s := domain.ConversationSummary{
			ID:        c.ID,
			UpdatedAt: c.UpdatedAt,
		}
		otherID := c.OtherMember(userID)
		if p, ok := profiles[otherID]; ok {
			s.OtherMember = &p
		} else {
			s.OtherMember = &domain.UserProfile{ID: otherID}
		}
		if m, ok := msgByID[c.LastMessageID]; ok {
			m.Populate(profiles)
			s.LastMessage = &m
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
