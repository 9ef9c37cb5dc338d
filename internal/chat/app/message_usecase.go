package app

import (
	"context"
	"time"

	"social_chat_service/internal/chat/domain"
	"social_chat_service/internal/chat/repository"
	"social_chat_service/pkg/logger"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// SendMessageUseCase 負責處理聊天訊息
type SendMessageUseCase struct {
	convRepo repository.ConversationRepository
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
}

// NewSendMessageUseCase init create message use case
func NewSendMessageUseCase(
	convRepo repository.ConversationRepository,
	msgRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		convRepo: convRepo,
		msgRepo:  msgRepo,
		userRepo: userRepo,
	}
}

// Execute 寫入訊息, 更新對話 last_message, 回傳帶 sender profile 的訊息
//
// 只有寫入訊息失敗會回傳 error; 後續步驟失敗只記 log.
func (uc *SendMessageUseCase) Execute(ctx context.Context, conversationID, senderID, text string) (*domain.Message, error) {
	msg := &domain.Message{
		ID:             primitive.NewObjectID().Hex(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
		// mongo 只存到毫秒, 回傳值與之後讀出的紀錄保持一致
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := uc.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if err := uc.convRepo.UpdateLastMessage(ctx, conversationID, msg.ID); err != nil {
		logger.Log.Error("update last message",
			zap.String("conversation_id", conversationID),
			zap.String("message_id", msg.ID),
			zap.Error(err),
		)
	}

	profiles, err := uc.userRepo.FindProfiles(ctx, []string{senderID})
	if err != nil {
		logger.Log.Error("populate message sender", zap.String("sender_id", senderID), zap.Error(err))
	}
	msg.Populate(profiles)
	return msg, nil
}

// History 對話全部訊息, 由舊到新
func (uc *SendMessageUseCase) History(ctx context.Context, conversationID string) ([]domain.Message, error) {
	msgs, err := uc.msgRepo.FindByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	senders := lo.Uniq(lo.Map(msgs, func(m domain.Message, _ int) string { return m.SenderID }))
	profiles, err := uc.userRepo.FindProfiles(ctx, senders)
	if err != nil {
		return nil, err
	}
	for i := range msgs {
		msgs[i].Populate(profiles)
	}
	return msgs, nil
}
