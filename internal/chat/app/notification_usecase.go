package app

import (
	"context"
	"time"

	"social_chat_service/internal/chat/domain"
	"social_chat_service/internal/chat/repository"
	errprocess "social_chat_service/pkg/err"
	"social_chat_service/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Dispatcher 即時推送通知
type Dispatcher interface {
	Dispatch(n *domain.Notification) bool
}

// NotificationUseCase 通知寫入、推送、列表與已讀
type NotificationUseCase struct {
	notiRepo   repository.NotificationRepository
	userRepo   repository.UserRepository
	dispatcher Dispatcher
	validate   *validator.Validate
}

// NewNotificationUseCase create NotificationUseCase
func NewNotificationUseCase(
	notiRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	dispatcher Dispatcher,
) *NotificationUseCase {
	return &NotificationUseCase{
		notiRepo:   notiRepo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
		validate:   validator.New(),
	}
}

// Notify 寫入通知後, 收件者在線就推送
func (uc *NotificationUseCase) Notify(ctx context.Context, req domain.NotifyRequest) (*domain.Notification, error) {
	if err := uc.validate.Struct(req); err != nil {
		if !req.Type.Valid() {
			return nil, domain.ErrInvalidNotificationType
		}
		return nil, errprocess.Set("invalid notify request: " + err.Error())
	}
	if req.RecipientID == req.SenderID {
		return nil, domain.ErrSelfNotification
	}

	n := &domain.Notification{
		ID:          primitive.NewObjectID().Hex(),
		RecipientID: req.RecipientID,
		SenderID:    req.SenderID,
		Type:        req.Type,
		PostID:      req.PostID,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := uc.notiRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	profiles, err := uc.userRepo.FindProfiles(ctx, []string{n.SenderID})
	if err != nil {
		logger.Log.Error("populate notification sender", zap.String("sender_id", n.SenderID), zap.Error(err))
	}
	n.Populate(profiles)

	pushed := uc.dispatcher.Dispatch(n)
	logger.Log.Debug("notification created",
		zap.String("notification_id", n.ID),
		zap.String("recipient_id", n.RecipientID),
		zap.Bool("pushed", pushed),
	)
	return n, nil
}

// List recipient 的通知, 新到舊
func (uc *NotificationUseCase) List(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	list, err := uc.notiRepo.FindByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	senders := lo.Uniq(lo.Map(list, func(n domain.Notification, _ int) string { return n.SenderID }))
	profiles, err := uc.userRepo.FindProfiles(ctx, senders)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Populate(profiles)
	}
	return list, nil
}

// MarkAllRead 全部未讀改為已讀, 回傳更新筆數
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	return uc.notiRepo.MarkAllRead(ctx, recipientID)
}
