package handlers

import (
	"context"

	"social_chat_service/internal/chat/domain"
	"social_chat_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// NotificationService notification use case
type NotificationService interface {
	Notify(ctx context.Context, req domain.NotifyRequest) (*domain.Notification, error)
	List(ctx context.Context, recipientID string) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}

// NotificationHandler 处理通知相关的 HTTP 请求
type NotificationHandler struct {
	notificationUC NotificationService
}

// NewNotificationHandler create NotificationHandler
func NewNotificationHandler(notificationUC NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// CreateNotificationRequest body of POST /notifications, sender 取自 token
type CreateNotificationRequest struct {
	RecipientID string                  `json:"recipient_id" validate:"required"`
	Type        domain.NotificationType `json:"type" validate:"required"`
	PostID      string                  `json:"post_id"`
}

// Create 建立通知並推送給在線的收件者
// @Summary 建立通知
// @Description like / comment / follow 動作完成後呼叫
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body CreateNotificationRequest true "notification"
// @Success 201 {object} domain.Notification
// @Failure 400 {object} string "请求错误"
// @Failure 401 {object} string "未登入"
// @Router /notifications [post]
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var req CreateNotificationRequest
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	n, err := h.notificationUC.Notify(c.UserContext(), domain.NotifyRequest{
		RecipientID: req.RecipientID,
		SenderID:    middlewares.MemberID(c),
		Type:        req.Type,
		PostID:      req.PostID,
	})
	if err != nil {
		return errorStatus(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(n)
}

// List notifications of current member
// @Summary 通知列表
// @Description 新到舊, 帶 sender 資料
// @Tags Notifications
// @Produce json
// @Success 200 {array} domain.Notification
// @Failure 401 {object} string "未登入"
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	list, err := h.notificationUC.List(c.UserContext(), middlewares.MemberID(c))
	if err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(list)
}

// MarkAllRead 全部標為已讀
// @Summary 通知全部已讀
// @Tags Notifications
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 401 {object} string "未登入"
// @Router /notifications/read [put]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	n, err := h.notificationUC.MarkAllRead(c.UserContext(), middlewares.MemberID(c))
	if err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(fiber.Map{"updated": n})
}
