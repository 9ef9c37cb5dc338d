package handlers

import (
	"context"

	"social_chat_service/internal/chat/domain"

	"github.com/gofiber/fiber/v2"
)

// MessageService message history use case
type MessageService interface {
	History(ctx context.Context, conversationID string) ([]domain.Message, error)
}

// MessageHandler 处理訊息相关的 HTTP 请求
type MessageHandler struct {
	messageUC MessageService
}

// NewMessageHandler create MessageHandler
func NewMessageHandler(messageUC MessageService) *MessageHandler {
	return &MessageHandler{messageUC: messageUC}
}

// History conversation messages, oldest first
// @Summary 對話訊息
// @Description 依建立時間由舊到新
// @Tags Messages
// @Produce json
// @Param conversationId path string true "conversation id"
// @Success 200 {array} domain.Message
// @Failure 401 {object} string "未登入"
// @Router /messages/{conversationId} [get]
func (h *MessageHandler) History(c *fiber.Ctx) error {
	msgs, err := h.messageUC.History(c.UserContext(), c.Params("conversationId"))
	if err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(msgs)
}
