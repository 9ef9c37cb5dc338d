package handlers

import (
	"context"

	"social_chat_service/internal/chat/domain"
	"social_chat_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// ConversationService conversation use case
type ConversationService interface {
	Start(ctx context.Context, userID, receiverID string) (*domain.Conversation, error)
	List(ctx context.Context, userID string) ([]domain.ConversationSummary, error)
}

// ConversationHandler 处理对话相关的 HTTP 请求
type ConversationHandler struct {
	conversationUC ConversationService
}

// NewConversationHandler create ConversationHandler
func NewConversationHandler(conversationUC ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationUC: conversationUC}
}

// StartConversationRequest body of POST /conversations
type StartConversationRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
}

// Start find or create conversation with receiver
// @Summary 開始對話
// @Description 兩人對話不存在時建立, 已存在則直接回傳
// @Tags Conversations
// @Accept json
// @Produce json
// @Param request body StartConversationRequest true "receiver"
// @Success 200 {object} domain.Conversation
// @Failure 400 {object} string "请求错误"
// @Failure 401 {object} string "未登入"
// @Router /conversations [post]
func (h *ConversationHandler) Start(c *fiber.Ctx) error {
	var req StartConversationRequest
	if err := parseBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	conv, err := h.conversationUC.Start(c.UserContext(), middlewares.MemberID(c), req.ReceiverID)
	if err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(conv)
}

// List conversations of current member
// @Summary 對話列表
// @Description 最近更新的對話在前, 帶對方資料與最後一則訊息
// @Tags Conversations
// @Produce json
// @Success 200 {array} domain.ConversationSummary
// @Failure 401 {object} string "未登入"
// @Router /conversations [get]
func (h *ConversationHandler) List(c *fiber.Ctx) error {
	list, err := h.conversationUC.List(c.UserContext(), middlewares.MemberID(c))
	if err != nil {
		return errorStatus(c, err)
	}
	return c.JSON(list)
}
