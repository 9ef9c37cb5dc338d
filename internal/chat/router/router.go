package router

import (
	"context"

	"social_chat_service/internal/chat/api/handlers"
	"social_chat_service/internal/chat/app"
	"social_chat_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers 所有路由需要的 handler
type Handlers struct {
	Websocket    *app.ChatWebsocketHandler
	Conversation *handlers.ConversationHandler
	Message      *handlers.MessageHandler
	Notification *handlers.NotificationHandler
	Gatherer     prometheus.Gatherer
}

// RegisterRoutes 注册 chat service 路由
// @title Social Chat Service API
// @version 1.0
// @description Realtime chat, conversation history and notification API
// @host localhost:8080
// @BasePath /
func RegisterRoutes(r *fiber.App, h Handlers) {
	r.Get("/swagger/*", swagger.HandlerDefault)
	r.Get("/", handlers.ConnectCheck)
	r.Post("/debug", handlers.DebugLogFlag)
	r.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{})))

	// identify 帶 user id, 連線本身不驗 token
	r.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	r.Get("/ws", websocket.New(func(c *websocket.Conn) {
		h.Websocket.HandleConnection(context.Background(), c)
	}))

	auth := middlewares.JWTMiddleware()

	conversations := r.Group("/conversations", auth)
	conversations.Post("/", h.Conversation.Start)
	conversations.Get("/", h.Conversation.List)

	messages := r.Group("/messages", auth)
	messages.Get("/:conversationId", h.Message.History)

	notifications := r.Group("/notifications", auth)
	notifications.Get("/", h.Notification.List)
	notifications.Post("/", h.Notification.Create)
	notifications.Put("/read", h.Notification.MarkAllRead)
}
