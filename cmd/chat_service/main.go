package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "social_chat_service/cmd/chat_service/docs" // 引入生成的 Swagger 文档
	"social_chat_service/internal/chat/api/handlers"
	"social_chat_service/internal/chat/app"
	"social_chat_service/internal/chat/repository"
	"social_chat_service/internal/chat/router"
	"social_chat_service/pkg/config"
	"social_chat_service/pkg/database"
	"social_chat_service/pkg/logger"
	testtool "social_chat_service/pkg/test_tool"
	t_token "social_chat_service/pkg/token"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.ChatService, config.EnvConfig.ChatServiceLogPath)
	defer logger.Log.Sync()

	cfg, err := config.LoadConfig[config.Chat](config.EnvConfig.ChatService, config.EnvConfig.ChatServiceYAMLPath)
	if err != nil {
		logger.Log.Fatal("load config", zap.Error(err))
	}
	cfg.Defaults()
	t_token.SetSecret(cfg.JWT.Secret)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. 建立 Mongo 連線 (對話 / 訊息 / 通知)
	uri := database.MongoURI(cfg.MongoSQL.User, cfg.MongoSQL.Password, cfg.MongoSQL.Host, cfg.MongoSQL.Port)
	mongo, err := database.NewMongoDB(ctx,
		database.Connection{
			ConnectStr:    uri,
			RetryCount:    cfg.MongoSQL.RetryCount,
			RetryInterval: time.Duration(cfg.MongoSQL.RetryInterval) * time.Second,
		},
		cfg.MongoSQL.Database)
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to mongoDB database after retries",
			zap.String("host", cfg.MongoSQL.Host),
			zap.Error(err),
		)
	}
	defer mongo.Close(context.Background())

	if err := repository.EnsureIndexes(ctx, mongo.Database); err != nil {
		logger.Log.Fatal("ensure mongo indexes", zap.Error(err))
	}

	// 2. 建立 Redis 連線 (通知 relay)
	redisClient, err := newRedis(cfg.Redis)
	if err != nil {
		logger.Log.Fatal("connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	// 3. 初始化 Repository
	convRepo := repository.NewMongoConversationRepository(mongo.Database)
	msgRepo := repository.NewMongoMessageRepository(mongo.Database)
	notiRepo := repository.NewMongoNotificationRepository(mongo.Database)
	userRepo := repository.NewMongoUserRepository(mongo.Database)
	pubsub := repository.NewRedisPubSub(redisClient)

	// 4. 初始化 UseCases
	metrics := app.NewMetrics(prometheus.DefaultRegisterer)
	presence := app.NewPresenceRegistry()
	sendMessageUC := app.NewSendMessageUseCase(convRepo, msgRepo, userRepo)
	conversationUC := app.NewConversationUseCase(convRepo, msgRepo, userRepo)
	eventRouter := app.NewEventRouter(presence, sendMessageUC, metrics, cfg.MongoSQL.OpTimeout)
	notificationUC := app.NewNotificationUseCase(notiRepo, userRepo, app.NewNotificationDispatcher(eventRouter))

	relay := app.NewNotificationRelay(pubsub, cfg.Redis.NotificationChannel, notificationUC, cfg.MongoSQL.OpTimeout)
	if err := relay.Start(ctx); err != nil {
		logger.Log.Fatal("start notification relay", zap.Error(err))
	}

	testtool.StartPprof(cfg.Pprof)

	// 5. 啟動 Fiber
	r := fiber.New()
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.ChatServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file, // 将日志输出到文件
	}))

	// 注册路由
	router.RegisterRoutes(r, router.Handlers{
		Websocket:    app.NewChatWebsocketHandler(eventRouter, cfg.WS),
		Conversation: handlers.NewConversationHandler(conversationUC),
		Message:      handlers.NewMessageHandler(sendMessageUC),
		Notification: handlers.NewNotificationHandler(notificationUC),
		Gatherer:     prometheus.DefaultGatherer,
	})

	go func() {
		<-ctx.Done()
		logger.Log.Info("Chat Service shutting down")
		if err := r.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Log.Error("fiber shutdown", zap.Error(err))
		}
	}()

	// Listen
	port := ":" + cfg.Port
	logger.Log.Info("Chat Service listening", zap.String("port", port))
	if err := r.Listen(port); err != nil {
		logger.Log.Fatal("Failed to start Fiber", zap.Error(err))
	}
}

// newRedis addr 有值時連單機, 否則走 sentinel
func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr != "" {
		return database.NewRedisClientByAddr(cfg.Addr, cfg.RedisDB)
	}
	masterName, sentinel := config.GetRedisSetting()
	return database.NewRedisClient(masterName, sentinel, cfg.RedisDB)
}
