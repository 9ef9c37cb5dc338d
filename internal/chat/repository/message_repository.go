package repository

import (
	"context"
	"fmt"

	"social_chat_service/internal/chat/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessagesCollection mongo collection name
const MessagesCollection = "messages"

// MessageRepository definition chat message storage
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	// FindByConversation 依建立時間由舊到新
	FindByConversation(ctx context.Context, conversationID string) ([]domain.Message, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Message, error)
}

type messageRepository struct {
	coll *mongo.Collection
}

// NewMongoMessageRepository create a MessageRepository
func NewMongoMessageRepository(db *mongo.Database) MessageRepository {
	return &messageRepository{
		coll: db.Collection(MessagesCollection),
	}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *messageRepository) FindByConversation(ctx context.Context, conversationID string) ([]domain.Message, error) {
	// _id 為 ObjectID hex, 同毫秒內仍保持寫入順序
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	return r.find(ctx, bson.M{"conversation_id": conversationID}, opts)
}

func (r *messageRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Message, error) {
	if len(ids) == 0 {
		return []domain.Message{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *messageRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]domain.Message, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}

	msgs := []domain.Message{}
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return msgs, nil
}
