package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social_chat_service/internal/chat/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConversationsCollection mongo collection name
const ConversationsCollection = "conversations"

// ConversationRepository definition two-member conversation
type ConversationRepository interface {
	// FindOrCreate 以無序成員組查詢, 不存在時建立
	FindOrCreate(ctx context.Context, a, b string) (*domain.Conversation, error)
	// FindByMembers 找不到時回傳 nil, nil
	FindByMembers(ctx context.Context, a, b string) (*domain.Conversation, error)
	FindByID(ctx context.Context, id string) (*domain.Conversation, error)
	// FindByMember member 參與的對話, updated_at 新到舊
	FindByMember(ctx context.Context, userID string) ([]domain.Conversation, error)
	UpdateLastMessage(ctx context.Context, conversationID, messageID string) error
}

type conversationRepository struct {
	coll *mongo.Collection
}

// NewMongoConversationRepository create new mongo conversation repository
func NewMongoConversationRepository(db *mongo.Database) ConversationRepository {
	return &conversationRepository{
		coll: db.Collection(ConversationsCollection),
	}
}

func (r *conversationRepository) FindOrCreate(ctx context.Context, a, b string) (*domain.Conversation, error) {
	conv, err := r.FindByMembers(ctx, a, b)
	if err != nil || conv != nil {
		return conv, err
	}

	now := time.Now().UTC()
	conv = &domain.Conversation{
		ID:        primitive.NewObjectID().Hex(),
		Members:   []string{a, b},
		PairKey:   domain.PairKey(a, b),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, conv); err != nil {
		// 同一組成員同時建立, unique pair_key 擋下後改讀既有那筆
		if mongo.IsDuplicateKeyError(err) {
			return r.FindByMembers(ctx, a, b)
		}
		return nil, fmt.Errorf("insert conversation: %w", err)
	}
	return conv, nil
}

func (r *conversationRepository) FindByMembers(ctx context.Context, a, b string) (*domain.Conversation, error) {
	return r.findOne(ctx, bson.M{"pair_key": domain.PairKey(a, b)})
}

func (r *conversationRepository) FindByID(ctx context.Context, id string) (*domain.Conversation, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *conversationRepository) findOne(ctx context.Context, filter bson.M) (*domain.Conversation, error) {
	var conv domain.Conversation
	err := r.coll.FindOne(ctx, filter).Decode(&conv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	return &conv, nil
}

func (r *conversationRepository) FindByMember(ctx context.Context, userID string) ([]domain.Conversation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"members": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find conversations: %w", err)
	}

	convs := []domain.Conversation{}
	if err := cur.All(ctx, &convs); err != nil {
		return nil, fmt.Errorf("decode conversations: %w", err)
	}
	return convs, nil
}

// UpdateLastMessage 對話不存在時不做事
func (r *conversationRepository) UpdateLastMessage(ctx context.Context, conversationID, messageID string) error {
	update := bson.M{"$set": bson.M{
		"last_message": messageID,
		"updated_at":   time.Now().UTC(),
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": conversationID}, update); err != nil {
		return fmt.Errorf("update last message: %w", err)
	}
	return nil
}
