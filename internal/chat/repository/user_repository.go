package repository

import (
	"context"
	"fmt"

	"social_chat_service/internal/chat/domain"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UsersCollection mongo collection name, 由會員服務寫入, 這裡只讀
const UsersCollection = "users"

// UserRepository read user public profile
type UserRepository interface {
	// FindProfiles 找不到的 id 不會出現在 map 內
	FindProfiles(ctx context.Context, ids []string) (map[string]domain.UserProfile, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository create a UserRepository
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		coll: db.Collection(UsersCollection),
	}
}

func (r *userRepository) FindProfiles(ctx context.Context, ids []string) (map[string]domain.UserProfile, error) {
	ids = lo.Uniq(lo.Compact(ids))
	if len(ids) == 0 {
		return map[string]domain.UserProfile{}, nil
	}

	opts := options.Find().SetProjection(bson.M{"username": 1, "profile_picture": 1})
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var profiles []domain.UserProfile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return lo.KeyBy(profiles, func(p domain.UserProfile) string { return p.ID }), nil
}
