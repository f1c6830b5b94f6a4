// Package mongo 用户的 MongoDB 仓储实现
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wyfcoding/storefront/internal/user/domain"
	"github.com/wyfcoding/storefront/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "users"

// UserRepository 用户仓储 MongoDB 实现
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository 创建用户仓储实例
func NewUserRepository(database *db.Mongo) *UserRepository {
	return &UserRepository{coll: database.Collection(collectionName)}
}

// EnsureIndexes 创建邮箱唯一索引与重置令牌查询索引
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "reset_password_token", Value: 1}},
		},
	})
	return err
}

// Save 插入新用户
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Update 整体覆写用户文档
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// GetByID 按 ID 查询用户
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// GetByEmail 按邮箱查询用户
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByResetToken 按重置令牌查询用户
func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"reset_password_token": token})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
