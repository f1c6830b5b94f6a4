// Package mongo 购物车的 MongoDB 仓储实现
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wyfcoding/storefront/internal/cart/domain"
	"github.com/wyfcoding/storefront/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "carts"

// CartRepository 购物车仓储 MongoDB 实现
type CartRepository struct {
	coll *mongo.Collection
}

// NewCartRepository 创建购物车仓储实例
func NewCartRepository(database *db.Mongo) *CartRepository {
	return &CartRepository{coll: database.Collection(collectionName)}
}

// EnsureIndexes 创建 user_id 查询索引（非唯一，按约定每用户一车）
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

// GetByUserID 按用户查询购物车
func (r *CartRepository) GetByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}
	return &cart, nil
}

// Save 整体持久化购物车文档，新车插入、旧车覆写
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now()
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}

	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
		if _, err := r.coll.InsertOne(ctx, cart); err != nil {
			return fmt.Errorf("failed to insert cart: %w", err)
		}
		return nil
	}

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": cart.ID}, cart)
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrCartNotFound
	}
	return nil
}
