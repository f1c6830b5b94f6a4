// Package mongo 心愿单的 MongoDB 仓储实现
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wyfcoding/storefront/internal/wishlist/domain"
	"github.com/wyfcoding/storefront/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "wishlists"

// WishlistRepository 心愿单仓储 MongoDB 实现
type WishlistRepository struct {
	coll *mongo.Collection
}

// NewWishlistRepository 创建心愿单仓储实例
func NewWishlistRepository(database *db.Mongo) *WishlistRepository {
	return &WishlistRepository{coll: database.Collection(collectionName)}
}

// EnsureIndexes 创建 user_id 查询索引
func (r *WishlistRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

// GetByUserID 按用户查询心愿单
func (r *WishlistRepository) GetByUserID(ctx context.Context, userID string) (*domain.Wishlist, error) {
	var wishlist domain.Wishlist
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&wishlist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWishlistNotFound
		}
		return nil, fmt.Errorf("failed to find wishlist: %w", err)
	}
	return &wishlist, nil
}

// Save 整体持久化心愿单文档，新建插入、已有覆写
func (r *WishlistRepository) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	wishlist.UpdatedAt = time.Now()
	if wishlist.ProductIDs == nil {
		wishlist.ProductIDs = []string{}
	}

	if wishlist.ID.IsZero() {
		wishlist.ID = primitive.NewObjectID()
		if _, err := r.coll.InsertOne(ctx, wishlist); err != nil {
			return fmt.Errorf("failed to insert wishlist: %w", err)
		}
		return nil
	}

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": wishlist.ID}, wishlist)
	if err != nil {
		return fmt.Errorf("failed to save wishlist: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrWishlistNotFound
	}
	return nil
}
