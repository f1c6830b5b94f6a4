// Package mongo 评论的 MongoDB 仓储实现
package mongo

import (
	"context"
	"fmt"

	"github.com/wyfcoding/storefront/internal/review/domain"
	"github.com/wyfcoding/storefront/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "reviews"

// ReviewRepository 评论仓储 MongoDB 实现
type ReviewRepository struct {
	database *db.Mongo
	coll     *mongo.Collection
}

// NewReviewRepository 创建评论仓储实例
func NewReviewRepository(database *db.Mongo) *ReviewRepository {
	return &ReviewRepository{
		database: database,
		coll:     database.Collection(collectionName),
	}
}

// EnsureIndexes 创建查询索引
func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "user_id", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, models)
	return err
}

// WithTx 在多文档事务中执行函数
func (r *ReviewRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.database.WithTx(ctx, fn)
}

// Save 插入评论
func (r *ReviewRepository) Save(ctx context.Context, review *domain.Review) error {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// ExistsByProductAndUser 判断用户是否已评论过该商品
func (r *ReviewRepository) ExistsByProductAndUser(ctx context.Context, productID, userID string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"product_id": productID, "user_id": userID})
	if err != nil {
		return false, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count > 0, nil
}

// ListByProduct 查询商品的全部评论，新评论在前
func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []*domain.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}
