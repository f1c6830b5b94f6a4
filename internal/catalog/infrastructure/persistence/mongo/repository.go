// Package mongo 商品目录的 MongoDB 仓储实现
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "products"

// ProductRepository 商品仓储 MongoDB 实现
type ProductRepository struct {
	coll *mongo.Collection
}

// NewProductRepository 创建商品仓储实例
func NewProductRepository(database *db.Mongo) *ProductRepository {
	return &ProductRepository{coll: database.Collection(collectionName)}
}

// EnsureIndexes 创建唯一索引（sku）与查询索引，启动时调用
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sku", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "brand", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, models)
	return err
}

// Save 插入商品，sku 冲突翻译为领域错误
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	_, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// Update 整体覆写商品文档
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete 删除商品
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// GetByID 按 id 查询商品
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var product domain.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

// List 按条件分页查询商品，新品在前
func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, int64, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []*domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, total, nil
}

// UpdateRating 覆写商品聚合评分与评论数
func (r *ProductRepository) UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	update := bson.M{"$set": bson.M{
		"rating":       rating,
		"review_count": reviewCount,
		"updated_at":   time.Now(),
	}}
	result, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("failed to update product rating: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
