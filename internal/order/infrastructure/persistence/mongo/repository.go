// Package mongo 订单的 MongoDB 仓储实现
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wyfcoding/storefront/internal/order/domain"
	"github.com/wyfcoding/storefront/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "orders"

// OrderRepository 订单仓储 MongoDB 实现
type OrderRepository struct {
	database *db.Mongo
	coll     *mongo.Collection
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(database *db.Mongo) *OrderRepository {
	return &OrderRepository{
		database: database,
		coll:     database.Collection(collectionName),
	}
}

// EnsureIndexes 创建查询索引
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, models)
	return err
}

// WithTx 在多文档事务中执行函数
func (r *OrderRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.database.WithTx(ctx, fn)
}

// Save 插入订单
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// GetByID 按 id 查询订单
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	var order domain.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

// UpdateStatus 更新订单状态
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// ListByUserID 分页查询指定用户的订单，新单在前
func (r *OrderRepository) ListByUserID(ctx context.Context, userID string, page, limit int) ([]*domain.Order, int64, error) {
	return r.list(ctx, bson.M{"user_id": userID}, page, limit)
}

// ListAll 分页查询全部订单，新单在前
func (r *OrderRepository) ListAll(ctx context.Context, page, limit int) ([]*domain.Order, int64, error) {
	return r.list(ctx, bson.M{}, page, limit)
}

func (r *OrderRepository) list(ctx context.Context, query bson.M, page, limit int) ([]*domain.Order, int64, error) {
	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []*domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, total, nil
}
