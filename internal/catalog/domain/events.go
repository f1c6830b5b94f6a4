package domain

import (
	"context"
	"time"
)

const (
	ProductCreatedEventType = "catalog.product.created"
	ProductUpdatedEventType = "catalog.product.updated"
	ProductDeletedEventType = "catalog.product.deleted"
)

// ProductCreatedEvent 商品创建事件
type ProductCreatedEvent struct {
	ProductID string    `json:"product_id"`
	SKU       string    `json:"sku"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// ProductUpdatedEvent 商品更新事件
type ProductUpdatedEvent struct {
	ProductID string    `json:"product_id"`
	SKU       string    `json:"sku"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// ProductDeletedEvent 商品删除事件
type ProductDeletedEvent struct {
	ProductID string    `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher 商品领域事件发布接口
type EventPublisher interface {
	PublishProductCreated(ctx context.Context, event ProductCreatedEvent) error
	PublishProductUpdated(ctx context.Context, event ProductUpdatedEvent) error
	PublishProductDeleted(ctx context.Context, event ProductDeletedEvent) error
}
