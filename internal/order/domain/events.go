package domain

import (
	"context"
	"time"
)

const (
	OrderCreatedEventType       = "order.created"
	OrderStatusChangedEventType = "order.status_changed"
)

// OrderCreatedEvent 订单创建事件
type OrderCreatedEvent struct {
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	ItemCount int       `json:"item_count"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderStatusChangedEvent 订单状态变更事件
type OrderStatusChangedEvent struct {
	OrderID   string      `json:"order_id"`
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
	Timestamp time.Time   `json:"timestamp"`
}

// EventPublisher 订单领域事件发布接口
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
