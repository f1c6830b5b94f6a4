// Package messaging 订单领域事件的 Kafka 发布实现
package messaging

import (
	"context"

	"github.com/wyfcoding/storefront/internal/order/domain"
	"github.com/wyfcoding/storefront/pkg/mq"
)

const topic = "storefront.order.events"

// KafkaEventPublisher 通过 Kafka 同步发布订单事件
type KafkaEventPublisher struct {
	producer *mq.KafkaProducer
}

// NewKafkaEventPublisher 创建订单事件发布器
func NewKafkaEventPublisher(producer *mq.KafkaProducer) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: producer}
}

// PublishOrderCreated 发布订单创建事件
func (p *KafkaEventPublisher) PublishOrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error {
	return p.producer.SendMessage(ctx, topic, domain.OrderCreatedEventType, event)
}

// PublishOrderStatusChanged 发布订单状态变更事件
func (p *KafkaEventPublisher) PublishOrderStatusChanged(ctx context.Context, event domain.OrderStatusChangedEvent) error {
	return p.producer.SendMessage(ctx, topic, domain.OrderStatusChangedEventType, event)
}
