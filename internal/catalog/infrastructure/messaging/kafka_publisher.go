// Package messaging 商品领域事件的 Kafka 发布实现
package messaging

import (
	"context"

	"github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/pkg/mq"
)

const topic = "storefront.catalog.events"

// KafkaEventPublisher 通过 Kafka 同步发布商品事件
type KafkaEventPublisher struct {
	producer *mq.KafkaProducer
}

// NewKafkaEventPublisher 创建商品事件发布器
func NewKafkaEventPublisher(producer *mq.KafkaProducer) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: producer}
}

// PublishProductCreated 发布商品创建事件
func (p *KafkaEventPublisher) PublishProductCreated(ctx context.Context, event domain.ProductCreatedEvent) error {
	return p.producer.SendMessage(ctx, topic, domain.ProductCreatedEventType, event)
}

// PublishProductUpdated 发布商品更新事件
func (p *KafkaEventPublisher) PublishProductUpdated(ctx context.Context, event domain.ProductUpdatedEvent) error {
	return p.producer.SendMessage(ctx, topic, domain.ProductUpdatedEventType, event)
}

// PublishProductDeleted 发布商品删除事件
func (p *KafkaEventPublisher) PublishProductDeleted(ctx context.Context, event domain.ProductDeletedEvent) error {
	return p.producer.SendMessage(ctx, topic, domain.ProductDeletedEventType, event)
}
