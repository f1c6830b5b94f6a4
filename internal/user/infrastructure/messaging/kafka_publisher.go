// Package messaging 用户领域事件的 Kafka 发布实现
package messaging

import (
	"context"

	"github.com/wyfcoding/storefront/internal/user/domain"
	"github.com/wyfcoding/storefront/pkg/mq"
)

const topic = "storefront.user.events"

// KafkaEventPublisher 通过 Kafka 同步发布用户事件
type KafkaEventPublisher struct {
	producer *mq.KafkaProducer
}

// NewKafkaEventPublisher 创建用户事件发布器
func NewKafkaEventPublisher(producer *mq.KafkaProducer) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: producer}
}

// PublishUserRegistered 发布用户注册事件
func (p *KafkaEventPublisher) PublishUserRegistered(ctx context.Context, event domain.UserRegisteredEvent) error {
	return p.producer.SendMessage(ctx, topic, domain.UserRegisteredEventType, event)
}
