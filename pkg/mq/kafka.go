// Package mq 提供 Kafka producer 通用实现，用于同步发布领域事件
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/wyfcoding/storefront/pkg/logger"
)

// KafkaConfig Kafka 配置
type KafkaConfig struct {
	Brokers      []string
	MaxRetries   int
	RetryBackoff int
}

// KafkaProducer Kafka 生产者
type KafkaProducer struct {
	writer *kafka.Writer
	config KafkaConfig
}

// NewProducer 创建 Kafka 生产者
func NewProducer(cfg KafkaConfig) (*KafkaProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers not configured")
	}

	maxAttempts := cfg.MaxRetries
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		AllowAutoTopicCreation: true,
		Compression:            kafka.Gzip,
		RequiredAcks:           kafka.RequireAll, // 等待所有副本确认
		MaxAttempts:            maxAttempts,
		WriteBackoffMin:        time.Duration(cfg.RetryBackoff) * time.Millisecond,
		WriteBackoffMax:        time.Duration(cfg.RetryBackoff*10) * time.Millisecond,
	}

	logger.Info(context.Background(), "Kafka producer created successfully", "brokers", cfg.Brokers)
	return &KafkaProducer{
		writer: writer,
		config: cfg,
	}, nil
}

// SendMessage 发送单条消息
func (kp *KafkaProducer) SendMessage(ctx context.Context, topic string, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}

	if err := kp.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error(ctx, "Failed to send Kafka message",
			"topic", topic,
			"key", key,
			"error", err,
		)
		return err
	}

	logger.Debug(ctx, "Kafka message sent", "topic", topic, "key", key)
	return nil
}

// Close 关闭生产者
func (kp *KafkaProducer) Close() error {
	return kp.writer.Close()
}
