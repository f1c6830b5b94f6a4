package domain

import (
	"context"
	"time"
)

// 事件类型，用作消息 key
const UserRegisteredEventType = "user.registered"

// UserRegisteredEvent 用户注册完成事件
type UserRegisteredEvent struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// EventPublisher 用户领域事件发布接口
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, event UserRegisteredEvent) error
}
