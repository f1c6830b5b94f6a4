package sender

import (
	"context"

	"github.com/wyfcoding/storefront/pkg/logger"
)

// MockSender 仅记录日志不真正发送，用于开发环境和 SMTP 未启用时
type MockSender struct{}

// NewMockSender 创建 mock 发送器
func NewMockSender() *MockSender {
	return &MockSender{}
}

// Send 将邮件内容写入日志
func (s *MockSender) Send(ctx context.Context, to, subject, content string) error {
	logger.Info(ctx, "Mock mail sent", "to", to, "subject", subject, "content", content)
	return nil
}
