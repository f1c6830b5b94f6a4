// Package domain 通知模块领域层
package domain

import "context"

// Sender 邮件发送抽象，实现方负责底层投递通道
type Sender interface {
	// Send 发送一封邮件，content 为已渲染完毕的纯文本正文
	Send(ctx context.Context, to, subject, content string) error
}
