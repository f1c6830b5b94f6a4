// Package sender 邮件投递通道实现
package sender

import (
	"context"
	"fmt"
	"net"
	"net/smtp"

	"github.com/wyfcoding/storefront/pkg/config"
)

// SMTPSender 通过 SMTP 协议发送邮件
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPSender 创建 SMTP 发送器
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// Send 发送邮件。SMTP 客户端本身不支持 context 取消，
// 调用方应通过外层超时控制整体时长。
func (s *SMTPSender) Send(ctx context.Context, to, subject, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		s.from, to, subject, content)

	addr := net.JoinHostPort(s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", addr, err)
	}
	return nil
}
