// Package application 通知模块应用服务
package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/wyfcoding/storefront/internal/notification/domain"
	orderdomain "github.com/wyfcoding/storefront/internal/order/domain"
	"github.com/wyfcoding/storefront/pkg/metrics"
)

// Mailer 组装并发送各类业务邮件
type Mailer struct {
	sender       domain.Sender
	resetBaseURL string
	metrics      *metrics.Metrics
}

// NewMailer 创建邮件服务实例，metrics 可为 nil
func NewMailer(sender domain.Sender, resetBaseURL string, m *metrics.Metrics) *Mailer {
	return &Mailer{sender: sender, resetBaseURL: resetBaseURL, metrics: m}
}

// SendPasswordReset 发送密码重置邮件，链接内嵌一次性令牌
func (m *Mailer) SendPasswordReset(ctx context.Context, to, token string) error {
	link := fmt.Sprintf("%s/%s", strings.TrimRight(m.resetBaseURL, "/"), token)
	content := fmt.Sprintf(
		"You requested a password reset.\n\n"+
			"Please click the link below to choose a new password. The link expires in one hour.\n\n"+
			"%s\n\n"+
			"If you did not request this, you can safely ignore this mail.\n", link)

	if err := m.sender.Send(ctx, to, "Reset your password", content); err != nil {
		return err
	}
	m.countSent()
	return nil
}

// SendOrderConfirmation 发送下单确认邮件
func (m *Mailer) SendOrderConfirmation(ctx context.Context, to string, order *orderdomain.Order) error {
	var lines strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&lines, "  - %s x%d @ %.2f\n", item.ProductID, item.Quantity, item.Price)
	}
	content := fmt.Sprintf(
		"Thank you for your order!\n\n"+
			"Order ID: %s\n"+
			"Items:\n%s"+
			"Subtotal: %.2f\n"+
			"Shipping: %.2f\n"+
			"Total:    %.2f\n\n"+
			"We will notify you when your order ships.\n",
		order.ID.Hex(), lines.String(),
		order.Subtotal, order.Shipping, order.Total)

	if err := m.sender.Send(ctx, to, fmt.Sprintf("Order confirmation %s", order.ID.Hex()), content); err != nil {
		return err
	}
	m.countSent()
	return nil
}

func (m *Mailer) countSent() {
	if m.metrics != nil {
		m.metrics.MailsSentTotal.Inc()
	}
}
