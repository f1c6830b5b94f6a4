package application

import (
	"context"
	"time"

	cartdomain "github.com/wyfcoding/storefront/internal/cart/domain"
	"github.com/wyfcoding/storefront/internal/order/domain"
	"github.com/wyfcoding/storefront/pkg/logger"
	"github.com/wyfcoding/storefront/pkg/metrics"
)

// CreateOrderCommand 创建订单命令
type CreateOrderCommand struct {
	UserID   string
	Email    string
	Shipping domain.ShippingDetails
}

// UpdateStatusCommand 更新订单状态命令（仅管理员）
type UpdateStatusCommand struct {
	OrderID string
	Status  string
}

// ConfirmationMailer 下单确认邮件发送接口，由通知模块实现
type ConfirmationMailer interface {
	SendOrderConfirmation(ctx context.Context, to string, order *domain.Order) error
}

// OrderCommandService 订单命令服务
type OrderCommandService struct {
	repo      domain.OrderRepository
	carts     cartdomain.CartRepository
	publisher domain.EventPublisher
	mailer    ConfirmationMailer
	metrics   *metrics.Metrics
}

// NewOrderCommandService 创建订单命令服务实例
func NewOrderCommandService(
	repo domain.OrderRepository,
	carts cartdomain.CartRepository,
	publisher domain.EventPublisher,
	mailer ConfirmationMailer,
	m *metrics.Metrics,
) *OrderCommandService {
	return &OrderCommandService{
		repo:      repo,
		carts:     carts,
		publisher: publisher,
		mailer:    mailer,
		metrics:   m,
	}
}

// CreateOrder 由购物车创建订单
// 订单落库与清空购物车在同一事务内完成，并发的第二次下单
// 会看到已清空的购物车并以 ErrCartEmpty 失败
func (s *OrderCommandService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if err := cmd.Shipping.Validate(); err != nil {
		return nil, err
	}

	var order *domain.Order
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		cart, err := s.carts.GetByUserID(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if cart.IsEmpty() {
			return domain.ErrCartEmpty
		}

		// 行项目按值拷贝，此后独立于购物车的任何变更
		items := make([]domain.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			items = append(items, domain.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Price,
			})
		}

		order = domain.NewOrder(cmd.UserID, items, cmd.Shipping)
		if err := s.repo.Save(txCtx, order); err != nil {
			return err
		}

		cart.Clear()
		return s.carts.Save(txCtx, cart)
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.OrdersCreatedTotal.Inc()
	}

	if s.publisher != nil {
		event := domain.OrderCreatedEvent{
			OrderID:   order.ID.Hex(),
			UserID:    order.UserID,
			ItemCount: len(order.Items),
			Total:     order.Total,
			Timestamp: order.CreatedAt,
		}
		if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
			logger.Warn(ctx, "Failed to publish order created event", "order_id", order.ID.Hex(), "error", err)
		}
	}

	if s.mailer != nil && cmd.Email != "" {
		if err := s.mailer.SendOrderConfirmation(ctx, cmd.Email, order); err != nil {
			logger.Warn(ctx, "Failed to send order confirmation mail", "order_id", order.ID.Hex(), "error", err)
		}
	}

	return order, nil
}

// UpdateStatus 更新订单状态，状态值必须属于固定枚举
func (s *OrderCommandService) UpdateStatus(ctx context.Context, cmd UpdateStatusCommand) (*domain.Order, error) {
	status, err := domain.ParseStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	if err := s.repo.UpdateStatus(ctx, cmd.OrderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()

	if s.publisher != nil {
		event := domain.OrderStatusChangedEvent{
			OrderID:   order.ID.Hex(),
			OldStatus: oldStatus,
			NewStatus: status,
			Timestamp: order.UpdatedAt,
		}
		if err := s.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
			logger.Warn(ctx, "Failed to publish order status changed event", "order_id", order.ID.Hex(), "error", err)
		}
	}

	return order, nil
}
