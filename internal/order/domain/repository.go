package domain

import "context"

// OrderRepository 订单仓储接口
// WithTx 使订单创建与清空购物车在同一事务中完成
type OrderRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	Save(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error
	ListByUserID(ctx context.Context, userID string, page, limit int) ([]*Order, int64, error)
	ListAll(ctx context.Context, page, limit int) ([]*Order, int64, error)
}
