package domain

import "context"

// CartRepository 购物车仓储接口
// 每次变更整体持久化购物车文档
type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
}
