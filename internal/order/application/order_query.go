package application

import (
	"context"

	authdomain "github.com/wyfcoding/storefront/internal/auth/domain"
	"github.com/wyfcoding/storefront/internal/order/domain"
	"github.com/wyfcoding/storefront/pkg/logger"
)

// UserSummary 订单列表里附带的用户摘要
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserDirectory 用户摘要查询接口，由用户模块实现
type UserDirectory interface {
	GetSummary(ctx context.Context, userID string) (*UserSummary, error)
}

// OrderView 订单视图，管理员列表附带用户摘要
type OrderView struct {
	*domain.Order
	User *UserSummary `json:"user,omitempty"`
}

// OrderQueryService 订单查询服务
type OrderQueryService struct {
	repo  domain.OrderRepository
	users UserDirectory
}

// NewOrderQueryService 创建订单查询服务实例
func NewOrderQueryService(repo domain.OrderRepository, users UserDirectory) *OrderQueryService {
	return &OrderQueryService{repo: repo, users: users}
}

// ListOrders 分页查询订单，按创建时间倒序
// 普通用户仅见自己的订单；管理员见全部并附用户摘要
func (s *OrderQueryService) ListOrders(ctx context.Context, principal authdomain.Principal, page, limit int) ([]*OrderView, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	if !principal.IsAdmin() {
		orders, total, err := s.repo.ListByUserID(ctx, principal.UserID, page, limit)
		if err != nil {
			return nil, 0, err
		}
		views := make([]*OrderView, 0, len(orders))
		for _, o := range orders {
			views = append(views, &OrderView{Order: o})
		}
		return views, total, nil
	}

	orders, total, err := s.repo.ListAll(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	views := make([]*OrderView, 0, len(orders))
	for _, o := range orders {
		view := &OrderView{Order: o}
		if s.users != nil {
			summary, err := s.users.GetSummary(ctx, o.UserID)
			if err != nil {
				logger.Warn(ctx, "Failed to resolve order user summary", "user_id", o.UserID, "error", err)
			} else {
				view.User = summary
			}
		}
		views = append(views, view)
	}
	return views, total, nil
}

// GetOrder 按 id 获取订单
func (s *OrderQueryService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}
