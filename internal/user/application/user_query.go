package application

import (
	"context"

	orderapp "github.com/wyfcoding/storefront/internal/order/application"
	"github.com/wyfcoding/storefront/internal/user/domain"
)

// UserQueryService 用户查询服务
type UserQueryService struct {
	repo domain.UserRepository
}

// NewUserQueryService 创建用户查询服务实例
func NewUserQueryService(repo domain.UserRepository) *UserQueryService {
	return &UserQueryService{repo: repo}
}

// GetProfile 查询当前用户资料
func (s *UserQueryService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// GetSummary 为订单列表提供用户摘要
func (s *UserQueryService) GetSummary(ctx context.Context, userID string) (*orderapp.UserSummary, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &orderapp.UserSummary{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
