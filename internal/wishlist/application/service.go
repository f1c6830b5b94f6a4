package application

import (
	"context"
	"errors"
	"time"

	catalogdomain "github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/internal/wishlist/domain"
)

// 心愿单操作动作
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// WishlistView 心愿单视图，商品逐一填充详情；已下架商品被静默跳过
type WishlistView struct {
	UserID   string                   `json:"user_id"`
	Products []*catalogdomain.Product `json:"products"`
}

// WishlistApplicationService 心愿单应用服务
type WishlistApplicationService struct {
	repo     domain.WishlistRepository
	products catalogdomain.ProductRepository
}

// NewWishlistApplicationService 创建心愿单应用服务
func NewWishlistApplicationService(repo domain.WishlistRepository, products catalogdomain.ProductRepository) *WishlistApplicationService {
	return &WishlistApplicationService{repo: repo, products: products}
}

// GetWishlist 获取用户心愿单，首次访问时自动创建空心愿单
func (s *WishlistApplicationService) GetWishlist(ctx context.Context, userID string) (*WishlistView, error) {
	wishlist, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &WishlistView{
		UserID:   userID,
		Products: make([]*catalogdomain.Product, 0, len(wishlist.ProductIDs)),
	}
	for _, productID := range wishlist.ProductIDs {
		product, err := s.products.GetByID(ctx, productID)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		view.Products = append(view.Products, product)
	}
	return view, nil
}

// Toggle 向心愿单添加或移除商品。add 对已存在的商品是 no-op，
// remove 对不存在的商品同样是 no-op。
func (s *WishlistApplicationService) Toggle(ctx context.Context, userID, productID, action string) (*WishlistView, error) {
	if action != ActionAdd && action != ActionRemove {
		return nil, domain.ErrInvalidAction
	}

	wishlist, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	var changed bool
	switch action {
	case ActionAdd:
		// 校验商品存在后再落库引用
		if _, err := s.products.GetByID(ctx, productID); err != nil {
			return nil, err
		}
		changed = wishlist.Add(productID)
	case ActionRemove:
		changed = wishlist.Remove(productID)
	}

	if changed {
		wishlist.UpdatedAt = time.Now()
		if err := s.repo.Save(ctx, wishlist); err != nil {
			return nil, err
		}
	}

	return s.GetWishlist(ctx, userID)
}

func (s *WishlistApplicationService) getOrCreate(ctx context.Context, userID string) (*domain.Wishlist, error) {
	wishlist, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrWishlistNotFound) {
			wishlist = domain.NewWishlist(userID)
			if err := s.repo.Save(ctx, wishlist); err != nil {
				return nil, err
			}
			return wishlist, nil
		}
		return nil, err
	}
	return wishlist, nil
}
