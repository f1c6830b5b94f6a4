package application

import (
	"context"
	"errors"

	"github.com/wyfcoding/storefront/internal/cart/domain"
	catalogdomain "github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/pkg/metrics"
)

// CartView 带商品详情的购物车视图
type CartView struct {
	ID       string         `json:"id,omitempty"`
	UserID   string         `json:"user_id"`
	Items    []CartLineView `json:"items"`
	Subtotal float64        `json:"subtotal"`
}

// CartLineView 购物车行视图
type CartLineView struct {
	Product   *catalogdomain.Product `json:"product,omitempty"`
	ProductID string                 `json:"product_id"`
	Quantity  int                    `json:"quantity"`
	Price     float64                `json:"price"`
}

// CartApplicationService 购物车应用服务
type CartApplicationService struct {
	repo     domain.CartRepository
	products catalogdomain.ProductRepository
	metrics  *metrics.Metrics
}

// NewCartApplicationService 创建购物车应用服务实例
func NewCartApplicationService(repo domain.CartRepository, products catalogdomain.ProductRepository, m *metrics.Metrics) *CartApplicationService {
	return &CartApplicationService{repo: repo, products: products, metrics: m}
}

func (s *CartApplicationService) countMutation() {
	if s.metrics != nil {
		s.metrics.CartMutationsTotal.Inc()
	}
}

// AddItem 加入商品：车不存在则创建，同商品行数量累加，价格取商品当前价快照
func (s *CartApplicationService) AddItem(ctx context.Context, userID, productID string, qty int) (*domain.Cart, error) {
	if qty < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrCartNotFound) {
		cart = domain.NewCart(userID)
	} else if err != nil {
		return nil, err
	}

	cart.AddItem(productID, qty, product.Price)
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	s.countMutation()
	return cart, nil
}

// GetCart 获取带商品详情的购物车，无车时返回空视图
func (s *CartApplicationService) GetCart(ctx context.Context, userID string) (*CartView, error) {
	cart, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrCartNotFound) {
		return &CartView{UserID: userID, Items: []CartLineView{}}, nil
	}
	if err != nil {
		return nil, err
	}

	view := &CartView{
		ID:       cart.ID.Hex(),
		UserID:   cart.UserID,
		Items:    make([]CartLineView, 0, len(cart.Items)),
		Subtotal: cart.Subtotal(),
	}
	for _, item := range cart.Items {
		line := CartLineView{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		// 商品可能已下架，保留行但不附详情
		if product, err := s.products.GetByID(ctx, item.ProductID); err == nil {
			line.Product = product
		}
		view.Items = append(view.Items, line)
	}
	return view, nil
}

// RemoveItem 移除商品行，幂等；车不存在时返回 ErrCartNotFound
func (s *CartApplicationService) RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	cart, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	s.countMutation()
	return cart, nil
}

// UpdateQuantity 覆写商品行数量
func (s *CartApplicationService) UpdateQuantity(ctx context.Context, userID, productID string, qty int) (*domain.Cart, error) {
	if qty < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	cart, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(productID, qty)
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	s.countMutation()
	return cart, nil
}
