package application

import (
	"context"

	"github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/pkg/logger"
)

// CatalogQueryService 商品目录查询服务
type CatalogQueryService struct {
	repo  domain.ProductRepository
	cache ProductCache
}

// NewCatalogQueryService 创建商品目录查询服务实例，cache 可为 nil
func NewCatalogQueryService(repo domain.ProductRepository, cache ProductCache) *CatalogQueryService {
	return &CatalogQueryService{repo: repo, cache: cache}
}

// GetProduct 按 id 获取商品，优先读缓存，未命中则回源并写缓存
func (s *CatalogQueryService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if s.cache != nil {
		var cached domain.Product
		if err := s.cache.GetJSON(ctx, ProductCacheKey(id), &cached); err == nil && !cached.ID.IsZero() {
			return &cached, nil
		}
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, ProductCacheKey(id), product, ProductCacheTTL); err != nil {
			logger.Warn(ctx, "Failed to cache product", "product_id", id, "error", err)
		}
	}
	return product, nil
}

// ListProducts 按条件分页查询商品，返回列表与总数
func (s *CatalogQueryService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.repo.List(ctx, filter)
}
