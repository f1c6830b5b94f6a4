package application

import (
	"context"
	"time"

	"github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/pkg/logger"
)

// CreateProductCommand 创建商品命令
type CreateProductCommand struct {
	Title         string
	Brand         string
	Category      string
	SKU           string
	Price         float64
	OriginalPrice float64
	Quantity      int
	Availability  bool
	Images        []string
}

// UpdateProductCommand 更新商品命令
type UpdateProductCommand struct {
	ProductID     string
	Title         string
	Brand         string
	Category      string
	Price         *float64
	OriginalPrice *float64
	Quantity      *int
	Availability  *bool
	Images        []string
}

// CatalogCommandService 商品目录命令服务
type CatalogCommandService struct {
	repo      domain.ProductRepository
	publisher domain.EventPublisher
	cache     ProductCache
}

// NewCatalogCommandService 创建商品目录命令服务实例，cache 可为 nil
func NewCatalogCommandService(repo domain.ProductRepository, publisher domain.EventPublisher, cache ProductCache) *CatalogCommandService {
	return &CatalogCommandService{repo: repo, publisher: publisher, cache: cache}
}

// invalidate 写操作后移除商品详情缓存
func (s *CatalogCommandService) invalidate(ctx context.Context, productID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, ProductCacheKey(productID)); err != nil {
		logger.Warn(ctx, "Failed to invalidate product cache", "product_id", productID, "error", err)
	}
}

// CreateProduct 创建商品，sku 冲突返回 domain.ErrDuplicateSKU
func (s *CatalogCommandService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	now := time.Now()
	product := &domain.Product{
		Title:         cmd.Title,
		Brand:         cmd.Brand,
		Category:      cmd.Category,
		SKU:           cmd.SKU,
		Price:         cmd.Price,
		OriginalPrice: cmd.OriginalPrice,
		Quantity:      cmd.Quantity,
		Availability:  cmd.Availability,
		Images:        cmd.Images,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.ProductCreatedEvent{
			ProductID: product.ID.Hex(),
			SKU:       product.SKU,
			Title:     product.Title,
			Price:     product.Price,
			Timestamp: now,
		}
		if err := s.publisher.PublishProductCreated(ctx, event); err != nil {
			logger.Warn(ctx, "Failed to publish product created event", "product_id", product.ID.Hex(), "error", err)
		}
	}

	return product, nil
}

// UpdateProduct 更新商品
func (s *CatalogCommandService) UpdateProduct(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != "" {
		product.Title = cmd.Title
	}
	if cmd.Brand != "" {
		product.Brand = cmd.Brand
	}
	if cmd.Category != "" {
		product.Category = cmd.Category
	}
	if cmd.Price != nil {
		product.Price = *cmd.Price
	}
	if cmd.OriginalPrice != nil {
		product.OriginalPrice = *cmd.OriginalPrice
	}
	if cmd.Quantity != nil {
		product.Quantity = *cmd.Quantity
	}
	if cmd.Availability != nil {
		product.Availability = *cmd.Availability
	}
	if cmd.Images != nil {
		product.Images = cmd.Images
	}
	product.UpdatedAt = time.Now()

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cmd.ProductID)

	if s.publisher != nil {
		event := domain.ProductUpdatedEvent{
			ProductID: product.ID.Hex(),
			SKU:       product.SKU,
			Price:     product.Price,
			Timestamp: product.UpdatedAt,
		}
		if err := s.publisher.PublishProductUpdated(ctx, event); err != nil {
			logger.Warn(ctx, "Failed to publish product updated event", "product_id", product.ID.Hex(), "error", err)
		}
	}

	return product, nil
}

// DeleteProduct 删除商品
func (s *CatalogCommandService) DeleteProduct(ctx context.Context, productID string) error {
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, productID); err != nil {
		return err
	}
	s.invalidate(ctx, productID)

	if s.publisher != nil {
		event := domain.ProductDeletedEvent{
			ProductID: productID,
			Timestamp: time.Now(),
		}
		if err := s.publisher.PublishProductDeleted(ctx, event); err != nil {
			logger.Warn(ctx, "Failed to publish product deleted event", "product_id", productID, "error", err)
		}
	}

	return nil
}
