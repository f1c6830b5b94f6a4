package application

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	catalogapp "github.com/wyfcoding/storefront/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/internal/review/domain"
	"github.com/wyfcoding/storefront/pkg/logger"
	"github.com/wyfcoding/storefront/pkg/metrics"
)

// AddReviewCommand 新增评论命令
type AddReviewCommand struct {
	ProductID string
	UserID    string
	UserName  string
	Text      string
	Rating    int
}

// ReviewApplicationService 评论应用服务
type ReviewApplicationService struct {
	repo     domain.ReviewRepository
	products catalogdomain.ProductRepository
	cache    catalogapp.ProductCache
	metrics  *metrics.Metrics
}

// NewReviewApplicationService 创建评论应用服务实例，cache 与 m 可为 nil
func NewReviewApplicationService(
	repo domain.ReviewRepository,
	products catalogdomain.ProductRepository,
	cache catalogapp.ProductCache,
	m *metrics.Metrics,
) *ReviewApplicationService {
	return &ReviewApplicationService{repo: repo, products: products, cache: cache, metrics: m}
}

// AddReview 新增评论
// 评论写入与商品聚合评分重算在同一事务内完成；
// 重算为全量读回该商品所有评论再求均值
func (s *ReviewApplicationService) AddReview(ctx context.Context, cmd AddReviewCommand) (*domain.Review, error) {
	review := &domain.Review{
		ProductID: cmd.ProductID,
		UserID:    cmd.UserID,
		UserName:  cmd.UserName,
		Text:      cmd.Text,
		Rating:    cmd.Rating,
		CreatedAt: time.Now(),
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.products.GetByID(txCtx, cmd.ProductID); err != nil {
			return err
		}

		exists, err := s.repo.ExistsByProductAndUser(txCtx, cmd.ProductID, cmd.UserID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateReview
		}

		if err := s.repo.Save(txCtx, review); err != nil {
			return err
		}

		reviews, err := s.repo.ListByProduct(txCtx, cmd.ProductID)
		if err != nil {
			return err
		}

		rating, count := averageRating(reviews)
		return s.products.UpdateRating(txCtx, cmd.ProductID, rating, count)
	})
	if err != nil {
		return nil, err
	}

	// 评分已变化，移除商品详情缓存
	if s.cache != nil {
		if err := s.cache.Delete(ctx, catalogapp.ProductCacheKey(cmd.ProductID)); err != nil {
			logger.Warn(ctx, "Failed to invalidate product cache", "product_id", cmd.ProductID, "error", err)
		}
	}
	if s.metrics != nil {
		s.metrics.ReviewsCreatedTotal.Inc()
	}

	return review, nil
}

// ListReviews 查询商品的全部评论
func (s *ReviewApplicationService) ListReviews(ctx context.Context, productID string) ([]*domain.Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}

// averageRating 求均值，保留两位小数
func averageRating(reviews []*domain.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	sum := decimal.Zero
	for _, r := range reviews {
		sum = sum.Add(decimal.NewFromInt(int64(r.Rating)))
	}
	avg, _ := sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(2).Float64()
	return avg, len(reviews)
}
