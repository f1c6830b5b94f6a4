package domain

import "context"

// ReviewRepository 评论仓储接口
// WithTx 使评论写入与商品评分重算在同一事务中完成
type ReviewRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	Save(ctx context.Context, review *Review) error
	ExistsByProductAndUser(ctx context.Context, productID, userID string) (bool, error)
	ListByProduct(ctx context.Context, productID string) ([]*Review, error)
}
