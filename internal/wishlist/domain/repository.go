package domain

import "context"

// WishlistRepository 心愿单仓储接口
type WishlistRepository interface {
	// GetByUserID 按用户获取心愿单，不存在时返回 ErrWishlistNotFound
	GetByUserID(ctx context.Context, userID string) (*Wishlist, error)
	// Save 保存心愿单（新建或整体替换）
	Save(ctx context.Context, wishlist *Wishlist) error
}
