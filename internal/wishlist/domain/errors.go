package domain

import "errors"

var (
	// ErrWishlistNotFound 心愿单不存在
	ErrWishlistNotFound = errors.New("wishlist not found")
	// ErrInvalidAction 不支持的心愿单操作
	ErrInvalidAction = errors.New("invalid wishlist action")
)
