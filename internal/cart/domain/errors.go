package domain

import "errors"

var (
	// ErrCartNotFound 购物车不存在
	ErrCartNotFound = errors.New("cart not found")
	// ErrInvalidQuantity 数量必须不小于 1
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
