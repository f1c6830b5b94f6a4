package domain

import "errors"

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateSKU sku 已存在
	ErrDuplicateSKU = errors.New("product with this sku already exists")
	// ErrTitleRequired 标题缺失
	ErrTitleRequired = errors.New("product title is required")
	// ErrSKURequired sku 缺失
	ErrSKURequired = errors.New("product sku is required")
	// ErrInvalidPrice 价格非法
	ErrInvalidPrice = errors.New("product price must not be negative")
)
