package domain

import "context"

// ProductFilter 商品列表查询条件
type ProductFilter struct {
	Category string
	Brand    string
	Page     int
	Limit    int
}

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*Product, int64, error)
	// UpdateRating 覆写商品的聚合评分与评论数，由评论模块在事务内调用
	UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error
}
