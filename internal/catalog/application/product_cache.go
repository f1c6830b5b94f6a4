package application

import (
	"context"
	"time"
)

// ProductCacheTTL 商品详情缓存有效期
const ProductCacheTTL = 5 * time.Minute

// ProductCache 商品详情缓存接口，由 pkg/cache 的 Redis 实现满足
type ProductCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ProductCacheKey 返回商品详情的缓存键
func ProductCacheKey(productID string) string {
	return "catalog:product:" + productID
}
