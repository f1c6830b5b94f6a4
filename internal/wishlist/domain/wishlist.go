package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wishlist 用户心愿单，商品引用的集合（无数量、无次序语义）
type Wishlist struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	ProductIDs []string           `bson:"product_ids" json:"product_ids"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// NewWishlist 为用户创建空心愿单
func NewWishlist(userID string) *Wishlist {
	now := time.Now()
	return &Wishlist{
		UserID:     userID,
		ProductIDs: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Contains 是否已包含商品
func (w *Wishlist) Contains(productID string) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// Add 加入商品引用，已存在时为 no-op，返回是否发生变更
func (w *Wishlist) Add(productID string) bool {
	if w.Contains(productID) {
		return false
	}
	w.ProductIDs = append(w.ProductIDs, productID)
	return true
}

// Remove 移除商品引用，返回是否发生变更
func (w *Wishlist) Remove(productID string) bool {
	for i, id := range w.ProductIDs {
		if id == productID {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			return true
		}
	}
	return false
}
