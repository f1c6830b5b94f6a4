package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product 商品聚合根
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Brand         string             `bson:"brand" json:"brand"`
	Category      string             `bson:"category" json:"category"`
	SKU           string             `bson:"sku" json:"sku"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"original_price,omitempty" json:"original_price,omitempty"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Availability  bool               `bson:"availability" json:"availability"`
	Images        []string           `bson:"images" json:"images"`
	// Rating / ReviewCount 由评论模块在每次新增评论时整体重算
	Rating      float64   `bson:"rating" json:"rating"`
	ReviewCount int       `bson:"review_count" json:"review_count"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Validate 校验商品基本约束
func (p *Product) Validate() error {
	if p.Title == "" {
		return ErrTitleRequired
	}
	if p.SKU == "" {
		return ErrSKURequired
	}
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}
