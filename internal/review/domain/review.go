package domain

import (
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MinRating / MaxRating 评分闭区间
	MinRating = 1
	MaxRating = 5
	// MinTextLen / MaxTextLen 评论文本字符数闭区间
	MinTextLen = 3
	MaxTextLen = 500
)

// Review 商品评论，同一用户对同一商品仅一条
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID string             `bson:"product_id" json:"product_id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	UserName  string             `bson:"user_name" json:"user_name"`
	Text      string             `bson:"text" json:"text"`
	Rating    int                `bson:"rating" json:"rating"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Validate 校验评分与文本长度（边界值含在内）
// 文本长度按字符数而非字节数计算
func (r *Review) Validate() error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return ErrInvalidRating
	}
	if n := utf8.RuneCountInString(r.Text); n < MinTextLen || n > MaxTextLen {
		return ErrInvalidReviewText
	}
	return nil
}
