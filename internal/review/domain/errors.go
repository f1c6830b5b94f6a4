package domain

import "errors"

var (
	// ErrInvalidRating 评分超出 [1,5]
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrInvalidReviewText 评论文本长度超出 [3,500]
	ErrInvalidReviewText = errors.New("review text must be between 3 and 500 characters")
	// ErrDuplicateReview 同一用户重复评论同一商品
	ErrDuplicateReview = errors.New("user has already reviewed this product")
)
