package domain

import "errors"

var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = errors.New("order not found")
	// ErrCartEmpty 购物车为空，无法下单
	ErrCartEmpty = errors.New("cart is empty")
	// ErrInvalidStatus 未知的订单状态值
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrMissingShippingDetails 收货信息不完整
	ErrMissingShippingDetails = errors.New("missing required shipping details")
)
