package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus 订单状态
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// ParseStatus 校验并解析状态值，未知值返回 ErrInvalidStatus
func ParseStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// 运费规则：小计满额免运费，否则收取固定运费
var (
	freeShippingThreshold = decimal.NewFromInt(100)
	standardShippingFee   = decimal.NewFromInt(10)
)

// Order 订单聚合根
// 行项目在创建时从购物车按值拷贝，创建后不可变
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	Items           []OrderItem        `bson:"items" json:"items"`
	ShippingDetails ShippingDetails    `bson:"shipping_details" json:"shipping_details"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	Shipping        float64            `bson:"shipping" json:"shipping"`
	Total           float64            `bson:"total" json:"total"`
	Status          OrderStatus        `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// OrderItem 订单行项目（创建时的价格快照）
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

// ShippingDetails 收货信息
type ShippingDetails struct {
	FullName   string `bson:"full_name" json:"full_name"`
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postal_code" json:"postal_code"`
	Country    string `bson:"country" json:"country"`
	Phone      string `bson:"phone" json:"phone"`
}

// Validate 校验收货信息必填项
func (s ShippingDetails) Validate() error {
	if s.FullName == "" || s.Address == "" || s.City == "" || s.PostalCode == "" || s.Country == "" {
		return ErrMissingShippingDetails
	}
	return nil
}

// NewOrder 从行项目构建订单并结算金额，初始状态 Pending
func NewOrder(userID string, items []OrderItem, shipping ShippingDetails) *Order {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	shippingFee := standardShippingFee
	if subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		shippingFee = decimal.Zero
	}
	total := subtotal.Add(shippingFee)

	subtotalF, _ := subtotal.Float64()
	shippingF, _ := shippingFee.Float64()
	totalF, _ := total.Float64()

	now := time.Now()
	return &Order{
		UserID:          userID,
		Items:           items,
		ShippingDetails: shipping,
		Subtotal:        subtotalF,
		Shipping:        shippingF,
		Total:           totalF,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
