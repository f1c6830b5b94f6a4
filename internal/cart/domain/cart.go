package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart 购物车聚合根，每个用户一份（约定而非索引约束）
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CartItem 购物车行项目
// Price 为加入时的商品价格快照，不随商品改价联动
type CartItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

// NewCart 为用户创建空购物车
func NewCart(userID string) *Cart {
	now := time.Now()
	return &Cart{
		UserID:    userID,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem 合并同商品行（数量累加）或追加新行
func (c *Cart) AddItem(productID string, qty int, price float64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: qty, Price: price})
}

// RemoveItem 移除指定商品行，不存在时不报错
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity 覆写指定商品行的数量，返回是否命中
func (c *Cart) SetQuantity(productID string, qty int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			return true
		}
	}
	return false
}

// Clear 清空所有行项目
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// IsEmpty 是否为空车
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal 按价格快照计算小计
func (c *Cart) Subtotal() float64 {
	total := decimal.Zero
	for _, item := range c.Items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}
