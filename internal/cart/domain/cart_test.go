package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddItem(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(c *Cart)
		productID    string
		qty          int
		price        float64
		wantLines    int
		wantQuantity int
	}{
		{
			name:         "new line appended",
			setup:        func(c *Cart) {},
			productID:    "p1",
			qty:          2,
			price:        9.99,
			wantLines:    1,
			wantQuantity: 2,
		},
		{
			name: "same product merges quantities",
			setup: func(c *Cart) {
				c.AddItem("p1", 1, 9.99)
			},
			productID:    "p1",
			qty:          3,
			price:        9.99,
			wantLines:    1,
			wantQuantity: 4,
		},
		{
			name: "different product gets own line",
			setup: func(c *Cart) {
				c.AddItem("p1", 1, 9.99)
			},
			productID:    "p2",
			qty:          1,
			price:        5.00,
			wantLines:    2,
			wantQuantity: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart("u1")
			tt.setup(cart)

			cart.AddItem(tt.productID, tt.qty, tt.price)

			assert.Len(t, cart.Items, tt.wantLines)
			for _, item := range cart.Items {
				if item.ProductID == tt.productID {
					assert.Equal(t, tt.wantQuantity, item.Quantity)
				}
			}
		})
	}
}

func TestCart_AddItem_KeepsPriceSnapshot(t *testing.T) {
	cart := NewCart("u1")
	cart.AddItem("p1", 1, 10.00)

	// 再次加购传入新价格，行价格保持首次快照
	cart.AddItem("p1", 1, 99.00)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 10.00, cart.Items[0].Price)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart("u1")
	cart.AddItem("p1", 2, 9.99)
	cart.AddItem("p2", 1, 5.00)

	cart.RemoveItem("p1")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)

	// 移除不存在的行不报错
	cart.RemoveItem("p9")
	assert.Len(t, cart.Items, 1)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := NewCart("u1")
	cart.AddItem("p1", 2, 9.99)

	assert.True(t, cart.SetQuantity("p1", 5))
	assert.Equal(t, 5, cart.Items[0].Quantity)

	assert.False(t, cart.SetQuantity("p9", 1))
}

func TestCart_Subtotal(t *testing.T) {
	cart := NewCart("u1")
	assert.Equal(t, 0.0, cart.Subtotal())

	cart.AddItem("p1", 3, 19.99)
	cart.AddItem("p2", 1, 0.02)

	assert.InDelta(t, 59.99, cart.Subtotal(), 1e-9)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart("u1")
	cart.AddItem("p1", 1, 9.99)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.NotNil(t, cart.Items)
}
