package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    OrderStatus
		wantErr bool
	}{
		{input: "Pending", want: StatusPending},
		{input: "Processing", want: StatusProcessing},
		{input: "Shipped", want: StatusShipped},
		{input: "Delivered", want: StatusDelivered},
		{input: "Cancelled", want: StatusCancelled},
		{input: "pending", wantErr: true},
		{input: "Unknown", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShippingDetails_Validate(t *testing.T) {
	valid := ShippingDetails{
		FullName:   "Jane Doe",
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
	}
	assert.NoError(t, valid.Validate())

	// Phone 可选
	withoutPhone := valid
	withoutPhone.Phone = ""
	assert.NoError(t, withoutPhone.Validate())

	missingCity := valid
	missingCity.City = ""
	assert.ErrorIs(t, missingCity.Validate(), ErrMissingShippingDetails)
}

func TestNewOrder_Totals(t *testing.T) {
	shipping := ShippingDetails{
		FullName: "Jane Doe", Address: "1 Main St", City: "Springfield",
		PostalCode: "12345", Country: "US",
	}

	tests := []struct {
		name         string
		items        []OrderItem
		wantSubtotal float64
		wantShipping float64
		wantTotal    float64
	}{
		{
			name:         "below threshold pays flat fee",
			items:        []OrderItem{{ProductID: "p1", Quantity: 2, Price: 19.99}},
			wantSubtotal: 39.98,
			wantShipping: 10,
			wantTotal:    49.98,
		},
		{
			name:         "at threshold ships free",
			items:        []OrderItem{{ProductID: "p1", Quantity: 4, Price: 25}},
			wantSubtotal: 100,
			wantShipping: 0,
			wantTotal:    100,
		},
		{
			name: "above threshold ships free",
			items: []OrderItem{
				{ProductID: "p1", Quantity: 1, Price: 80},
				{ProductID: "p2", Quantity: 3, Price: 15},
			},
			wantSubtotal: 125,
			wantShipping: 0,
			wantTotal:    125,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := NewOrder("u1", tt.items, shipping)

			assert.InDelta(t, tt.wantSubtotal, order.Subtotal, 1e-9)
			assert.InDelta(t, tt.wantShipping, order.Shipping, 1e-9)
			assert.InDelta(t, tt.wantTotal, order.Total, 1e-9)
			assert.Equal(t, StatusPending, order.Status)
		})
	}
}
