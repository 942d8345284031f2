package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a completed checkout. Orders are written by the external checkout
// process and are read-only from this backend's perspective.
type Order struct {
	ID           uuid.UUID
	CustomerKey  string
	Address      ShippingAddress
	Items        []OrderItem
	TotalAmount  decimal.Decimal
	ShippingRate string
	CreatedAt    time.Time
}

// ShippingAddress is the delivery address captured at checkout.
type ShippingAddress struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// OrderItem is a single line item of an order.
type OrderItem struct {
	ProductID uuid.UUID
	Color     string
	Size      string
	Quantity  int
}

// ItemCount returns the total quantity across all line items.
func (o *Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
