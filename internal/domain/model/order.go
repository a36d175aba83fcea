package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes a step of the order lifecycle.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is the aggregate root; it exclusively owns its items.
type Order struct {
	ID              int64
	UserID          int64
	ShippingAddress string
	Status          OrderStatus
	TotalPrice      decimal.Decimal
	OrderDate       time.Time
	Items           []OrderItem
}

// OrderItem is a line of an order.
type OrderItem struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Size       int64
}

// RecalculateTotals sets every item total to unit price × quantity and the
// order total to the exact sum of the item totals.
func (o *Order) RecalculateTotals() {
	totals := make([]decimal.Decimal, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		item.TotalPrice = item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
		totals = append(totals, item.TotalPrice)
	}
	o.TotalPrice = SumAmounts(totals...)
}
