package dto

import "time"

// Order is the wire form of an order aggregate shared by the order service
// and its clients.
type Order struct {
	OrderID         int64       `json:"orderId,omitempty"`
	UserID          int64       `json:"userId"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	OrderStatus     string      `json:"orderStatus,omitempty"`
	TotalPrice      Money       `json:"totalPrice"`
	OrderDate       *time.Time  `json:"orderDate,omitempty"`
	OrderItems      []OrderItem `json:"orderItems"`
}

// OrderItem is the wire form of an order line.
type OrderItem struct {
	OrderItemID int64 `json:"orderItemId,omitempty"`
	OrderID     int64 `json:"orderId,omitempty"`
	ProductID   int64 `json:"productId"`
	Quantity    int64 `json:"quantity"`
	UnitPrice   Money `json:"unitPrice"`
	TotalPrice  Money `json:"totalPrice"`
	Size        int64 `json:"size"`
}

// StatusUpdate is the body of a status change request.
type StatusUpdate struct {
	OrderStatus string `json:"orderStatus"`
}

// Payment is the wire form of a payment record.
type Payment struct {
	PaymentID     int64      `json:"paymentId,omitempty"`
	OrderID       int64      `json:"orderId"`
	TransactionID string     `json:"transactionId,omitempty"`
	PaymentMethod string     `json:"paymentMethod"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
}
