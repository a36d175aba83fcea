package model

import "time"

// PaymentRecord stores a payment made for an order. Records are never updated.
type PaymentRecord struct {
	ID            int64
	OrderID       int64
	TransactionID string
	PaymentMethod string
	PaymentDate   time.Time
}
