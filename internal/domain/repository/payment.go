package repository

import (
	"context"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
)

// PaymentRepository appends and reads payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment model.PaymentRecord) (*model.PaymentRecord, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.PaymentRecord, error)
}
