package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/domain/repository"
)

// PaymentUseCase appends payment records to orders.
type PaymentUseCase struct {
	payments repository.PaymentRepository
	now      func() time.Time
	newID    func() string
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(payments repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{
		payments: payments,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Record stores a payment for an existing order. A missing transaction id is
// generated and a missing payment date defaults to now.
func (u *PaymentUseCase) Record(ctx context.Context, payment model.PaymentRecord) (*model.PaymentRecord, error) {
	if err := ValidatePayment(&payment); err != nil {
		return nil, err
	}

	payment.ID = 0
	payment.PaymentMethod = strings.TrimSpace(payment.PaymentMethod)
	payment.TransactionID = strings.TrimSpace(payment.TransactionID)
	if payment.TransactionID == "" {
		payment.TransactionID = u.newID()
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = u.now().UTC()
	}

	return u.payments.Create(ctx, payment)
}

// ListByOrder returns the payments of an order in the order they were recorded.
func (u *PaymentUseCase) ListByOrder(ctx context.Context, orderID int64) ([]model.PaymentRecord, error) {
	return u.payments.ListByOrder(ctx, orderID)
}
