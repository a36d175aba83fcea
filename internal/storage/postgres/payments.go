package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/domain/repository"
)

const insertPaymentSQL = "INSERT INTO payments (order_id, transaction_id, payment_method, payment_date) VALUES ($1, $2, $3, $4) RETURNING payment_id"

// paymentRepository only appends; payment records are never updated.
type paymentRepository struct {
	storage *Storage
}

var _ repository.PaymentRepository = (*paymentRepository)(nil)

func (r *paymentRepository) Create(ctx context.Context, payment model.PaymentRecord) (*model.PaymentRecord, error) {
	err := r.storage.pool.QueryRow(ctx, insertPaymentSQL,
		payment.OrderID,
		payment.TransactionID,
		payment.PaymentMethod,
		payment.PaymentDate,
	).Scan(&payment.ID)
	if err != nil {
		switch pgErrorCode(err) {
		case codeForeignKeyViolation:
			return nil, fmt.Errorf("order %d: %w", payment.OrderID, domainErrors.ErrNotFound)
		case codeUniqueViolation:
			return nil, fmt.Errorf("transaction %s: %w", payment.TransactionID, domainErrors.ErrAlreadyExists)
		}
		return nil, r.storage.wrapErr("create payment", err)
	}
	return &payment, nil
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.PaymentRecord, error) {
	query, args, err := psql.Select("payment_id", "order_id", "transaction_id", "payment_method", "payment_date").
		From("payments").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("payment_id").
		ToSql()
	if err != nil {
		return nil, r.storage.wrapErr("list payments", err)
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, r.storage.wrapErr("list payments", err)
	}
	defer rows.Close()

	payments := make([]model.PaymentRecord, 0)
	for rows.Next() {
		var p model.PaymentRecord
		if err := rows.Scan(&p.ID, &p.OrderID, &p.TransactionID, &p.PaymentMethod, &p.PaymentDate); err != nil {
			return nil, r.storage.wrapErr("list payments", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storage.wrapErr("list payments", err)
	}
	return payments, nil
}
