package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
)

// StatusGuard validates a status change against the currently stored status.
type StatusGuard func(current model.OrderStatus) error

// OrderRepository describes persistence operations with order aggregates.
type OrderRepository interface {
	// Create stores the order and all its items atomically and returns them with identifiers assigned.
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	List(ctx context.Context, req model.PageRequest) ([]model.Order, int64, error)
	// UpdateStatus locks the order, runs guard on its current status and persists next when guard allows it.
	UpdateStatus(ctx context.Context, id int64, next model.OrderStatus, guard StatusGuard) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	SumTotalPrice(ctx context.Context) (decimal.Decimal, error)
}
