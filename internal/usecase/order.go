package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	policy *model.TransitionPolicy
	paging model.Paging
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, policy *model.TransitionPolicy, paging model.Paging) *OrderUseCase {
	if policy == nil {
		policy = model.DefaultTransitionPolicy()
	}
	return &OrderUseCase{
		orders: orders,
		policy: policy,
		paging: paging,
		now:    time.Now,
	}
}

// Create validates the order, computes its totals and persists it with its items.
func (u *OrderUseCase) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if err := ValidateOrder(&order, u.policy); err != nil {
		return nil, err
	}

	order.ID = 0
	order.Status = model.ParseOrderStatus(string(order.Status))
	if order.Status == "" {
		order.Status = model.OrderStatusNew
	}
	// TIMESTAMPTZ keeps microseconds; the response must match a later read.
	order.OrderDate = u.now().UTC().Truncate(time.Microsecond)

	items := make([]model.OrderItem, len(order.Items))
	copy(items, order.Items)
	for i := range items {
		items[i].ID = 0
		items[i].OrderID = 0
	}
	order.Items = items
	order.RecalculateTotals()

	return u.orders.Create(ctx, order)
}

// FindByID returns the order with its items.
func (u *OrderUseCase) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// FindByUser returns all orders placed by the user.
func (u *OrderUseCase) FindByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// List returns one page of orders and the total number of orders.
func (u *OrderUseCase) List(ctx context.Context, req model.PageRequest) (*model.Page[model.Order], error) {
	req, err := u.paging.Normalize(req)
	if err != nil {
		return nil, err
	}

	orders, total, err := u.orders.List(ctx, req)
	if err != nil {
		return nil, err
	}

	return &model.Page[model.Order]{
		Content:       orders,
		TotalElements: total,
		Page:          req.Page,
		Size:          req.Size,
	}, nil
}

// UpdateStatus moves the order to status unless the policy forbids it.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	next := model.ParseOrderStatus(string(status))
	if err := u.policy.Check("", next); err != nil {
		return nil, err
	}

	return u.orders.UpdateStatus(ctx, id, next, func(current model.OrderStatus) error {
		return u.policy.Check(current, next)
	})
}

// Delete removes the order and its items.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}

// Count returns the number of stored orders.
func (u *OrderUseCase) Count(ctx context.Context) (int64, error) {
	return u.orders.Count(ctx)
}

// TotalRevenue returns the sum of all order totals at the currency scale.
// Orders without a price contribute zero.
func (u *OrderUseCase) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	sum, err := u.orders.SumTotalPrice(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return model.NarrowRevenue(sum), nil
}
