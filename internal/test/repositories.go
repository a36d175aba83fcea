package test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/domain/repository"
)

// OrderRepositoryStub keeps orders in memory. Fn fields override behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListFn         func(context.Context, model.PageRequest) ([]model.Order, int64, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, repository.StatusGuard) (*model.Order, error)
	SumFn          func(context.Context) (decimal.Decimal, error)
	Err            error

	mu     sync.Mutex
	orders map[int64]model.Order
	nextID int64
	itemID int64
}

// NewOrderRepositoryStub constructs stub repository seeded with orders.
func NewOrderRepositoryStub(seed ...model.Order) *OrderRepositoryStub {
	s := &OrderRepositoryStub{orders: make(map[int64]model.Order)}
	for _, o := range seed {
		s.orders[o.ID] = o
		if o.ID > s.nextID {
			s.nextID = o.ID
		}
	}
	return s
}

// Create assigns identifiers and stores the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orders == nil {
		s.orders = make(map[int64]model.Order)
	}
	s.nextID++
	order.ID = s.nextID
	items := make([]model.OrderItem, len(order.Items))
	for i, item := range order.Items {
		s.itemID++
		item.ID = s.itemID
		item.OrderID = order.ID
		items[i] = item
	}
	order.Items = items
	s.orders[order.ID] = order
	return cloneOrder(order), nil
}

// GetByID returns stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return cloneOrder(order), nil
}

// ListByUser returns the user's orders by id.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Order, 0)
	for _, o := range s.sorted() {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// List pages through orders by id.
func (s *OrderRepositoryStub) List(ctx context.Context, req model.PageRequest) ([]model.Order, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, req)
	}
	if s.Err != nil {
		return nil, 0, s.Err
	}
	all := s.sorted()
	total := int64(len(all))
	start := req.Offset()
	if start >= uint64(len(all)) {
		return []model.Order{}, total, nil
	}
	end := start + uint64(req.Size)
	if end > uint64(len(all)) {
		end = uint64(len(all))
	}
	return all[start:end], total, nil
}

// UpdateStatus applies guard to the stored status before changing it.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, next model.OrderStatus, guard repository.StatusGuard) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, next, guard)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if guard != nil {
		if err := guard(order.Status); err != nil {
			return nil, err
		}
	}
	order.Status = next
	s.orders[id] = order
	return cloneOrder(order), nil
}

// Delete removes stored order.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.orders, id)
	return nil
}

// Count returns number of stored orders.
func (s *OrderRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.orders)), nil
}

// SumTotalPrice adds stored totals exactly.
func (s *OrderRepositoryStub) SumTotalPrice(ctx context.Context) (decimal.Decimal, error) {
	if s.SumFn != nil {
		return s.SumFn(ctx)
	}
	if s.Err != nil {
		return decimal.Zero, s.Err
	}
	totals := make([]decimal.Decimal, 0)
	for _, o := range s.sorted() {
		totals = append(totals, o.TotalPrice)
	}
	return model.SumAmounts(totals...), nil
}

func (s *OrderRepositoryStub) sorted() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		all = append(all, *cloneOrder(o))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func cloneOrder(o model.Order) *model.Order {
	o.Items = append([]model.OrderItem(nil), o.Items...)
	return &o
}

// PaymentRepositoryStub appends payments in memory.
type PaymentRepositoryStub struct {
	CreateFn func(context.Context, model.PaymentRecord) (*model.PaymentRecord, error)
	Err      error
	Payments []model.PaymentRecord
}

// Create appends the payment and assigns its identifier.
func (s *PaymentRepositoryStub) Create(ctx context.Context, payment model.PaymentRecord) (*model.PaymentRecord, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, payment)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	payment.ID = int64(len(s.Payments) + 1)
	s.Payments = append(s.Payments, payment)
	return &payment, nil
}

// ListByOrder returns payments of the order in insertion order.
func (s *PaymentRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.PaymentRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.PaymentRecord, 0)
	for _, p := range s.Payments {
		if p.OrderID == orderID {
			result = append(result, p)
		}
	}
	return result, nil
}
