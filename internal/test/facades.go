package test

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

// OrderServiceFacadeStub provides controllable behaviour for order and payment endpoints.
type OrderServiceFacadeStub struct {
	CreateFn       func(context.Context, model.Order) (*model.Order, error)
	OrderFn        func(context.Context, int64) (*model.Order, error)
	ByUserFn       func(context.Context, int64) ([]model.Order, error)
	OrdersFn       func(context.Context, model.PageRequest) (*model.Page[model.Order], error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	DeleteFn       func(context.Context, int64) error
	TotalFn        func(context.Context) (int64, error)
	RevenueFn      func(context.Context) (decimal.Decimal, error)
	RecordFn       func(context.Context, model.PaymentRecord) (*model.PaymentRecord, error)
	PaymentsFn     func(context.Context, int64) ([]model.PaymentRecord, error)
}

// CreateOrder echoes the order with an identifier and NEW status.
func (s OrderServiceFacadeStub) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	order.ID = 1
	order.Status = model.OrderStatusNew
	order.RecalculateTotals()
	return &order, nil
}

func (s OrderServiceFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s OrderServiceFacadeStub) OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ByUserFn != nil {
		return s.ByUserFn(ctx, userID)
	}
	return []model.Order{}, nil
}

func (s OrderServiceFacadeStub) Orders(ctx context.Context, req model.PageRequest) (*model.Page[model.Order], error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, req)
	}
	return &model.Page[model.Order]{Content: []model.Order{}, Page: req.Page, Size: req.Size}, nil
}

func (s OrderServiceFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

func (s OrderServiceFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s OrderServiceFacadeStub) TotalOrders(ctx context.Context) (int64, error) {
	if s.TotalFn != nil {
		return s.TotalFn(ctx)
	}
	return 0, nil
}

func (s OrderServiceFacadeStub) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	if s.RevenueFn != nil {
		return s.RevenueFn(ctx)
	}
	return decimal.Zero, nil
}

// RecordPayment echoes the payment with generated fields filled in.
func (s OrderServiceFacadeStub) RecordPayment(ctx context.Context, payment model.PaymentRecord) (*model.PaymentRecord, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, payment)
	}
	payment.ID = 1
	if payment.TransactionID == "" {
		payment.TransactionID = "tx-1"
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Unix(0, 0).UTC()
	}
	return &payment, nil
}

func (s OrderServiceFacadeStub) Payments(ctx context.Context, orderID int64) ([]model.PaymentRecord, error) {
	if s.PaymentsFn != nil {
		return s.PaymentsFn(ctx, orderID)
	}
	return []model.PaymentRecord{}, nil
}

// AdminFacadeStub simulates the admin aggregation layer. Unset functions
// answer with empty values.
type AdminFacadeStub struct {
	ProductsFn      func(context.Context, model.PageQuery) (*dto.Page[json.RawMessage], error)
	ProductFn       func(context.Context, int64) (json.RawMessage, error)
	CreateProductFn func(context.Context, json.RawMessage) (json.RawMessage, error)
	UpdateProductFn func(context.Context, int64, json.RawMessage) (json.RawMessage, error)
	DeleteProductFn func(context.Context, int64) error
	StockFn         func(context.Context, int64, int64) (json.RawMessage, error)
	OrdersFn        func(context.Context, model.PageQuery) (*dto.Page[dto.Order], error)
	OrderFn         func(context.Context, int64) (*dto.Order, error)
	OrdersByUserFn  func(context.Context, int64) ([]dto.Order, error)
	UpdateStatusFn  func(context.Context, int64, string) (*dto.Order, error)
	UsersFn         func(context.Context) (json.RawMessage, error)
	UserFn          func(context.Context, int64) (json.RawMessage, error)
	DeleteUserFn    func(context.Context, int64) error
	TotalsFn        func(context.Context, string) (int64, error)
	RevenueFn       func(context.Context) (decimal.Decimal, error)
	DashboardFn     func(context.Context) (*dto.Dashboard, error)
}

func (s AdminFacadeStub) Products(ctx context.Context, q model.PageQuery) (*dto.Page[json.RawMessage], error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, q)
	}
	req := q.Request()
	return &dto.Page[json.RawMessage]{Content: []json.RawMessage{}, Size: req.Size, Number: req.Page}, nil
}

func (s AdminFacadeStub) Product(ctx context.Context, id int64) (json.RawMessage, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return json.RawMessage(`{}`), nil
}

func (s AdminFacadeStub) CreateProduct(ctx context.Context, product json.RawMessage) (json.RawMessage, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	return product, nil
}

func (s AdminFacadeStub) UpdateProduct(ctx context.Context, id int64, product json.RawMessage) (json.RawMessage, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, product)
	}
	return product, nil
}

func (s AdminFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

func (s AdminFacadeStub) UpdateProductStock(ctx context.Context, id, quantity int64) (json.RawMessage, error) {
	if s.StockFn != nil {
		return s.StockFn(ctx, id, quantity)
	}
	return json.RawMessage(`{}`), nil
}

func (s AdminFacadeStub) TotalProducts(ctx context.Context) (int64, error) {
	return s.total(ctx, "products")
}

func (s AdminFacadeStub) Orders(ctx context.Context, q model.PageQuery) (*dto.Page[dto.Order], error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, q)
	}
	req := q.Request()
	return &dto.Page[dto.Order]{Content: []dto.Order{}, Size: req.Size, Number: req.Page}, nil
}

func (s AdminFacadeStub) Order(ctx context.Context, id int64) (*dto.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &dto.Order{OrderID: id}, nil
}

func (s AdminFacadeStub) OrdersByUser(ctx context.Context, userID int64) ([]dto.Order, error) {
	if s.OrdersByUserFn != nil {
		return s.OrdersByUserFn(ctx, userID)
	}
	return []dto.Order{}, nil
}

func (s AdminFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status string) (*dto.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &dto.Order{OrderID: id, OrderStatus: status}, nil
}

func (s AdminFacadeStub) TotalOrders(ctx context.Context) (int64, error) {
	return s.total(ctx, "orders")
}

func (s AdminFacadeStub) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	if s.RevenueFn != nil {
		return s.RevenueFn(ctx)
	}
	return decimal.Zero, nil
}

func (s AdminFacadeStub) Users(ctx context.Context) (json.RawMessage, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return json.RawMessage(`[]`), nil
}

func (s AdminFacadeStub) User(ctx context.Context, id int64) (json.RawMessage, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return json.RawMessage(`{}`), nil
}

func (s AdminFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

func (s AdminFacadeStub) TotalUsers(ctx context.Context) (int64, error) {
	return s.total(ctx, "users")
}

func (s AdminFacadeStub) Dashboard(ctx context.Context) (*dto.Dashboard, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	return &dto.Dashboard{}, nil
}

func (s AdminFacadeStub) total(ctx context.Context, what string) (int64, error) {
	if s.TotalsFn != nil {
		return s.TotalsFn(ctx, what)
	}
	return 0, nil
}

// HealthCheckerStub reports the configured error.
type HealthCheckerStub struct {
	Err error
}

func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
