package app

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
	"github.com/amanshrivastava28/Sneako/internal/usecase"
)

// OrderServiceFacade exposes the order and payment use cases to the HTTP layer.
type OrderServiceFacade struct {
	orders   *usecase.OrderUseCase
	payments *usecase.PaymentUseCase
}

func NewOrderServiceFacade(orders *usecase.OrderUseCase, payments *usecase.PaymentUseCase) *OrderServiceFacade {
	return &OrderServiceFacade{orders: orders, payments: payments}
}

func (f *OrderServiceFacade) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	return f.orders.Create(ctx, order)
}

func (f *OrderServiceFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.FindByID(ctx, id)
}

func (f *OrderServiceFacade) OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.FindByUser(ctx, userID)
}

func (f *OrderServiceFacade) Orders(ctx context.Context, req model.PageRequest) (*model.Page[model.Order], error) {
	return f.orders.List(ctx, req)
}

func (f *OrderServiceFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *OrderServiceFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *OrderServiceFacade) TotalOrders(ctx context.Context) (int64, error) {
	return f.orders.Count(ctx)
}

func (f *OrderServiceFacade) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return f.orders.TotalRevenue(ctx)
}

func (f *OrderServiceFacade) RecordPayment(ctx context.Context, payment model.PaymentRecord) (*model.PaymentRecord, error) {
	return f.payments.Record(ctx, payment)
}

func (f *OrderServiceFacade) Payments(ctx context.Context, orderID int64) ([]model.PaymentRecord, error) {
	return f.payments.ListByOrder(ctx, orderID)
}

// AdminFacade exposes the admin aggregation use case to the HTTP layer.
type AdminFacade struct {
	admin *usecase.AdminUseCase
}

func NewAdminFacade(admin *usecase.AdminUseCase) *AdminFacade {
	return &AdminFacade{admin: admin}
}

func (f *AdminFacade) Products(ctx context.Context, q model.PageQuery) (*dto.Page[json.RawMessage], error) {
	return f.admin.Products(ctx, q)
}

func (f *AdminFacade) Product(ctx context.Context, id int64) (json.RawMessage, error) {
	return f.admin.Product(ctx, id)
}

func (f *AdminFacade) CreateProduct(ctx context.Context, product json.RawMessage) (json.RawMessage, error) {
	return f.admin.CreateProduct(ctx, product)
}

func (f *AdminFacade) UpdateProduct(ctx context.Context, id int64, product json.RawMessage) (json.RawMessage, error) {
	return f.admin.UpdateProduct(ctx, id, product)
}

func (f *AdminFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.admin.DeleteProduct(ctx, id)
}

func (f *AdminFacade) UpdateProductStock(ctx context.Context, id, quantity int64) (json.RawMessage, error) {
	return f.admin.UpdateProductStock(ctx, id, quantity)
}

func (f *AdminFacade) TotalProducts(ctx context.Context) (int64, error) {
	return f.admin.TotalProducts(ctx)
}

func (f *AdminFacade) Orders(ctx context.Context, q model.PageQuery) (*dto.Page[dto.Order], error) {
	return f.admin.Orders(ctx, q)
}

func (f *AdminFacade) Order(ctx context.Context, id int64) (*dto.Order, error) {
	return f.admin.Order(ctx, id)
}

func (f *AdminFacade) OrdersByUser(ctx context.Context, userID int64) ([]dto.Order, error) {
	return f.admin.OrdersByUser(ctx, userID)
}

func (f *AdminFacade) UpdateOrderStatus(ctx context.Context, id int64, status string) (*dto.Order, error) {
	return f.admin.UpdateOrderStatus(ctx, id, status)
}

func (f *AdminFacade) TotalOrders(ctx context.Context) (int64, error) {
	return f.admin.TotalOrders(ctx)
}

func (f *AdminFacade) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return f.admin.TotalRevenue(ctx)
}

func (f *AdminFacade) Users(ctx context.Context) (json.RawMessage, error) {
	return f.admin.Users(ctx)
}

func (f *AdminFacade) User(ctx context.Context, id int64) (json.RawMessage, error) {
	return f.admin.User(ctx, id)
}

func (f *AdminFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.admin.DeleteUser(ctx, id)
}

func (f *AdminFacade) TotalUsers(ctx context.Context) (int64, error) {
	return f.admin.TotalUsers(ctx)
}

// Dashboard converts the aggregated figures into their wire form.
func (f *AdminFacade) Dashboard(ctx context.Context) (*dto.Dashboard, error) {
	d, err := f.admin.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.Dashboard{
		TotalOrders:   d.TotalOrders,
		TotalRevenue:  dto.NewMoney(d.TotalRevenue),
		TotalProducts: d.TotalProducts,
		TotalUsers:    d.TotalUsers,
	}, nil
}
