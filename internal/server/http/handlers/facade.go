package handlers

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, order model.Order) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	Orders(ctx context.Context, req model.PageRequest) (*model.Page[model.Order], error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	TotalOrders(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}

// PaymentFacade records and lists payments.
type PaymentFacade interface {
	RecordPayment(ctx context.Context, payment model.PaymentRecord) (*model.PaymentRecord, error)
	Payments(ctx context.Context, orderID int64) ([]model.PaymentRecord, error)
}

// OrderServiceFacade aggregates the operations of the order service.
type OrderServiceFacade interface {
	OrderFacade
	PaymentFacade
}

// AdminFacade forwards admin requests to the downstream services.
type AdminFacade interface {
	Products(ctx context.Context, q model.PageQuery) (*dto.Page[json.RawMessage], error)
	Product(ctx context.Context, id int64) (json.RawMessage, error)
	CreateProduct(ctx context.Context, product json.RawMessage) (json.RawMessage, error)
	UpdateProduct(ctx context.Context, id int64, product json.RawMessage) (json.RawMessage, error)
	DeleteProduct(ctx context.Context, id int64) error
	UpdateProductStock(ctx context.Context, id, quantity int64) (json.RawMessage, error)
	TotalProducts(ctx context.Context) (int64, error)

	Orders(ctx context.Context, q model.PageQuery) (*dto.Page[dto.Order], error)
	Order(ctx context.Context, id int64) (*dto.Order, error)
	OrdersByUser(ctx context.Context, userID int64) ([]dto.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*dto.Order, error)
	TotalOrders(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)

	Users(ctx context.Context) (json.RawMessage, error)
	User(ctx context.Context, id int64) (json.RawMessage, error)
	DeleteUser(ctx context.Context, id int64) error
	TotalUsers(ctx context.Context) (int64, error)

	Dashboard(ctx context.Context) (*dto.Dashboard, error)
}

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
