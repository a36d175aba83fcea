package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

// ProductGateway reaches the product service. Product payloads are opaque.
type ProductGateway interface {
	List(ctx context.Context, q model.PageQuery) (*dto.Page[json.RawMessage], error)
	Get(ctx context.Context, id int64) (json.RawMessage, error)
	Create(ctx context.Context, product json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, id int64, product json.RawMessage) error
	Delete(ctx context.Context, id int64) error
	UpdateStock(ctx context.Context, id, quantity int64) (json.RawMessage, error)
	Total(ctx context.Context) (int64, error)
}

// OrderGateway reaches the order service using the shared order schema.
type OrderGateway interface {
	List(ctx context.Context, q model.PageQuery) (*dto.Page[dto.Order], error)
	Get(ctx context.Context, id int64) (*dto.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]dto.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*dto.Order, error)
	Total(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}

// UserGateway reaches the user service. User payloads are opaque.
type UserGateway interface {
	List(ctx context.Context) (json.RawMessage, error)
	Get(ctx context.Context, id int64) (json.RawMessage, error)
	Delete(ctx context.Context, id int64) error
	Total(ctx context.Context) (int64, error)
}

// Dashboard groups the summary figures shown on the admin landing page.
type Dashboard struct {
	TotalOrders   int64
	TotalRevenue  decimal.Decimal
	TotalProducts int64
	TotalUsers    int64
}

// AdminUseCase forwards admin requests to the downstream services.
// It keeps no state and never retries; any downstream failure fails the call.
type AdminUseCase struct {
	products ProductGateway
	orders   OrderGateway
	users    UserGateway
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(products ProductGateway, orders OrderGateway, users UserGateway) *AdminUseCase {
	return &AdminUseCase{
		products: products,
		orders:   orders,
		users:    users,
	}
}

// Products returns a downstream product page with its total untouched.
// Page parameters are forwarded as supplied; the product service owns its limits.
func (u *AdminUseCase) Products(ctx context.Context, q model.PageQuery) (*dto.Page[json.RawMessage], error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return u.products.List(ctx, q)
}

func (u *AdminUseCase) Product(ctx context.Context, id int64) (json.RawMessage, error) {
	return u.products.Get(ctx, id)
}

func (u *AdminUseCase) CreateProduct(ctx context.Context, product json.RawMessage) (json.RawMessage, error) {
	if len(product) == 0 {
		return nil, fmt.Errorf("%w: product body is required", domainErrors.ErrValidation)
	}
	return u.products.Create(ctx, product)
}

// UpdateProduct replaces the product and returns its re-read representation.
func (u *AdminUseCase) UpdateProduct(ctx context.Context, id int64, product json.RawMessage) (json.RawMessage, error) {
	if len(product) == 0 {
		return nil, fmt.Errorf("%w: product body is required", domainErrors.ErrValidation)
	}
	if err := u.products.Update(ctx, id, product); err != nil {
		return nil, err
	}
	return u.products.Get(ctx, id)
}

func (u *AdminUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}

func (u *AdminUseCase) UpdateProductStock(ctx context.Context, id, quantity int64) (json.RawMessage, error) {
	return u.products.UpdateStock(ctx, id, quantity)
}

func (u *AdminUseCase) TotalProducts(ctx context.Context) (int64, error) {
	return u.products.Total(ctx)
}

// Orders returns a downstream order page with its total untouched.
func (u *AdminUseCase) Orders(ctx context.Context, q model.PageQuery) (*dto.Page[dto.Order], error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return u.orders.List(ctx, q)
}

func (u *AdminUseCase) Order(ctx context.Context, id int64) (*dto.Order, error) {
	return u.orders.Get(ctx, id)
}

func (u *AdminUseCase) OrdersByUser(ctx context.Context, userID int64) ([]dto.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// UpdateOrderStatus asks the order service to change the status and returns
// the representation it answers with.
func (u *AdminUseCase) UpdateOrderStatus(ctx context.Context, id int64, status string) (*dto.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, fmt.Errorf("%w: order status is required", domainErrors.ErrValidation)
	}
	return u.orders.UpdateStatus(ctx, id, status)
}

func (u *AdminUseCase) TotalOrders(ctx context.Context) (int64, error) {
	return u.orders.Total(ctx)
}

func (u *AdminUseCase) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return u.orders.TotalRevenue(ctx)
}

func (u *AdminUseCase) Users(ctx context.Context) (json.RawMessage, error) {
	return u.users.List(ctx)
}

func (u *AdminUseCase) User(ctx context.Context, id int64) (json.RawMessage, error) {
	return u.users.Get(ctx, id)
}

func (u *AdminUseCase) DeleteUser(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}

func (u *AdminUseCase) TotalUsers(ctx context.Context) (int64, error) {
	return u.users.Total(ctx)
}

// Dashboard fetches all summary figures concurrently. The first failure
// cancels the remaining calls and no partial dashboard is returned.
func (u *AdminUseCase) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := u.orders.Total(gctx)
		d.TotalOrders = total
		return err
	})
	g.Go(func() error {
		revenue, err := u.orders.TotalRevenue(gctx)
		d.TotalRevenue = revenue
		return err
	})
	g.Go(func() error {
		total, err := u.products.Total(gctx)
		d.TotalProducts = total
		return err
	})
	g.Go(func() error {
		total, err := u.users.Total(gctx)
		d.TotalUsers = total
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
