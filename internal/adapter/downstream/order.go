package downstream

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

// OrderClient calls the order service using the shared order schema.
type OrderClient struct {
	c *Client
}

func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{c: c}
}

func (o *OrderClient) List(ctx context.Context, req model.PageQuery) (*dto.Page[dto.Order], error) {
	return fetchPage[dto.Order](ctx, o.c, req)
}

func (o *OrderClient) Get(ctx context.Context, orderID int64) (*dto.Order, error) {
	var out dto.Order
	if err := o.c.do(ctx, call{method: http.MethodGet, path: []string{id(orderID)}, entity: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *OrderClient) ListByUser(ctx context.Context, userID int64) ([]dto.Order, error) {
	out := make([]dto.Order, 0)
	if err := o.c.do(ctx, call{method: http.MethodGet, path: []string{"user", id(userID)}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus sends the new status and returns the order as the service answers it.
func (o *OrderClient) UpdateStatus(ctx context.Context, orderID int64, status string) (*dto.Order, error) {
	var out dto.Order
	body := dto.StatusUpdate{OrderStatus: status}
	if err := o.c.do(ctx, call{method: http.MethodPut, path: []string{id(orderID)}, body: body, entity: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *OrderClient) Total(ctx context.Context) (int64, error) {
	var total int64
	if err := o.c.do(ctx, call{method: http.MethodGet, path: []string{"totalorders"}}, &total); err != nil {
		return 0, err
	}
	return total, nil
}

// TotalRevenue reads the exact revenue from the summary endpoint.
func (o *OrderClient) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue dto.Money
	if err := o.c.do(ctx, call{method: http.MethodGet, path: []string{"totalrevenue"}}, &revenue); err != nil {
		return decimal.Zero, err
	}
	return revenue.Decimal, nil
}
