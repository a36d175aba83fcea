package test

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

// ProductGatewayStub answers product calls through overrides.
type ProductGatewayStub struct {
	ListFn        func(context.Context, model.PageQuery) (*dto.Page[json.RawMessage], error)
	GetFn         func(context.Context, int64) (json.RawMessage, error)
	CreateFn      func(context.Context, json.RawMessage) (json.RawMessage, error)
	UpdateFn      func(context.Context, int64, json.RawMessage) error
	DeleteFn      func(context.Context, int64) error
	UpdateStockFn func(context.Context, int64, int64) (json.RawMessage, error)
	TotalFn       func(context.Context) (int64, error)
}

func (s ProductGatewayStub) List(ctx context.Context, q model.PageQuery) (*dto.Page[json.RawMessage], error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, q)
	}
	req := q.Request()
	return &dto.Page[json.RawMessage]{Content: []json.RawMessage{}, Size: req.Size, Number: req.Page}, nil
}

func (s ProductGatewayStub) Get(ctx context.Context, id int64) (json.RawMessage, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return json.RawMessage(`{}`), nil
}

func (s ProductGatewayStub) Create(ctx context.Context, product json.RawMessage) (json.RawMessage, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	return product, nil
}

func (s ProductGatewayStub) Update(ctx context.Context, id int64, product json.RawMessage) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, product)
	}
	return nil
}

func (s ProductGatewayStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s ProductGatewayStub) UpdateStock(ctx context.Context, id, quantity int64) (json.RawMessage, error) {
	if s.UpdateStockFn != nil {
		return s.UpdateStockFn(ctx, id, quantity)
	}
	return json.RawMessage(`{}`), nil
}

func (s ProductGatewayStub) Total(ctx context.Context) (int64, error) {
	if s.TotalFn != nil {
		return s.TotalFn(ctx)
	}
	return 0, nil
}

// OrderGatewayStub answers order service calls through overrides.
type OrderGatewayStub struct {
	ListFn         func(context.Context, model.PageQuery) (*dto.Page[dto.Order], error)
	GetFn          func(context.Context, int64) (*dto.Order, error)
	ListByUserFn   func(context.Context, int64) ([]dto.Order, error)
	UpdateStatusFn func(context.Context, int64, string) (*dto.Order, error)
	TotalFn        func(context.Context) (int64, error)
	RevenueFn      func(context.Context) (decimal.Decimal, error)
}

func (s OrderGatewayStub) List(ctx context.Context, q model.PageQuery) (*dto.Page[dto.Order], error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, q)
	}
	req := q.Request()
	return &dto.Page[dto.Order]{Content: []dto.Order{}, Size: req.Size, Number: req.Page}, nil
}

func (s OrderGatewayStub) Get(ctx context.Context, id int64) (*dto.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &dto.Order{OrderID: id}, nil
}

func (s OrderGatewayStub) ListByUser(ctx context.Context, userID int64) ([]dto.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return []dto.Order{}, nil
}

func (s OrderGatewayStub) UpdateStatus(ctx context.Context, id int64, status string) (*dto.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &dto.Order{OrderID: id, OrderStatus: status}, nil
}

func (s OrderGatewayStub) Total(ctx context.Context) (int64, error) {
	if s.TotalFn != nil {
		return s.TotalFn(ctx)
	}
	return 0, nil
}

func (s OrderGatewayStub) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	if s.RevenueFn != nil {
		return s.RevenueFn(ctx)
	}
	return decimal.Zero, nil
}

// UserGatewayStub answers user service calls through overrides.
type UserGatewayStub struct {
	ListFn   func(context.Context) (json.RawMessage, error)
	GetFn    func(context.Context, int64) (json.RawMessage, error)
	DeleteFn func(context.Context, int64) error
	TotalFn  func(context.Context) (int64, error)
}

func (s UserGatewayStub) List(ctx context.Context) (json.RawMessage, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return json.RawMessage(`[]`), nil
}

func (s UserGatewayStub) Get(ctx context.Context, id int64) (json.RawMessage, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return json.RawMessage(`{}`), nil
}

func (s UserGatewayStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s UserGatewayStub) Total(ctx context.Context) (int64, error) {
	if s.TotalFn != nil {
		return s.TotalFn(ctx)
	}
	return 0, nil
}
