package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	testhelpers "github.com/amanshrivastava28/Sneako/internal/test"
	"github.com/amanshrivastava28/Sneako/internal/usecase"
)

func newOrderFacade() (*OrderServiceFacade, *testhelpers.OrderRepositoryStub, *testhelpers.PaymentRepositoryStub) {
	orders := testhelpers.NewOrderRepositoryStub()
	payments := &testhelpers.PaymentRepositoryStub{}
	paging := model.Paging{DefaultSize: 10, MaxSize: 100}
	facade := NewOrderServiceFacade(
		usecase.NewOrderUseCase(orders, model.DefaultTransitionPolicy(), paging),
		usecase.NewPaymentUseCase(payments),
	)
	return facade, orders, payments
}

func TestOrderServiceFacadeLifecycle(t *testing.T) {
	facade, _, _ := newOrderFacade()
	ctx := context.Background()

	created, err := facade.CreateOrder(ctx, model.Order{
		UserID: 3,
		Items:  []model.OrderItem{{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("4.25")}},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.Status != model.OrderStatusNew || !created.TotalPrice.Equal(decimal.RequireFromString("8.5")) {
		t.Fatalf("unexpected created order %+v", created)
	}

	got, err := facade.Order(ctx, created.ID)
	if err != nil || got.ID != created.ID {
		t.Fatalf("unexpected order %+v err=%v", got, err)
	}

	byUser, err := facade.OrdersByUser(ctx, 3)
	if err != nil || len(byUser) != 1 {
		t.Fatalf("unexpected orders by user %+v err=%v", byUser, err)
	}

	page, err := facade.Orders(ctx, model.PageRequest{})
	if err != nil || page.TotalElements != 1 || page.Size != 10 {
		t.Fatalf("unexpected page %+v err=%v", page, err)
	}

	updated, err := facade.UpdateOrderStatus(ctx, created.ID, model.OrderStatusDelivered)
	if err != nil || updated.Status != model.OrderStatusDelivered {
		t.Fatalf("unexpected update %+v err=%v", updated, err)
	}
	if _, err := facade.UpdateOrderStatus(ctx, created.ID, model.OrderStatusPending); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}

	total, err := facade.TotalOrders(ctx)
	if err != nil || total != 1 {
		t.Fatalf("unexpected total %d err=%v", total, err)
	}
	revenue, err := facade.TotalRevenue(ctx)
	if err != nil || !revenue.Equal(decimal.RequireFromString("8.5")) {
		t.Fatalf("unexpected revenue %s err=%v", revenue, err)
	}

	if err := facade.DeleteOrder(ctx, created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := facade.Order(ctx, created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestOrderServiceFacadePayments(t *testing.T) {
	facade, _, payments := newOrderFacade()
	ctx := context.Background()

	recorded, err := facade.RecordPayment(ctx, model.PaymentRecord{OrderID: 4, PaymentMethod: "card"})
	if err != nil {
		t.Fatalf("record returned error: %v", err)
	}
	if recorded.TransactionID == "" {
		t.Fatal("expected generated transaction id")
	}
	if len(payments.Payments) != 1 {
		t.Fatalf("expected payment to be stored, got %d", len(payments.Payments))
	}

	list, err := facade.Payments(ctx, 4)
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected payments %+v err=%v", list, err)
	}

	if _, err := facade.RecordPayment(ctx, model.PaymentRecord{OrderID: 4}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAdminFacadeDashboard(t *testing.T) {
	admin := usecase.NewAdminUseCase(
		testhelpers.ProductGatewayStub{TotalFn: func(context.Context) (int64, error) { return 12, nil }},
		testhelpers.OrderGatewayStub{
			TotalFn:   func(context.Context) (int64, error) { return 2, nil },
			RevenueFn: func(context.Context) (decimal.Decimal, error) { return decimal.RequireFromString("15.75"), nil },
		},
		testhelpers.UserGatewayStub{TotalFn: func(context.Context) (int64, error) { return 5, nil }},
	)
	facade := NewAdminFacade(admin)

	dashboard, err := facade.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard returned error: %v", err)
	}
	if dashboard.TotalOrders != 2 || dashboard.TotalProducts != 12 || dashboard.TotalUsers != 5 {
		t.Fatalf("unexpected dashboard %+v", dashboard)
	}
	if dashboard.TotalRevenue.String() != "15.75" {
		t.Fatalf("expected exact revenue, got %s", dashboard.TotalRevenue)
	}
}

func TestAdminFacadeSurfacesUpstreamErrors(t *testing.T) {
	timeout := &domainErrors.UpstreamError{Service: "user", Timeout: true, Err: context.DeadlineExceeded}
	admin := usecase.NewAdminUseCase(
		testhelpers.ProductGatewayStub{},
		testhelpers.OrderGatewayStub{},
		testhelpers.UserGatewayStub{TotalFn: func(context.Context) (int64, error) { return 0, timeout }},
	)
	facade := NewAdminFacade(admin)

	if _, err := facade.Dashboard(context.Background()); !errors.Is(err, domainErrors.ErrUpstreamTimeout) {
		t.Fatalf("expected upstream timeout, got %v", err)
	}
	if _, err := facade.TotalUsers(context.Background()); !errors.Is(err, domainErrors.ErrUpstreamTimeout) {
		t.Fatalf("expected upstream timeout, got %v", err)
	}
}
