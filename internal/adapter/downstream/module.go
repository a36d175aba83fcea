package downstream

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/amanshrivastava28/Sneako/internal/config"
	"github.com/amanshrivastava28/Sneako/internal/pkg/metrics"
	"github.com/amanshrivastava28/Sneako/internal/usecase"
)

// Module exposes the downstream clients as admin gateways.
var Module = fx.Provide(
	fx.Annotate(newProductClient, fx.As(new(usecase.ProductGateway))),
	fx.Annotate(newOrderClient, fx.As(new(usecase.OrderGateway))),
	fx.Annotate(newUserClient, fx.As(new(usecase.UserGateway))),
)

type clientParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

func newProductClient(p clientParams) (*ProductClient, error) {
	c, err := NewClient("product", p.Config.Downstreams.Product, p.Logger, p.Metrics)
	if err != nil {
		return nil, err
	}
	return NewProductClient(c), nil
}

func newOrderClient(p clientParams) (*OrderClient, error) {
	c, err := NewClient("order", p.Config.Downstreams.Order, p.Logger, p.Metrics)
	if err != nil {
		return nil, err
	}
	return NewOrderClient(c), nil
}

func newUserClient(p clientParams) (*UserClient, error) {
	c, err := NewClient("user", p.Config.Downstreams.User, p.Logger, p.Metrics)
	if err != nil {
		return nil, err
	}
	return NewUserClient(c), nil
}
