package di

import (
	"go.uber.org/fx"

	"github.com/amanshrivastava28/Sneako/internal/adapter/downstream"
	"github.com/amanshrivastava28/Sneako/internal/app"
	"github.com/amanshrivastava28/Sneako/internal/config"
	"github.com/amanshrivastava28/Sneako/internal/logger"
	"github.com/amanshrivastava28/Sneako/internal/pkg/tracing"
	"github.com/amanshrivastava28/Sneako/internal/server/http/router"
	"github.com/amanshrivastava28/Sneako/internal/storage/postgres"
	"github.com/amanshrivastava28/Sneako/internal/usecase"
)

// OrderService composes the order service graph. opts are appended last so
// tests can replace any provided value.
func OrderService(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		tracing.Module("order-service"),
		postgres.Module,
		usecase.OrderModule,
		router.OrderServiceModule,
		app.OrderServiceModule,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// Admin composes the admin aggregation graph.
func Admin(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		tracing.Module("admin-service"),
		downstream.Module,
		usecase.AdminModule,
		router.AdminModule,
		app.AdminModule,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
