package postgres

import (
	"context"
	"errors"
	"log/slog"

	"go.uber.org/fx"

	"github.com/amanshrivastava28/Sneako/internal/config"
	"github.com/amanshrivastava28/Sneako/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(fx.Annotate(newStorage, fx.As(fx.Self()), fx.As(new(repository.Factory)))),
	fx.Provide(
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
		func(f repository.Factory) repository.PaymentRepository { return f.Payments() },
	),
	fx.Invoke(registerLifecycle),
)

var errDatabaseURIRequired = errors.New("database uri is required")

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	if p.Config.DatabaseURI == "" {
		return nil, errDatabaseURIRequired
	}
	return New(p.Ctx, p.Config.DatabaseURI, p.Config.DBMaxConns, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
