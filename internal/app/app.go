package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"go.uber.org/fx"

	"github.com/amanshrivastava28/Sneako/internal/config"
	"github.com/amanshrivastava28/Sneako/internal/pkg/metrics"
	"github.com/amanshrivastava28/Sneako/internal/pkg/requestid"
	"github.com/amanshrivastava28/Sneako/internal/server/http/handlers"
	"github.com/amanshrivastava28/Sneako/internal/storage/postgres"
)

const readHeaderTimeout = 10 * time.Second

// OrderServiceModule wires the order service facade, HTTP server and lifecycle hooks.
var OrderServiceModule = fx.Options(
	fx.Provide(
		fx.Annotate(NewOrderServiceFacade, fx.As(new(handlers.OrderServiceFacade))),
		fx.Annotate(storageHealth, fx.As(new(handlers.HealthChecker))),
		func() *metrics.Metrics { return metrics.New("order_service") },
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

// AdminModule wires the admin facade, HTTP server and lifecycle hooks.
var AdminModule = fx.Options(
	fx.Provide(
		fx.Annotate(NewAdminFacade, fx.As(new(handlers.AdminFacade))),
		func() *metrics.Metrics { return metrics.New("admin_service") },
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

// storageHealth exposes the store ping as the service health check.
func storageHealth(s *postgres.Storage) *postgres.Storage {
	return s
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

// newHTTPServer wraps the router with CORS when allowed origins are configured.
func newHTTPServer(p serverParams) *http.Server {
	var handler http.Handler = p.Router
	if len(p.Config.CORSAllowedOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins: p.Config.CORSAllowedOrigins,
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut,
				http.MethodPatch, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", requestid.Header},
			ExposedHeaders: []string{requestid.Header},
			MaxAge:         300,
		}).Handler(p.Router)
	}
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting http server", slog.String("addr", p.Server.Addr))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("http server stopped")
			return nil
		},
	})
}
