// Command adminservice serves the admin aggregation API. It keeps no data of
// its own and relays every request to the product, order and user services.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/amanshrivastava28/Sneako/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run(ctx, fx.New(di.Admin()))
}
