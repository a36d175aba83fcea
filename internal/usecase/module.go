package usecase

import (
	"go.uber.org/fx"

	"github.com/amanshrivastava28/Sneako/internal/config"
	"github.com/amanshrivastava28/Sneako/internal/domain/model"
)

// OrderModule provides the order service use cases to the fx container.
var OrderModule = fx.Provide(
	NewTransitionPolicy,
	NewPaging,
	NewOrderUseCase,
	NewPaymentUseCase,
)

// AdminModule provides the admin aggregation use case to the fx container.
var AdminModule = fx.Provide(
	NewAdminUseCase,
)

// NewTransitionPolicy builds the status policy from configuration.
func NewTransitionPolicy(cfg *config.Config) *model.TransitionPolicy {
	statuses := cfg.OrderStatuses
	if len(statuses.Extra) == 0 && len(statuses.Terminal) == 0 && len(statuses.Transitions) == 0 {
		return model.DefaultTransitionPolicy()
	}

	successors := make(map[model.OrderStatus][]model.OrderStatus, len(statuses.Transitions))
	for from, next := range statuses.Transitions {
		successors[model.OrderStatus(from)] = toStatuses(next)
	}
	return model.NewTransitionPolicy(toStatuses(statuses.Extra), toStatuses(statuses.Terminal), successors)
}

// NewPaging reads page size limits from configuration.
func NewPaging(cfg *config.Config) model.Paging {
	return model.Paging{DefaultSize: cfg.PageSizeDefault, MaxSize: cfg.PageSizeMax}
}

func toStatuses(values []string) []model.OrderStatus {
	out := make([]model.OrderStatus, 0, len(values))
	for _, v := range values {
		out = append(out, model.ParseOrderStatus(v))
	}
	return out
}
