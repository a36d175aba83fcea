// Package requestid carries the request identifier through a context.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header that carries the identifier between services.
const Header = "X-Request-ID"

type ctxKey struct{}

// New returns a fresh identifier.
func New() string {
	return uuid.NewString()
}

// WithID stores id in ctx.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identifier stored in ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
