// Package tracing installs the OpenTelemetry tracer provider and propagators.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.uber.org/fx"
)

// Controller owns the process tracer provider.
type Controller struct {
	provider *sdktrace.TracerProvider
}

// New creates a tracer provider for service and installs it globally together
// with W3C trace context and baggage propagation.
func New(service string, opts ...sdktrace.TracerProviderOption) *Controller {
	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(service),
		)),
	}, opts...)
	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Controller{provider: tp}
}

// Shutdown flushes and stops the provider.
func (c *Controller) Shutdown(ctx context.Context) error {
	return c.provider.Shutdown(ctx)
}

// Module installs tracing for service and shuts it down with the app.
func Module(service string) fx.Option {
	return fx.Invoke(func(lc fx.Lifecycle) {
		c := New(service)
		lc.Append(fx.Hook{OnStop: c.Shutdown})
	})
}
