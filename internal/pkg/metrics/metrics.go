// Package metrics exposes Prometheus collectors on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sneako"

// Downstream call outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeStatus       = "bad_status"
	OutcomeNetwork      = "network_error"
	OutcomeTimeout      = "timeout"
	OutcomeDecode       = "decode_error"
	OutcomeRequestBuild = "request_error"
)

// Metrics holds the collectors of one service.
type Metrics struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	downstream *prometheus.CounterVec
}

// New registers the service collectors on a fresh registry.
func New(service string) *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method", "route"})
	downstream := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "downstream_calls_total",
		Help:      "Calls to downstream services by outcome.",
	}, []string{"service", "outcome"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		requests,
		latency,
		downstream,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:   registry,
		requests:   requests,
		latency:    latency,
		downstream: downstream,
	}
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(float64(elapsed) / float64(time.Millisecond))
}

// ObserveDownstream records one downstream call.
func (m *Metrics) ObserveDownstream(service, outcome string) {
	if m == nil {
		return
	}
	m.downstream.WithLabelValues(service, outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
