package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequest(t *testing.T) {
	m := New("order_service")
	m.ObserveRequest(http.MethodGet, "/api/v1/order-service/order/:id", http.StatusOK, 15*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/order-service/order/:id", http.StatusOK, 20*time.Millisecond)

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/v1/order-service/order/:id", "200"))
	if got != 2 {
		t.Fatalf("expected 2 requests, got %v", got)
	}
}

func TestObserveDownstream(t *testing.T) {
	m := New("admin_service")
	m.ObserveDownstream("order", OutcomeTimeout)

	if got := testutil.ToFloat64(m.downstream.WithLabelValues("order", OutcomeTimeout)); got != 1 {
		t.Fatalf("expected 1 timeout, got %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.ObserveDownstream("order", OutcomeOK)
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New("order_service")
	m.ObserveDownstream("product", OutcomeOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "sneako_order_service_downstream_calls_total") {
		t.Fatalf("metric missing from output: %s", body)
	}
}
