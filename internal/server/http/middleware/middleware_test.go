package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/amanshrivastava28/Sneako/internal/pkg/metrics"
	"github.com/amanshrivastava28/Sneako/internal/pkg/requestid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	var fromCtx string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		fromCtx, _ = requestid.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := resp.Header().Get(requestid.Header)
	if generated == "" || generated != fromCtx {
		t.Fatalf("expected generated id in header and context, got %q and %q", generated, fromCtx)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestid.Header, "abc-123")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if got := resp.Header().Get(requestid.Header); got != "abc-123" || fromCtx != "abc-123" {
		t.Fatalf("expected incoming id to be reused, got %q and %q", got, fromCtx)
	}
}

func TestTracingStartsServerSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prevProvider, prevPropagator := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prevProvider)
		otel.SetTextMapPropagator(prevPropagator)
	})

	router := gin.New()
	router.Use(Tracing("test"))
	router.GET("/order/:id", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	req := httptest.NewRequest(http.MethodGet, "/order/7", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	router.ServeHTTP(httptest.NewRecorder(), req)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != "GET /order/:id" {
		t.Fatalf("unexpected span name %q", span.Name())
	}
	if span.SpanContext().TraceID().String() != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("expected incoming trace to continue, got %s", span.SpanContext().TraceID())
	}
	if span.Status().Code != codes.Error {
		t.Fatalf("expected error status for 500, got %v", span.Status())
	}
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	m := metrics.New("test_service")
	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/order/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/order/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/order/2", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	resp := httptest.NewRecorder()
	m.Handler().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := resp.Body.String()
	if !strings.Contains(body, `route="/order/:id"`) {
		t.Fatalf("expected route template label: %s", body)
	}
	if !strings.Contains(body, `route="unmatched"`) {
		t.Fatalf("expected unmatched label: %s", body)
	}
	if strings.Contains(body, `route="/order/1"`) {
		t.Fatalf("raw path must not be used as label: %s", body)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader(buf.Bytes())))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader([]byte("plain"))))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for broken gzip, got %d", resp.Code)
	}
}

func TestRequestLoggerRecordsServerErrors(t *testing.T) {
	var sawError, sawCause bool
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelError {
			sawError = true
		}
		if a.Key == "error" && a.Value.String() == "db down" {
			sawCause = true
		}
		return a
	}})

	router := gin.New()
	router.Use(RequestLogger(slog.New(handler)))
	router.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("db down"))
		c.Status(http.StatusInternalServerError)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !sawError || !sawCause {
		t.Fatalf("expected error level entry with cause, got level=%v cause=%v", sawError, sawCause)
	}
}

func TestRequestLogger(t *testing.T) {
	var logged, sawRequestID bool
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelInfo {
			logged = true
		}
		if a.Key == "request_id" && a.Value.String() == "req-9" {
			sawRequestID = true
		}
		return a
	}})
	logger := slog.New(handler)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestid.Header, "req-9")
	router.ServeHTTP(httptest.NewRecorder(), req)
	if !logged {
		t.Fatalf("expected request to be logged")
	}
	if !sawRequestID {
		t.Fatalf("expected request id to be logged")
	}
}
