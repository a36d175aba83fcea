// Package downstream implements HTTP clients for the product, order and user services.
package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/amanshrivastava28/Sneako/internal/config"
	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
	"github.com/amanshrivastava28/Sneako/internal/pkg/metrics"
	"github.com/amanshrivastava28/Sneako/internal/pkg/requestid"
)

const (
	maxResponseBytes = 10 << 20
	maxErrorBody     = 4 << 10
	tracerName       = "github.com/amanshrivastava28/Sneako/internal/adapter/downstream"
)

// Client performs JSON calls against one downstream service.
// It never retries.
type Client struct {
	service    string
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewClient validates cfg and builds a client with its own bounded transport.
func NewClient(service string, cfg config.Downstream, logger *slog.Logger, m *metrics.Metrics) (*Client, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse %s url: %w", service, err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("%s url must be absolute", service)
	}
	if cfg.RetryPolicy.MaxAttempts > 1 {
		return nil, fmt.Errorf("%s: %w", service, config.ErrRetriesUnsupported)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultDownstreamTimeout
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        32,
		MaxIdleConnsPerHost: 16,
		MaxConnsPerHost:     64,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: timeout,
	}

	return &Client{
		service: service,
		baseURL: parsed,
		logger:  logger.With(slog.String("downstream", service)),
		metrics: m,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}, nil
}

// call describes one downstream request. An entity call addresses a single
// resource, so its 4xx rejections are marked for passthrough.
type call struct {
	method string
	path   []string
	query  url.Values
	body   any
	entity bool
}

func (c *Client) endpoint(segments []string, query url.Values) string {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(append([]string{endpoint.Path}, segments...)...)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint.String()
}

// do sends the call and decodes a 2xx body into out when out is not nil.
// Every failure is returned as *domainErrors.UpstreamError.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, c.service+" "+cl.method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.HTTPMethodKey.String(cl.method),
			attribute.String("peer.service", c.service),
		),
	)
	defer span.End()

	err := c.send(ctx, cl, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) send(ctx context.Context, cl call, out any) error {
	var body io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			c.metrics.ObserveDownstream(c.service, metrics.OutcomeRequestBuild)
			return c.upstreamErr(fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	target := c.endpoint(cl.path, cl.query)
	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		c.metrics.ObserveDownstream(c.service, metrics.OutcomeRequestBuild)
		return c.upstreamErr(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if reqID, ok := requestid.FromContext(ctx); ok {
		req.Header.Set(requestid.Header, reqID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.metrics.ObserveDownstream(c.service, metrics.OutcomeTimeout)
			c.logger.Error("downstream request timed out", slog.String("method", cl.method), slog.String("url", target))
			return &domainErrors.UpstreamError{Service: c.service, Timeout: true, Err: err}
		}
		c.metrics.ObserveDownstream(c.service, metrics.OutcomeNetwork)
		c.logger.Error("downstream request failed", slog.String("method", cl.method), slog.String("url", target), slog.String("error", err.Error()))
		return c.upstreamErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.metrics.ObserveDownstream(c.service, metrics.OutcomeStatus)
		c.logger.Error("downstream request rejected",
			slog.String("method", cl.method),
			slog.String("url", target),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(data)),
		)
		return &domainErrors.UpstreamError{
			Service:     c.service,
			StatusCode:  resp.StatusCode,
			Body:        string(data),
			Passthrough: cl.entity,
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		c.metrics.ObserveDownstream(c.service, metrics.OutcomeOK)
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if isTimeout(err) {
			c.metrics.ObserveDownstream(c.service, metrics.OutcomeTimeout)
			return &domainErrors.UpstreamError{Service: c.service, Timeout: true, Err: err}
		}
		c.metrics.ObserveDownstream(c.service, metrics.OutcomeNetwork)
		return c.upstreamErr(err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.metrics.ObserveDownstream(c.service, metrics.OutcomeDecode)
		c.logger.Error("downstream response malformed", slog.String("url", target), slog.String("error", err.Error()))
		return c.upstreamErr(fmt.Errorf("decode response: %w", err))
	}

	c.metrics.ObserveDownstream(c.service, metrics.OutcomeOK)
	return nil
}

func (c *Client) upstreamErr(err error) error {
	return &domainErrors.UpstreamError{Service: c.service, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}
