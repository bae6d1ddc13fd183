// Package client submits intake batches to the DataSnap IntrariFurnizori
// endpoint.
//
// A submission is one POST. Any HTTP response counts as delivered and its
// body is discarded; only a failure to complete the exchange is an error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rezonia/intrari-furnizori/internal/model"
)

const (
	// Path is the fixed resource path of the receiving server.
	Path = "/datasnap/rest/TServerMethods/IntrariFurnizori"

	DefaultConnectTimeout = 10 * time.Second

	// RequestIDHeader carries the per-submission correlation id.
	RequestIDHeader = "X-Request-ID"

	tracerName = "github.com/rezonia/intrari-furnizori/internal/client"
)

// Endpoint returns the submission URL for host and port.
func Endpoint(host string, port int) string {
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + Path
}

// Client posts batches to a single endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	logger   zerolog.Logger
	tracer   trace.Tracer
}

// Receipt describes the response the server gave to a submission.
type Receipt struct {
	StatusCode int
	RequestID  string
}

// Option configures the client
type Option func(*clientConfig)

type clientConfig struct {
	connectTimeout time.Duration
	httpClient     *http.Client
	logger         zerolog.Logger
	tracerProvider trace.TracerProvider
}

// WithConnectTimeout bounds connection establishment. It does not limit how
// long the server takes to answer.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(cfg *clientConfig) {
		cfg.connectTimeout = timeout
	}
}

// WithHTTPClient replaces the HTTP client. The connect timeout is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) {
		cfg.httpClient = c
	}
}

// WithLogger sets the logger for submission events
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *clientConfig) {
		cfg.logger = logger
	}
}

// WithTracerProvider sets the span source. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cfg *clientConfig) {
		cfg.tracerProvider = tp
	}
}

// New creates a client for endpoint, usually built with Endpoint.
func New(endpoint string, opts ...Option) *Client {
	cfg := &clientConfig{
		connectTimeout: DefaultConnectTimeout,
		logger:         zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: newTransport(cfg.connectTimeout)}
	}
	tp := cfg.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Client{
		endpoint: endpoint,
		http:     httpClient,
		logger:   cfg.logger,
		tracer:   tp.Tracer(tracerName),
	}
}

// newTransport limits dialing only; http.Client.Timeout stays zero.
func newTransport(connectTimeout time.Duration) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DialContext = (&net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	return t
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Encode re-validates batch and returns the request body.
func Encode(batch model.IntrareFurnizori) ([]byte, error) {
	if err := batch.Validate(); err != nil {
		return nil, fmt.Errorf("invalid batch: %w", err)
	}
	body, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("encode batch: %w", err)
	}
	return body, nil
}

// Submit posts batch once and waits for the response headers. Non-2xx
// statuses are logged and returned in the receipt, not as errors.
func (c *Client) Submit(ctx context.Context, batch model.IntrareFurnizori) (Receipt, error) {
	body, err := Encode(batch)
	if err != nil {
		return Receipt{}, err
	}

	reqID := uuid.New().String()
	receipt := Receipt{RequestID: reqID}

	ctx, span := c.tracer.Start(ctx, "intrari.Submit",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.url", c.endpoint),
			attribute.Int("intrari.documents", len(batch.Documente)),
			attribute.String("intrari.request_id", reqID),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return receipt, c.fail(span, &TransportError{Op: "build request", URL: c.endpoint, RequestID: reqID, Cause: err}, time.Now())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	c.logger.Info().
		Str("event", "intrari.submit.request").
		Str("request_id", reqID).
		Str("url", c.endpoint).
		Int("bytes", len(body)).
		Int("documents", len(batch.Documente)).
		Msg("submitting batch")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return receipt, c.fail(span, &TransportError{Op: "post", URL: c.endpoint, RequestID: reqID, Cause: err}, start)
	}
	// The body is never read; closing it returns once the headers are in.
	resp.Body.Close()

	receipt.StatusCode = resp.StatusCode
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	ev := c.logger.Info()
	if resp.StatusCode/100 != 2 {
		ev = c.logger.Warn()
	}
	ev.Str("event", "intrari.submit.response").
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Int64("elapsed_ms", time.Since(start).Milliseconds()).
		Msg("batch delivered")

	return receipt, nil
}

func (c *Client) fail(span trace.Span, err *TransportError, start time.Time) error {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Op)
	c.logger.Error().
		Str("event", "intrari.submit.error").
		Str("request_id", err.RequestID).
		Err(err.Cause).
		Int64("elapsed_ms", time.Since(start).Milliseconds()).
		Msg("submission failed")
	return err
}
