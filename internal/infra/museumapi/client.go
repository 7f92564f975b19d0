// Package museumapi is the DataSource of the site: an HTTP client for the
// museum's REST API covering veterans, news and login.
//
// Every call is rate limited, traced and guarded by a circuit breaker. Reads are
// retried with backoff; writes are sent exactly once. Failures are reported as
// *NetworkError, *HTTPError, *ValidationError, ErrUnauthorized or ErrNotFound.
package museumapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"museum-web/internal/handler/http/requestid"
	"museum-web/internal/observability/metrics"
	"museum-web/internal/observability/tracing"
	"museum-web/internal/resilience/circuitbreaker"
	"museum-web/internal/resilience/retry"
)

const (
	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 4 << 20
	// maxMessageLen caps server messages copied into errors.
	maxMessageLen = 500
)

// Config contains configuration for the museum API client.
type Config struct {
	// BaseURL is the API root, e.g. https://museum.example.org/api
	BaseURL string

	// Timeout bounds a single HTTP round trip
	Timeout time.Duration

	// RequestsPerSecond and Burst shape outbound traffic
	RequestsPerSecond float64
	Burst             int

	// Retry applies to idempotent reads only
	Retry retry.Config

	// Breaker guards every call
	Breaker circuitbreaker.Config
}

// DefaultConfig returns the client defaults for baseURL.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:           baseURL,
		Timeout:           10 * time.Second,
		RequestsPerSecond: 20,
		Burst:             40,
		Retry:             retry.MuseumAPIConfig(),
		Breaker:           circuitbreaker.MuseumAPIConfig(),
	}
}

// AuthHeaderFunc returns the Authorization header value for the caller bound
// to ctx, or "" when there is none.
type AuthHeaderFunc func(ctx context.Context) string

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAuthHeader sets where mutating calls take their bearer credential from.
func WithAuthHeader(fn AuthHeaderFunc) Option {
	return func(c *Client) { c.authHeader = fn }
}

// WithLogger sets the logger used for failed calls.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// Client talks to the museum REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *circuitbreaker.Breaker
	retryCfg   retry.Config
	authHeader AuthHeaderFunc
	logger     *slog.Logger
}

// New creates a Client. BaseURL must be an absolute http(s) URL.
func New(cfg Config, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("museumapi: invalid base url %q", cfg.BaseURL)
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultConfig("").RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry.MaxAttempts = 1
	}

	breakerCfg := cfg.Breaker
	if breakerCfg.Name == "" {
		breakerCfg = circuitbreaker.MuseumAPIConfig()
	}
	// Answers about the request itself (404, 401, 422) say nothing about
	// upstream health.
	breakerCfg.IsSuccessful = func(err error) bool {
		return err == nil || !IsUnavailable(err)
	}
	breakerCfg.OnStateChange = func(_, to circuitbreaker.State) {
		metrics.SetMuseumAPICircuitOpen(to == circuitbreaker.StateOpen)
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker:    circuitbreaker.New(breakerCfg),
		retryCfg:   cfg.Retry,
		authHeader: func(context.Context) string { return "" },
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// call describes one API request.
type call struct {
	op     string
	method string
	path   string
	body   any
	out    any
	authed bool
}

func (c call) idempotent() bool {
	return c.method == http.MethodGet
}

// do executes a call with tracing, metrics, rate limiting, the circuit breaker
// and, for reads, retries.
func (c *Client) do(ctx context.Context, cl call) error {
	ctx, span := tracing.GetTracer().Start(ctx, "museumapi."+cl.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", cl.method),
			attribute.String("museumapi.path", cl.path),
		),
	)
	defer span.End()

	start := time.Now()
	var err error
	if cl.idempotent() {
		err = retry.Do(ctx, c.retryCfg, func(ctx context.Context) error { return c.attempt(ctx, cl) })
		err = unwrapRetry(cl.op, err)
	} else {
		err = c.attempt(ctx, cl)
	}

	outcome := outcomeOf(err)
	metrics.RecordMuseumAPIRequest(cl.op, outcome, time.Since(start))
	span.SetAttributes(attribute.String("museumapi.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		if IsUnavailable(err) {
			c.logger.WarnContext(ctx, "museum api call failed",
				slog.String("op", cl.op),
				slog.String("outcome", outcome),
				slog.Any("error", err))
		}
	}
	return err
}

// unwrapRetry strips the retry.ExhaustedError wrapper while keeping
// the typed error underneath, so callers see the same taxonomy either way.
// Cancellation during a backoff pause counts as a network failure.
func unwrapRetry(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		netErr  *NetworkError
		httpErr *HTTPError
	)
	switch {
	case errors.As(err, &netErr):
		return netErr
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &NetworkError{Op: op, Err: err}
	case errors.As(err, &httpErr):
		return httpErr
	}
	return err
}

func (c *Client) attempt(ctx context.Context, cl call) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &NetworkError{Op: cl.op, Err: err}
	}
	err := c.breaker.Run(func() error { return c.send(ctx, cl) })
	if errors.Is(err, circuitbreaker.ErrOpen) {
		return &NetworkError{Op: cl.op, Err: err}
	}
	return err
}

func (c *Client) send(ctx context.Context, cl call) error {
	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", cl.op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return fmt.Errorf("%s: create http request: %w", cl.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.authed {
		h := c.authHeader(ctx)
		if h == "" {
			return fmt.Errorf("%s: %w", cl.op, ErrUnauthorized)
		}
		req.Header.Set("Authorization", h)
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: cl.op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &NetworkError{Op: cl.op, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if cl.out == nil || len(bytes.TrimSpace(raw)) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, cl.out); err != nil {
			return &HTTPError{Op: cl.op, StatusCode: resp.StatusCode, Message: "malformed response body: " + err.Error()}
		}
		return nil
	}

	return classify(cl, resp.StatusCode, raw)
}

// classify maps a non-2xx response onto the error taxonomy.
func classify(cl call, status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%s: %w", cl.op, ErrUnauthorized)
	case status == http.StatusNotFound:
		return fmt.Errorf("%s: %w", cl.op, ErrNotFound)
	case !cl.idempotent() && (status == http.StatusBadRequest ||
		status == http.StatusConflict ||
		status == http.StatusUnprocessableEntity):
		msg := serverMessage(body)
		if msg == "" {
			msg = http.StatusText(status)
		}
		return &ValidationError{Op: cl.op, Message: msg}
	}
	return &HTTPError{Op: cl.op, StatusCode: status, Message: serverMessage(body)}
}

// problemDetails covers the error bodies the API produces: ASP.NET problem
// details ({"title", "errors": {field: [msg]}}) and plain {"message"}.
type problemDetails struct {
	Message string              `json:"message"`
	Title   string              `json:"title"`
	Detail  string              `json:"detail"`
	Errors  map[string][]string `json:"errors"`
}

func serverMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	var pd problemDetails
	if body[0] == '{' && json.Unmarshal(body, &pd) == nil {
		if len(pd.Errors) > 0 {
			msgs := make([]string, 0, len(pd.Errors))
			for _, field := range sortedFields(pd.Errors) {
				msgs = append(msgs, pd.Errors[field]...)
			}
			return truncate(strings.Join(msgs, "; "))
		}
		for _, s := range []string{pd.Message, pd.Detail, pd.Title} {
			if s != "" {
				return truncate(s)
			}
		}
		return ""
	}

	var s string
	if body[0] == '"' && json.Unmarshal(body, &s) == nil {
		return truncate(s)
	}
	return truncate(string(body))
}

func truncate(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= maxMessageLen {
		return string(r)
	}
	return string(r[:maxMessageLen]) + "..."
}

func outcomeOf(err error) string {
	var (
		netErr *NetworkError
		valErr *ValidationError
	)
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.As(err, &valErr):
		return "rejected"
	case errors.As(err, &netErr):
		return "network_error"
	}
	return "http_error"
}
