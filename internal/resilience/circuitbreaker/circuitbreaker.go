// Package circuitbreaker stops calling the museum API while it keeps failing,
// so pages fall back to the "source unavailable" message at once instead of
// waiting out timeouts. It is a thin layer over github.com/sony/gobreaker.
package circuitbreaker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// ErrOpen is returned by Run when the breaker rejects a call without making it.
var ErrOpen = errors.New("circuit breaker open")

// State of a breaker.
type State = gobreaker.State

const (
	StateClosed   = gobreaker.StateClosed
	StateHalfOpen = gobreaker.StateHalfOpen
	StateOpen     = gobreaker.StateOpen
)

// Config tunes a Breaker.
type Config struct {
	Name string

	// MaxRequests may pass while half-open.
	MaxRequests uint32
	// Interval clears the closed-state counts.
	Interval time.Duration
	// Timeout is the open period before a half-open probe.
	Timeout time.Duration

	// The breaker trips once MinRequests calls have been counted in the
	// current interval and at least FailureRatio of them failed.
	MinRequests  uint32
	FailureRatio float64

	// IsSuccessful classifies errors; accepted errors do not count as
	// failures. Nil means only a nil error succeeds.
	IsSuccessful func(err error) bool

	// OnStateChange runs after the built-in log line.
	OnStateChange func(from, to State)
}

// MuseumAPIConfig opens quickly and probes again after a short pause, since
// pages render synchronously on top of the API.
func MuseumAPIConfig() Config {
	return Config{
		Name:         "museum-api",
		MaxRequests:  2,
		Interval:     30 * time.Second,
		Timeout:      15 * time.Second,
		MinRequests:  5,
		FailureRatio: 0.6,
	}
}

// Breaker guards calls to one upstream.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// New creates a closed Breaker.
func New(cfg Config) *Breaker {
	return &Breaker{cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:         cfg.Name,
		MaxRequests:  cfg.MaxRequests,
		Interval:     cfg.Interval,
		Timeout:      cfg.Timeout,
		IsSuccessful: cfg.IsSuccessful,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.Requests >= cfg.MinRequests &&
				float64(c.TotalFailures) >= cfg.FailureRatio*float64(c.Requests)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			if cfg.OnStateChange != nil {
				cfg.OnStateChange(from, to)
			}
		},
	})}
}

// Run calls fn unless the breaker is open, or half-open with its probe quota
// used up; those rejections wrap ErrOpen.
func (b *Breaker) Run(fn func() error) error {
	_, err := b.cb.Execute(func() (any, error) { return nil, fn() })
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s: %w", ErrOpen, b.cb.Name(), err)
	}
	return err
}

// State reports the current state.
func (b *Breaker) State() State {
	return b.cb.State()
}
