// Package retry re-runs idempotent museum API reads that failed for transient
// reasons, with exponential backoff and jitter.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"syscall"
	"time"
)

// Config is a backoff policy.
type Config struct {
	// MaxAttempts counts the first call.
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	// Jitter adds up to this fraction of each delay, in [0, 1].
	Jitter float64
}

// MuseumAPIConfig makes a single attempt. Deployments opt into retries by
// raising MaxAttempts; the delays stay short since a visitor is waiting.
func MuseumAPIConfig() Config {
	return Config{
		MaxAttempts:  1,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2,
		Jitter:       0.1,
	}
}

// Delay returns the pause after the n-th failed attempt (n >= 1), before
// jitter: InitialDelay * Multiplier^(n-1), capped at MaxDelay.
func (c Config) Delay(n int) time.Duration {
	d := float64(c.InitialDelay) * math.Pow(max(c.Multiplier, 1), float64(n-1))
	if c.MaxDelay > 0 && d > float64(c.MaxDelay) {
		return c.MaxDelay
	}
	return time.Duration(d)
}

func (c Config) jittered(d time.Duration) time.Duration {
	f := min(max(c.Jitter, 0), 1)
	if f == 0 || d <= 0 {
		return d
	}
	// #nosec G404 -- jitter does not need cryptographic randomness.
	return d + time.Duration(rand.Float64()*f*float64(d))
}

// ExhaustedError reports that every attempt failed. It unwraps to the last
// attempt's error.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("gave up after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error { return e.Err }

// Do calls fn until it succeeds, fails permanently (see IsRetryable), the
// attempts run out or ctx is done. A permanent error is returned as is.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	attempts := max(cfg.MaxAttempts, 1)
	var err error
	for n := 1; ; n++ {
		if err = fn(ctx); err == nil {
			if n > 1 {
				slog.InfoContext(ctx, "museum API call succeeded after retry", slog.Int("attempt", n))
			}
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		if n == attempts {
			return &ExhaustedError{Attempts: n, Err: err}
		}

		delay := cfg.jittered(cfg.Delay(n))
		slog.WarnContext(ctx, "museum API call failed, retrying",
			slog.Int("attempt", n),
			slog.Int("max_attempts", attempts),
			slog.Duration("delay", delay),
			slog.Any("error", err))

		t := time.NewTimer(delay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return errors.Join(ctx.Err(), err)
		}
	}
}

// StatusCoder is implemented by errors that carry an HTTP response status.
type StatusCoder interface {
	HTTPStatus() int
}

// IsRetryable reports whether err is transient: a 5xx, 408 or 429 answer, a
// network timeout, or a refused, reset or unreachable connection. Context
// cancellation never is.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var sc StatusCoder
	if errors.As(err, &sc) {
		s := sc.HTTPStatus()
		return s >= 500 || s == http.StatusRequestTimeout || s == http.StatusTooManyRequests
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	for _, errno := range []syscall.Errno{syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ETIMEDOUT, syscall.ENETUNREACH} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
