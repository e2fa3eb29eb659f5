// Package retrylimit provides an adaptive rate limiter and an exponential
// backoff retry loop for resilient outbound connections.
package retrylimit

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// AdaptiveLimiter manages a request rate that rises on success and falls on
// failure. Thread-safe.
type AdaptiveLimiter struct {
	mu        sync.Mutex
	limiter   *rate.Limiter
	minLimit  rate.Limit
	maxLimit  rate.Limit
	stepUp    rate.Limit
	stepDown  float64
	lastError time.Time
}

// NewAdaptiveLimiter creates a limiter starting at initial requests/second,
// bounded by [min, max], raised by stepUp per success and multiplied by
// stepDown per failure.
func NewAdaptiveLimiter(initial, min, max, stepUp rate.Limit, stepDown float64) *AdaptiveLimiter {
	if initial < min {
		initial = min
	}
	return &AdaptiveLimiter{
		limiter:  rate.NewLimiter(initial, maxInt(1, int(initial))),
		minLimit: min,
		maxLimit: max,
		stepUp:   stepUp,
		stepDown: stepDown,
	}
}

// Wait blocks until a token is available or ctx is done.
func (a *AdaptiveLimiter) Wait(ctx context.Context) error {
	return a.limiter.Wait(ctx)
}

// Success raises the rate if no failure happened recently.
func (a *AdaptiveLimiter) Success() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if time.Since(a.lastError) > 10*time.Second {
		a.adjust(a.limiter.Limit() + a.stepUp)
	}
}

// Failure lowers the rate.
func (a *AdaptiveLimiter) Failure() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastError = time.Now()
	a.adjust(rate.Limit(float64(a.limiter.Limit()) * a.stepDown))
}

func (a *AdaptiveLimiter) adjust(l rate.Limit) {
	if l > a.maxLimit {
		l = a.maxLimit
	}
	if l < a.minLimit {
		l = a.minLimit
	}
	if l != a.limiter.Limit() {
		a.limiter.SetLimit(l)
		a.limiter.SetBurst(maxInt(1, int(l)))
	}
}

// RetryConfig configures WithRetry.
type RetryConfig struct {
	MaxAttempts  int // 0 means retry forever
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	Jitter       bool
	OnRetry      func(attempt int, err error)
}

// DefaultRetryConfig returns the standard backoff schedule.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		Jitter:       true,
	}
}

// WithRetry runs fn until it succeeds, ctx is done, or MaxAttempts is
// exhausted. Delay between attempts grows exponentially up to MaxDelay.
func WithRetry(ctx context.Context, fn func() error, lim *AdaptiveLimiter, cfg RetryConfig) error {
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = 500 * time.Millisecond
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = 2.0
	}

	delay := cfg.InitialDelay
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lim != nil {
			if err := lim.Wait(ctx); err != nil {
				return err
			}
		}

		err := fn()
		if err == nil {
			if lim != nil {
				lim.Success()
			}
			return nil
		}
		if lim != nil {
			lim.Failure()
		}
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err)
		}
		if cfg.MaxAttempts > 0 && attempt >= cfg.MaxAttempts {
			return fmt.Errorf("max attempts (%d) exceeded: %w", cfg.MaxAttempts, err)
		}

		next := delay
		if cfg.Jitter && delay > 0 {
			next += time.Duration(rand.Int63n(int64(delay / 4)))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(next):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
