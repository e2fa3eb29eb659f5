// /pkg/retrylimit/retrylimit_test.go
package retrylimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetrySucceedsAfterFailures(t *testing.T) {
	attempts := 0
	cfg := RetryConfig{InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}

	err := WithRetry(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("not yet")
		}
		return nil
	}, nil, cfg)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithRetryMaxAttempts(t *testing.T) {
	attempts := 0
	cfg := RetryConfig{MaxAttempts: 4, InitialDelay: time.Millisecond, Multiplier: 2}

	err := WithRetry(context.Background(), func() error {
		attempts++
		return errors.New("always fails")
	}, nil, cfg)

	require.Error(t, err)
	assert.Equal(t, 4, attempts)
}

func TestWithRetryHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error { return errors.New("never called twice") }, nil, DefaultRetryConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithRetryReportsAttempts(t *testing.T) {
	var reported []int
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}
	cfg.OnRetry = func(attempt int, err error) { reported = append(reported, attempt) }

	_ = WithRetry(context.Background(), func() error { return errors.New("nope") }, nil, cfg)
	assert.Equal(t, []int{1, 2, 3}, reported)
}

func TestAdaptiveLimiterBounds(t *testing.T) {
	lim := NewAdaptiveLimiter(5, 1, 10, 1, 0.5)

	for i := 0; i < 20; i++ {
		lim.Failure()
	}
	assert.Equal(t, float64(1), float64(lim.limiter.Limit()), "rate never drops below the floor")
}
