package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func failing(context.Context) (int, error) { return 0, errBoom }
func succeeding(context.Context) (int, error) { return 7, nil }

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker("ephemeris", CircuitBreakerConfig{FailureThreshold: 2, SuccessThreshold: 1, Timeout: time.Minute})
	ctx := context.Background()

	_, err := Execute(cb, ctx, failing)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, CircuitClosed, cb.State())

	_, err = Execute(cb, ctx, failing)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, CircuitOpen, cb.State())

	_, err = Execute(cb, ctx, succeeding)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreakerRecoversAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker("geocoder", CircuitBreakerConfig{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Second})
	now := time.Now()
	cb.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = Execute(cb, ctx, failing)
	require.Equal(t, CircuitOpen, cb.State())

	now = now.Add(2 * time.Second)
	v, err := Execute(cb, ctx, succeeding)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestRetryWithResult(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 2}

	calls := 0
	v, err := RetryWithResult(context.Background(), cfg, func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errBoom
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 3, calls)
}

func TestRetryStopsOnPermanent(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 5, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 1}

	calls := 0
	_, err := RetryWithResult(context.Background(), cfg, func(context.Context) (int, error) {
		calls++
		return 0, &Permanent{Err: errBoom}
	})
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)
}

func TestRetryHonoursContext(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 5, InitialDelay: time.Hour, MaxDelay: time.Hour, BackoffFactor: 1}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RetryWithResult(ctx, cfg, failing)
	assert.ErrorIs(t, err, context.Canceled)
}
