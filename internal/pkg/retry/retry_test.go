package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestExecuteSucceedsFirstAttempt(t *testing.T) {
	r := New(fastConfig(), nil)

	calls := 0
	err := r.Execute(context.Background(), "connect", func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteRetriesUntilSuccess(t *testing.T) {
	r := New(fastConfig(), nil)

	calls := 0
	err := r.Execute(context.Background(), "connect", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteExhaustsAttempts(t *testing.T) {
	r := New(fastConfig(), nil)

	sentinel := errors.New("down")
	calls := 0
	err := r.Execute(context.Background(), "connect", func(ctx context.Context) error {
		calls++
		return sentinel
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, calls)
}

func TestExecuteStopsOnContextCancel(t *testing.T) {
	r := New(fastConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, "connect", func(ctx context.Context) error {
		return errors.New("should not matter")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelayCapped(t *testing.T) {
	r := New(Config{
		MaxAttempts:  10,
		InitialDelay: time.Second,
		MaxDelay:     4 * time.Second,
		Multiplier:   2.0,
	}, nil)

	assert.Equal(t, time.Second, r.calculateDelay(1))
	assert.Equal(t, 2*time.Second, r.calculateDelay(2))
	assert.Equal(t, 4*time.Second, r.calculateDelay(3))
	assert.Equal(t, 4*time.Second, r.calculateDelay(8))
}

func TestCalculateDelayJitterWithinBounds(t *testing.T) {
	cfg := fastConfig()
	cfg.Jitter = true
	r := New(cfg, nil)

	for i := 0; i < 20; i++ {
		d := r.calculateDelay(2)
		assert.GreaterOrEqual(t, d, time.Millisecond)
		assert.LessOrEqual(t, d, 2*time.Millisecond)
	}
}
