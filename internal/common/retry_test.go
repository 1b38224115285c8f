package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryOptions {
	return RetryOptions{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2,
	}
}

func TestWithRetry_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return fmt.Errorf("fetch: %w", ErrSourceUnavailable)
		}
		return nil
	}, fastRetry(5))

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_StopsOnPermanentError(t *testing.T) {
	permanent := errors.New("permission denied")
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return permanent
	}, fastRetry(5))

	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return &RetryableError{Err: errors.New("flaky"), Retryable: true}
	}, fastRetry(3))

	require.ErrorIs(t, err, ErrMaxRetries)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error {
		return ErrSourceUnavailable
	}, RetryOptions{MaxAttempts: 3, InitialDelay: time.Hour})

	require.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrSourceUnavailable))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.False(t, IsRetryable(context.Canceled))
	assert.False(t, IsRetryable(ErrInvalidListingData))
	assert.False(t, IsRetryable(&RetryableError{Err: errors.New("x"), Retryable: false}))
}

func TestUserError(t *testing.T) {
	err := NewUserError("could not load listings", ErrNotFound)
	assert.Equal(t, "could not load listings: not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	bare := NewUserError("nothing to show", nil)
	assert.Equal(t, "nothing to show", bare.Error())
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer

	require.NoError(t, SetupLogger(&buf, "debug", "json"))
	require.NoError(t, SetupLogger(&buf, "info", "console"))

	err := SetupLogger(&buf, "loud", "json")
	require.ErrorIs(t, err, ErrInvalidConfig)

	err = SetupLogger(&buf, "info", "xml")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
