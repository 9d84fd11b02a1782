package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollFindsResult(t *testing.T) {
	calls := 0
	found, err := Poll(context.Background(), 5, time.Millisecond, func(ctx context.Context) (bool, error) {
		calls++
		return calls == 3, nil
	})
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, calls)
}

func TestPollExhaustsBudget(t *testing.T) {
	calls := 0
	found, err := Poll(context.Background(), 4, time.Millisecond, func(ctx context.Context) (bool, error) {
		calls++
		return false, nil
	})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 4, calls)
}

func TestPollStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	found, err := Poll(context.Background(), 5, time.Millisecond, func(ctx context.Context) (bool, error) {
		calls++
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, found)
	assert.Equal(t, 1, calls)
}

func TestPollHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	found, err := Poll(ctx, 5, 50*time.Millisecond, func(ctx context.Context) (bool, error) {
		return false, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, found)
}
