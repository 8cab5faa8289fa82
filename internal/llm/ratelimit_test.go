package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterExhaustion(t *testing.T) {
	rl := newRateLimiter(5)
	// Pin the clock so the slow test run cannot refill tokens mid-loop.
	rl.lastRefill = time.Now().Add(time.Hour)

	for i := 0; i < 5; i++ {
		require.True(t, rl.tryAcquire(), "token %d", i)
	}
	assert.False(t, rl.tryAcquire())
}

func TestRateLimiterLazyRefill(t *testing.T) {
	rl := newRateLimiter(60) // one token per second
	rl.tokens = 0

	// No time has passed: still empty.
	rl.lastRefill = time.Now().Add(time.Hour)
	assert.False(t, rl.tryAcquire())

	// Two seconds of elapsed time refills two tokens.
	rl.lastRefill = time.Now().Add(-2 * time.Second)
	assert.True(t, rl.tryAcquire())
	assert.True(t, rl.tryAcquire())
	assert.False(t, rl.tryAcquire())
}

func TestRateLimiterRefillCapsAtCapacity(t *testing.T) {
	rl := newRateLimiter(3)
	rl.tokens = 0
	rl.lastRefill = time.Now().Add(-time.Hour)

	for i := 0; i < 3; i++ {
		require.True(t, rl.tryAcquire(), "token %d", i)
	}
	assert.False(t, rl.tryAcquire())
}

func TestRateLimiterWaitHonorsContext(t *testing.T) {
	rl := newRateLimiter(1)
	rl.tokens = 0
	rl.lastRefill = time.Now().Add(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRateLimiterWaitImmediateWhenTokensAvailable(t *testing.T) {
	rl := newRateLimiter(10)

	start := time.Now()
	require.NoError(t, rl.wait(context.Background()))
	assert.Less(t, time.Since(start), time.Second)
}
