package ratelimit_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/biodata/pkg/ratelimit"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newLimiter(t *testing.T, cfg ratelimit.Config) (*ratelimit.TokenBucket, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
	l, err := ratelimit.NewTokenBucket(cfg, ratelimit.WithClock(clock.Now))
	require.NoError(t, err)
	return l, clock
}

func TestNewTokenBucket_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := ratelimit.NewTokenBucket(ratelimit.Config{RPS: 0, Burst: 1})
	assert.ErrorIs(t, err, ratelimit.ErrInvalidLimit)

	_, err = ratelimit.NewTokenBucket(ratelimit.Config{RPS: 1, Burst: 0})
	assert.ErrorIs(t, err, ratelimit.ErrInvalidLimit)
}

func TestTokenBucket_Allow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("burst then deny", func(t *testing.T) {
		t.Parallel()
		l, _ := newLimiter(t, ratelimit.Config{RPS: 1, Burst: 3})

		for i := range 3 {
			res, err := l.Allow(ctx, "1.2.3.4")
			require.NoError(t, err)
			assert.True(t, res.Allowed, "request %d", i)
			assert.Equal(t, 3, res.Limit)
			assert.Equal(t, 2-i, res.Remaining)
		}

		res, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, time.Second, res.RetryAfter)
	})

	t.Run("refills over time", func(t *testing.T) {
		t.Parallel()
		l, clock := newLimiter(t, ratelimit.Config{RPS: 2, Burst: 1})

		res, _ := l.Allow(ctx, "k")
		require.True(t, res.Allowed)
		res, _ = l.Allow(ctx, "k")
		require.False(t, res.Allowed)

		clock.Advance(500 * time.Millisecond)
		res, _ = l.Allow(ctx, "k")
		assert.True(t, res.Allowed)
	})

	t.Run("denied request does not consume", func(t *testing.T) {
		t.Parallel()
		l, clock := newLimiter(t, ratelimit.Config{RPS: 1, Burst: 1})

		res, _ := l.Allow(ctx, "k")
		require.True(t, res.Allowed)
		for range 5 {
			res, _ = l.Allow(ctx, "k")
			require.False(t, res.Allowed)
		}

		clock.Advance(time.Second)
		res, _ = l.Allow(ctx, "k")
		assert.True(t, res.Allowed)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		l, _ := newLimiter(t, ratelimit.Config{RPS: 1, Burst: 1})

		res, _ := l.Allow(ctx, "a")
		require.True(t, res.Allowed)
		res, _ = l.Allow(ctx, "b")
		assert.True(t, res.Allowed)
		assert.Equal(t, 2, l.Len())
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		l, _ := newLimiter(t, ratelimit.Config{RPS: 1, Burst: 1})
		_, err := l.Allow(ctx, "")
		assert.ErrorIs(t, err, ratelimit.ErrKeyRequired)
	})
}

func TestTokenBucket_IdleKeysAreDropped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	l, clock := newLimiter(t, ratelimit.Config{RPS: 1, Burst: 1, IdleTTL: time.Minute})

	_, err := l.Allow(ctx, "old")
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = l.Allow(ctx, "new")
	require.NoError(t, err)

	assert.Equal(t, 1, l.Len())
}
