package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config configures a TokenBucket.
type Config struct {
	Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	// RPS is the sustained number of requests per second per key.
	RPS float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	// Burst is the number of requests a key may make at once.
	Burst int `env:"RATE_LIMIT_BURST" envDefault:"40"`
	// IdleTTL is how long an unused key keeps its bucket.
	IdleTTL time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"10m"`
}

// TokenBucket keeps one token bucket per key in memory.
// It is safe for concurrent use.
type TokenBucket struct {
	limit rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

var _ Limiter = (*TokenBucket)(nil)

// Option configures a TokenBucket.
type Option func(*TokenBucket)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(l *TokenBucket) {
		if now != nil {
			l.now = now
		}
	}
}

// NewTokenBucket creates a limiter from cfg. cfg.Enabled is not consulted.
func NewTokenBucket(cfg Config, opts ...Option) (*TokenBucket, error) {
	if cfg.RPS <= 0 || cfg.Burst <= 0 {
		return nil, ErrInvalidLimit
	}
	l := &TokenBucket{
		limit:   rate.Limit(cfg.RPS),
		burst:   cfg.Burst,
		idle:    cfg.IdleTTL,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
	if l.idle <= 0 {
		l.idle = 10 * time.Minute
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.now()
	return l, nil
}

// Allow takes one token from the bucket of key.
func (l *TokenBucket) Allow(_ context.Context, key string) (Result, error) {
	if key == "" {
		return Result{}, ErrKeyRequired
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.seen = now

	res := Result{Limit: l.burst}
	if b.lim.AllowN(now, 1) {
		res.Allowed = true
		res.Remaining = int(b.lim.TokensAt(now))
		return res, nil
	}

	r := b.lim.ReserveN(now, 1)
	res.RetryAfter = r.DelayFrom(now)
	r.CancelAt(now)
	return res, nil
}

// Len returns the number of tracked keys.
func (l *TokenBucket) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Must be called with lock held.
func (l *TokenBucket) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.seen) >= l.idle {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}
