package ratelimit

import (
	"context"
	"time"
)

// Result is the outcome of one rate limit check.
type Result struct {
	Allowed bool
	// Limit is the bucket size.
	Limit int
	// Remaining is the number of whole tokens left after this check.
	Remaining int
	// RetryAfter is how long to wait before a denied request would pass.
	RetryAfter time.Duration
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
