package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"time"
)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	onLimitReached func(w http.ResponseWriter, r *http.Request, res Result)
	onError        func(r *http.Request, err error)
	skip           func(r *http.Request) bool
}

// WithOnLimitReached replaces the default 429 plain text response. The
// Retry-After header is already set when fn runs.
func WithOnLimitReached(fn func(w http.ResponseWriter, r *http.Request, res Result)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onLimitReached = fn
		}
	}
}

// WithOnError registers fn to observe limiter failures. Requests still pass.
func WithOnError(fn func(r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.onError = fn
	}
}

// WithSkipFunc exempts requests for which fn returns true.
func WithSkipFunc(fn func(r *http.Request) bool) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.skip = fn
	}
}

// Middleware enforces limiter per key. It fails open: a limiter error lets
// the request through.
func Middleware(limiter Limiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if keyFunc == nil {
		panic("ratelimit.Middleware: keyFunc is required")
	}

	cfg := &middlewareConfig{
		onLimitReached: func(w http.ResponseWriter, _ *http.Request, _ Result) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.skip != nil && cfg.skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := limiter.Allow(r.Context(), key)
			if err != nil {
				if cfg.onError != nil {
					cfg.onError(r, err)
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

			if !res.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(res.RetryAfter)))
				cfg.onLimitReached(w, r, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func retryAfterSeconds(d time.Duration) int {
	return max(int(math.Ceil(d.Seconds())), 1)
}
