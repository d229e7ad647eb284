// Package ratelimit throttles requests per client with in-memory token buckets.
//
// The live validation endpoints are called on every keystroke, so each client
// gets a bucket that refills at RPS tokens per second and holds at most Burst
// tokens. Buckets of clients that stay idle for IdleTTL are dropped.
//
//	limiter, err := ratelimit.NewTokenBucket(cfg)
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimit.Middleware(limiter, ratelimit.ByRemoteIP))
//
// Responses carry X-RateLimit-Limit and X-RateLimit-Remaining; denied requests
// also get Retry-After and, by default, a plain 429.
package ratelimit
