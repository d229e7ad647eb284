package ratelimit

import "errors"

var (
	ErrInvalidLimit = errors.New("ratelimit: rate and burst must be positive")
	ErrKeyRequired  = errors.New("ratelimit: key is required")
)
