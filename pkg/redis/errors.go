package redis

import "errors"

var (
	ErrEmptyURL   = errors.New("redis: empty connection URL")
	ErrInvalidURL = errors.New("redis: invalid connection URL")
	ErrNotReady   = errors.New("redis: server not ready")
	ErrUnhealthy  = errors.New("redis: ping failed")
)
