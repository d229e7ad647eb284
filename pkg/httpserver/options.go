package httpserver

import (
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*options)

// Hook runs on server lifecycle events. addr is the bound listen address.
type Hook func(log *slog.Logger, addr string)

// WithAddr sets the listen address. Port 0 picks a free port; Server.Addr
// reports the one chosen.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver.WithAddr: empty address")
	}
	return func(o *options) { o.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	mustPositive("WithReadTimeout", d)
	return func(o *options) { o.readTimeout = d }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	mustPositive("WithReadHeaderTimeout", d)
	return func(o *options) { o.readHeaderTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	mustPositive("WithWriteTimeout", d)
	return func(o *options) { o.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	mustPositive("WithIdleTimeout", d)
	return func(o *options) { o.idleTimeout = d }
}

// WithShutdownTimeout bounds how long in-flight requests may take to finish
// once shutdown begins.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("WithShutdownTimeout", d)
	return func(o *options) { o.shutdownTimeout = d }
}

// WithLogger sets the lifecycle logger. Without it the server logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStartHook registers h to run once the listener is bound.
func WithStartHook(h Hook) Option {
	if h == nil {
		panic("httpserver.WithStartHook: nil hook")
	}
	return func(o *options) { o.startHooks = append(o.startHooks, h) }
}

// WithStopHook registers h to run after shutdown completes.
func WithStopHook(h Hook) Option {
	if h == nil {
		panic("httpserver.WithStopHook: nil hook")
	}
	return func(o *options) { o.stopHooks = append(o.stopHooks, h) }
}

func mustPositive(name string, d time.Duration) {
	if d <= 0 {
		panic("httpserver." + name + ": duration must be > 0")
	}
}
