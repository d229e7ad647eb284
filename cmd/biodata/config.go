package main

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/biodata/modules/biodataform"
	"github.com/dmitrymomot/biodata/pkg/httpserver"
	"github.com/dmitrymomot/biodata/pkg/logger"
	"github.com/dmitrymomot/biodata/pkg/preview"
	"github.com/dmitrymomot/biodata/pkg/ratelimit"
	"github.com/dmitrymomot/biodata/pkg/redis"
	"github.com/dmitrymomot/biodata/pkg/requestid"
)

const (
	backendMemory = "memory"
	backendRedis  = "redis"
)

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"biodata"`
	// LogLevel overrides the level of the APP_ENV preset when set.
	LogLevel       string `env:"LOG_LEVEL"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`

	// TrustProxyHeaders takes the client address from X-Forwarded-For and
	// friends. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	HTTP      httpserver.Config
	Form      biodataform.Config
	Preview   previewConfig
	RateLimit ratelimit.Config
}

type previewConfig struct {
	// Backend is "memory" or "redis".
	Backend string `env:"PREVIEW_BACKEND" envDefault:"memory"`
	Redis   preview.RedisConfig
	Conn    redis.Config
}

func newLogger(cfg appConfig, out io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(out),
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}
