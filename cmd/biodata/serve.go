package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/biodata/handler"
	"github.com/dmitrymomot/biodata/modules/biodataform"
	"github.com/dmitrymomot/biodata/pkg/biodata"
	"github.com/dmitrymomot/biodata/pkg/config"
	"github.com/dmitrymomot/biodata/pkg/httpserver"
	"github.com/dmitrymomot/biodata/pkg/logger"
	"github.com/dmitrymomot/biodata/pkg/preview"
	"github.com/dmitrymomot/biodata/pkg/ratelimit"
	"github.com/dmitrymomot/biodata/pkg/redis"
	"github.com/dmitrymomot/biodata/pkg/requestid"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the biodata form over HTTP",
		Description: `Configuration is read from the environment and an optional .env file.
See APP_*, LOG_LEVEL, HTTP_*, FORM_*, PREVIEW_*, REDIS_*, UPLOAD_MAX_MEMORY,
PHOTO_MAX_SIZE, RATE_LIMIT_*, TRUST_PROXY_HEADERS and METRICS_ENABLED.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "additional .env files to load before the environment is parsed",
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address, overrides HTTP_ADDR",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := config.LoadEnv(cmd.StringSlice("env-file")...); err != nil {
				return err
			}

			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr := cmd.String("addr"); addr != "" {
				cfg.HTTP.Addr = addr
			}

			log, err := newLogger(cfg, cmd.Root().ErrWriter)
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			reg := prometheus.NewRegistry()
			metrics := newMetrics(cfg, reg)

			previews, checks, closePreviews, err := newPreviewStore(ctx, cfg, metrics)
			if err != nil {
				return err
			}
			defer closePreviews()

			router, err := newRouter(cfg, log, reg, metrics, previews, checks...)
			if err != nil {
				return err
			}

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(ctx, router)
		},
	}
}

func newMetrics(cfg appConfig, reg *prometheus.Registry) *biodataform.Metrics {
	if !cfg.MetricsEnabled {
		return nil
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return biodataform.NewMetrics(reg)
}

// newPreviewStore builds the configured preview backend. The returned checks
// join the readiness probe and close releases the backend's connections.
func newPreviewStore(ctx context.Context, cfg appConfig, metrics *biodataform.Metrics) (preview.Store, []httpserver.Check, func(), error) {
	opts := []preview.Option{
		preview.WithBasePath(cfg.Form.BasePath + "/preview"),
		preview.WithRevokeCallback(metrics.ObserveRevoke),
	}

	switch cfg.Preview.Backend {
	case backendMemory, "":
		if cfg.Form.PreviewCapacity <= 0 {
			return nil, nil, nil, fmt.Errorf("PREVIEW_CAPACITY must be positive, got %d", cfg.Form.PreviewCapacity)
		}
		store := preview.NewMemoryStore(cfg.Form.PreviewCapacity, opts...)
		metrics.TrackPreviewStore(store)
		return store, nil, func() {}, nil

	case backendRedis:
		client, err := redis.Connect(ctx, cfg.Preview.Conn)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect preview redis: %w", err)
		}
		store := preview.NewRedisStore(client, cfg.Preview.Redis, opts...)
		check := httpserver.Check{Name: "redis", Probe: redis.Healthcheck(client)}
		return store, []httpserver.Check{check}, func() { _ = client.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown PREVIEW_BACKEND %q", cfg.Preview.Backend)
	}
}

// newRouter assembles the application: request ids and access logging around
// the rate limited form module, plus health and metrics endpoints. metrics may
// be nil.
func newRouter(
	cfg appConfig,
	log *slog.Logger,
	reg *prometheus.Registry,
	metrics *biodataform.Metrics,
	previews preview.Store,
	checks ...httpserver.Check,
) (http.Handler, error) {
	views := biodataform.DefaultViews()
	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
	})

	v := biodata.New()
	form, err := biodataform.NewFormService(cfg.Form, v, previews, views, metrics, log, errorHandler)
	if err != nil {
		return nil, fmt.Errorf("form service: %w", err)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	// Forwarding headers are client controlled unless a proxy rewrites them.
	if cfg.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(accessLog(log), middleware.Recoverer)

	r.Get("/health", httpserver.HealthHandler(log, checks...))
	if metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	var app http.Handler = biodataform.Router(biodataform.RouterOptions{
		Form: form,
		API:  biodataform.NewAPIService(v, metrics, log),
	})
	if cfg.RateLimit.Enabled {
		limited, err := rateLimit(cfg.RateLimit, log, errorHandler)
		if err != nil {
			return nil, err
		}
		app = limited(app)
	}

	mountAt := cfg.Form.BasePath
	if mountAt == "" {
		mountAt = "/"
	}
	r.Mount(mountAt, app)

	return r, nil
}

// rateLimit limits form and API requests per client address. Denials go
// through errorHandler so datastar requests get a notice instead of a page.
func rateLimit(cfg ratelimit.Config, log *slog.Logger, errorHandler handler.ErrorHandler[handler.Context]) (func(http.Handler) http.Handler, error) {
	limiter, err := ratelimit.NewTokenBucket(cfg)
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	return ratelimit.Middleware(limiter, ratelimit.ByRemoteIP,
		ratelimit.WithOnLimitReached(func(w http.ResponseWriter, r *http.Request, res ratelimit.Result) {
			log.InfoContext(r.Context(), "rate limit reached",
				logger.Component("ratelimit"),
				slog.Duration("retry_after", res.RetryAfter),
			)
			errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
		}),
		ratelimit.WithOnError(func(r *http.Request, err error) {
			log.WarnContext(r.Context(), "rate limiter failed", logger.Error(err))
		}),
	), nil
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.DebugContext(r.Context(), "http request",
				logger.Component("http"),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
