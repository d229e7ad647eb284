package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/biodata/pkg/logger"
)

// Check is a named readiness probe.
type Check struct {
	Name  string
	Probe func(context.Context) error
}

// HealthHandler answers liveness and readiness probes.
// Without checks it always reports "ALIVE". With checks it runs each against
// the request context and reports "READY", or 503 "NOT_READY" on the first
// failing one.
func HealthHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, c := range checks {
			if err := c.Probe(r.Context()); err != nil {
				log.WarnContext(r.Context(), "readiness check failed",
					logger.Component("health"),
					slog.String("check", c.Name),
					logger.Error(err),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
