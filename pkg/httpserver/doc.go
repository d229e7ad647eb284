// Package httpserver runs the biodata HTTP handler with graceful shutdown.
//
// Server binds its listener in Run, logs the bound address, and serves until
// the context is cancelled, an interrupt or SIGTERM arrives, or Shutdown is
// called. Shutdown drains in-flight requests within the configured deadline.
// Config mirrors the options as HTTP_* environment variables for pkg/config.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthHandler serves liveness ("ALIVE") and readiness ("READY"/"NOT_READY")
// probes. Run wraps listen errors with ErrStart and Shutdown wraps drain errors
// with ErrShutdown.
package httpserver
