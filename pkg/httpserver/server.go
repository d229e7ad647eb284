package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

type options struct {
	addr              string
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
	startHooks        []Hook
	stopHooks         []Hook
}

// Server runs an http.Server until its context is cancelled, SIGINT/SIGTERM
// arrives or Shutdown is called, then drains in-flight requests.
type Server struct {
	opts options

	mu       sync.Mutex
	srv      *http.Server
	addr     string
	shutOnce sync.Once
	shutErr  error
}

// New returns a Server listening on :8080 unless configured otherwise.
func New(opts ...Option) *Server {
	o := options{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{opts: o}
}

// Addr returns the bound listen address, or "" before Run has bound it.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run serves handler and blocks until the server stops. A nil handler serves
// 404 for every request. Bind and serve failures are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	ln, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       s.opts.readTimeout,
		ReadHeaderTimeout: s.opts.readHeaderTimeout,
		WriteTimeout:      s.opts.writeTimeout,
		IdleTimeout:       s.opts.idleTimeout,
		ErrorLog:          slog.NewLogLogger(s.opts.logger.Handler(), slog.LevelWarn),
	}
	s.srv = srv
	s.addr = ln.Addr().String()
	s.mu.Unlock()

	log := s.opts.logger
	log.InfoContext(ctx, "http server started", slog.String("addr", s.addr))
	for _, h := range s.opts.startHooks {
		h(log, s.addr)
	}

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var serveErr error
	select {
	case <-sigCtx.Done():
		log.InfoContext(ctx, "http server shutting down")
		// the parent context is already done; shutdown gets its own deadline
		_ = s.Shutdown(context.WithoutCancel(ctx))
		serveErr = <-served
	case serveErr = <-served:
	}

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, serveErr)
	}
	return s.shutdownError()
}

// Shutdown gracefully stops a running server. Calls after the first, and
// calls before Run, are no-ops.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.shutOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.opts.logger.ErrorContext(ctx, "http server shutdown", slog.Any("error", err))
			s.setShutdownError(errors.Join(ErrShutdown, err))
		}
		for _, h := range s.opts.stopHooks {
			h(s.opts.logger, s.Addr())
		}
		s.opts.logger.InfoContext(ctx, "http server stopped")
	})
	return s.shutdownError()
}

func (s *Server) setShutdownError(err error) {
	s.mu.Lock()
	s.shutErr = err
	s.mu.Unlock()
}

func (s *Server) shutdownError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutErr
}
