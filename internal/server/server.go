// Package server exposes the todo service over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/thenoetrevino/todos/internal/app"
)

// Server serves the todo routes on a bound TCP listener
type Server struct {
	app             *app.App
	listener        net.Listener
	router          *mux.Router
	handler         http.Handler
	httpServer      *http.Server
	metrics         *Metrics
	logger          *slog.Logger
	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
	shutdownErr     error
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the logger used for access logs and lifecycle messages
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithShutdownTimeout bounds how long Shutdown waits for in-flight requests
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// NewServer binds addr and prepares the routes. Use ":0" to pick a free port.
func NewServer(addr string, application *app.App, opts ...Option) (*Server, error) {
	s := &Server{
		app:             application,
		metrics:         NewMetrics(),
		logger:          application.Logger(),
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	s.router = s.routes()
	s.handler = trimTrailingSlash(s.router)
	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	return s, nil
}

// Addr returns the address the listener is bound to
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Handler returns the routed handler, for use with httptest
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the live metrics of this server
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start serves requests until ctx is cancelled or the listener fails,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("server starting", "addr", s.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("server context cancelled, shutting down")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve error", "error", err)
			_ = s.Shutdown()
			return fmt.Errorf("serve error: %w", err)
		}
	}

	return s.Shutdown()
}

// Shutdown stops accepting connections and waits for in-flight requests.
// It is safe to call more than once.
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		s.logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.shutdownErr = fmt.Errorf("failed to shut down server: %w", err)
		}

		// Serve closes the listener on shutdown; this covers Shutdown before Start
		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			s.logger.Warn("failed to close listener", "error", err)
		}
	})

	return s.shutdownErr
}
