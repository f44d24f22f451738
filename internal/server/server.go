// Package server hosts the commentor, files and gateway HTTP roles.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Role names accepted by serve.
const (
	RoleCommentor = "commentor"
	RoleFiles     = "files"
	RoleGateway   = "gateway"
)

// Defaults applied by New to zero Config fields.
const (
	DefaultBodyLimit       = 1 << 20
	DefaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

// Config configures one listening role.
type Config struct {
	Role            string
	Addr            string
	BodyLimit       int64
	RateLimit       int // requests per RateWindow per client, 0 disables
	RateWindow      time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// Server serves one role behind the shared middleware chain.
type Server struct {
	cfg        Config
	mux        *http.ServeMux
	metrics    *Metrics
	limiter    *rateLimiter
	bootTime   time.Time
	now        func() time.Time
	httpServer *http.Server

	once    sync.Once
	handler http.Handler
}

// New creates a Server with /health and /metrics mounted.
func New(cfg Config, metrics *Metrics) *Server {
	if cfg.BodyLimit == 0 {
		cfg.BodyLimit = DefaultBodyLimit
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	if metrics == nil {
		metrics = NewMetrics()
	}

	s := &Server{
		cfg:      cfg,
		mux:      http.NewServeMux(),
		metrics:  metrics,
		limiter:  newRateLimiter(cfg.RateWindow, cfg.RateLimit),
		bootTime: time.Now(),
		now:      time.Now,
	}

	s.handle("GET /health", http.HandlerFunc(s.handleHealth))
	s.mux.Handle("GET /metrics", metrics.Handler())

	return s
}

// handle registers h on pattern with per-route metrics.
func (s *Server) handle(pattern string, h http.Handler) {
	s.mux.Handle(pattern, s.metrics.instrument(pattern, h))
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	s.once.Do(func() {
		s.handler = chain(s.mux,
			requestMetadata,
			requestLogging(s.cfg.Role),
			securityHeaders,
			corsPolicy(buildCORS(s.cfg.AllowedOrigins)),
			rateLimit(s.limiter, s.now),
			bodyLimit(s.cfg.BodyLimit),
		)
	})

	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("http server listening", "role", s.cfg.Role, "addr", s.cfg.Addr)

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil {
			slog.Error("http server shutdown failed", "role", s.cfg.Role, "error", err)
			return err
		}

		slog.Info("http server stopped", "role", s.cfg.Role)

		return nil
	case err := <-errCh:
		if err != nil {
			slog.Error("http server stopped with error", "role", s.cfg.Role, "error", err)
		}

		return err
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, struct {
		Status    string  `json:"status"`
		Role      string  `json:"role,omitempty"`
		Uptime    float64 `json:"uptime"`
		Timestamp string  `json:"timestamp"`
	}{
		Status:    "ok",
		Role:      s.cfg.Role,
		Uptime:    time.Since(s.bootTime).Seconds(),
		Timestamp: s.now().UTC().Format(time.RFC3339),
	})
}
