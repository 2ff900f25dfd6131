// Package server is the weburl HTTP JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Sumatoshi-tech/weburl/internal/config"
	"github.com/Sumatoshi-tech/weburl/pkg/alg/lru"
	"github.com/Sumatoshi-tech/weburl/pkg/observability"
	"github.com/Sumatoshi-tech/weburl/pkg/weburl"
)

// ErrNotReady is reported by /readyz before Serve and after Shutdown.
var ErrNotReady = errors.New("server is not accepting requests")

// Deps holds the server's collaborators. Nil Tracer, Metrics and
// MetricsHandler disable tracing, RED metrics and /metrics respectively.
type Deps struct {
	Config         *config.Config
	Logger         *slog.Logger
	Tracer         trace.Tracer
	Metrics        *observability.REDMetrics
	MetricsHandler http.Handler
	ParserOptions  []weburl.Option
}

type cacheKey struct {
	input string
	base  string
}

// Server serves /api/parse, /healthz, /readyz and /metrics.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	red     *observability.REDMetrics
	opts    []weburl.Option
	cache   *lru.Cache[cacheKey, cachedResponse]
	handler http.Handler
	http    *http.Server
	ready   atomic.Bool
}

// New builds the server and its routes.
func New(deps Deps) (*Server, error) {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tracer := deps.Tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer("")
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		red:    deps.Metrics,
		opts:   deps.ParserOptions,
	}

	if cfg.Cache.Enabled {
		cache, err := lru.New(lru.WithMaxEntries[cacheKey, cachedResponse](cfg.Cache.MaxEntries))
		if err != nil {
			return nil, fmt.Errorf("create parse cache: %w", err)
		}

		s.cache = cache
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/parse", s.handleParseQuery)
	mux.HandleFunc("POST /api/parse", s.handleParseBody)
	mux.Handle("GET /healthz", observability.HealthHandler())
	mux.Handle("GET /readyz", observability.ReadyHandler(s.readyCheck))

	if deps.MetricsHandler != nil {
		mux.Handle("GET /metrics", deps.MetricsHandler)
	}

	s.handler = observability.HTTPMiddleware(tracer, deps.Metrics, mux)

	s.http = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return s, nil
}

// Handler returns the root handler, middleware included.
func (s *Server) Handler() http.Handler { return s.handler }

// CacheStats returns the parse cache counters; ok is false when caching is
// disabled.
func (s *Server) CacheStats() (lru.Stats, bool) {
	if s.cache == nil {
		return lru.Stats{}, false
	}

	return s.cache.Stats(), true
}

// SetReady flips the /readyz state.
func (s *Server) SetReady(ready bool) { s.ready.Store(ready) }

func (s *Server) readyCheck(context.Context) error {
	if !s.ready.Load() {
		return ErrNotReady
	}

	return nil
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.http.Serve(ln)
	}()

	s.SetReady(true)
	s.logger.InfoContext(ctx, "http server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		s.SetReady(false)

		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	shutdownErr := s.http.Shutdown(shutdownCtx)

	serveErr := <-errCh
	if errors.Is(serveErr, http.ErrServerClosed) {
		serveErr = nil
	}

	if err := errors.Join(shutdownErr, serveErr); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}

	if stats, ok := s.CacheStats(); ok {
		s.logger.InfoContext(ctx, "http server stopped",
			"cache_entries", stats.Entries, "cache_hit_rate", stats.HitRate())
	} else {
		s.logger.InfoContext(ctx, "http server stopped")
	}

	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig

	ln, err := lc.Listen(ctx, "tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}

	return s.Serve(ctx, ln)
}
