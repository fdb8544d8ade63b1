package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"futureyou/internal/agent"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	service        *agent.Service
	mux            *http.ServeMux
	allowedOrigins []string
	handler        http.Handler
}

type Option func(*Server)

// WithAllowedOrigins enables CORS for the given origins. "*" allows any.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.allowedOrigins = append(s.allowedOrigins, origins...)
	}
}

func NewServer(service *agent.Service, opts ...Option) *Server {
	s := &Server{
		service: service,
		mux:     http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()

	var h http.Handler = s.mux
	if len(s.allowedOrigins) > 0 {
		h = corsMiddleware(s.allowedOrigins, h)
	}
	h = accessLog(h)
	h = requestID(h)
	s.handler = otelhttp.NewHandler(h, "gateway")
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/agent", s.handleCreateAgent)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gateway")
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("gateway shutdown error", "error", err)
		return err
	}
	return nil
}
