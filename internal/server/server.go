package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/carbonscope/carbonscope/internal/engine"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	maxBodyBytes      = 4 << 20 // batch uploads stay well under this
)

// Server hosts the calculation API.
type Server struct {
	calc   *engine.Calculator
	logger zerolog.Logger
	http   *http.Server
}

// New builds a server around a calculator. A nil calculator means the
// default registry and policy.
func New(addr string, calc *engine.Calculator, logger zerolog.Logger) *Server {
	if calc == nil {
		calc = engine.NewCalculator(nil, engine.DefaultPolicy())
	}
	s := &Server{calc: calc, logger: logger}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// routes assembles the chi router with the middleware stack applied to all
// endpoints.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLogging)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/calculate", s.handleCalculate)
		r.Post("/aggregate", s.handleAggregate)
		r.Get("/factors", s.handleFactorTables)
		r.Get("/factors/{table}", s.handleFactorTable)
	})

	return r
}

// requestLogging tags each request with an ID and records a structured
// completion line plus the HTTP counter.
func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()

		s.logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("route", route).
			Int("status", ww.Status()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("request handled")
	})
}

// ListenAndServe blocks until the context is canceled or the listener
// fails, then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.logger.Info().Str("addr", s.http.Addr).Msg("http server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

// Handler exposes the assembled routes for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }
