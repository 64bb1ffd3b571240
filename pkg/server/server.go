// Package server exposes layout evaluation over HTTP.
//
// Routes:
//
//	GET /healthz          build info and liveness
//	GET /layouts/{code}   evaluate a layout given its flat code
//	GET /count            size of the layout space (?size=3&tiles=G,T&unique=true)
//	GET /metrics          Prometheus metrics
//
// Errors are JSON objects {"code": "...", "error": "..."} carrying the
// pkg/errors code of the failure.
package server

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/gridpark/pkg/buildinfo"
	"github.com/matzehuels/gridpark/pkg/cache"
	"github.com/matzehuels/gridpark/pkg/enumerate"
	"github.com/matzehuels/gridpark/pkg/errors"
	"github.com/matzehuels/gridpark/pkg/observability"
	"github.com/matzehuels/gridpark/pkg/pipeline"
	"github.com/matzehuels/gridpark/pkg/tile"
)

// DefaultAddr is the listen address used when Config.Addr is empty.
const DefaultAddr = ":8080"

// MaxUniqueSpace bounds the layout spaces whose symmetry classes /count
// will enumerate on request.
const MaxUniqueSpace = 1 << 20

// shutdownTimeout bounds graceful shutdown after the context is cancelled.
const shutdownTimeout = 5 * time.Second

// Config configures a Server.
type Config struct {
	Addr   string
	Logger *log.Logger
	// Gatherer backs /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// Cache memoizes symmetry-class counts. Defaults to an in-memory cache.
	Cache cache.Cache
}

// Server is the gridpark HTTP service.
type Server struct {
	addr   string
	logger *log.Logger
	cache  cache.Cache
	router chi.Router
}

// New builds the router. It does not start listening.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.NewMemoryCache()
	}

	s := &Server{addr: cfg.Addr, logger: cfg.Logger, cache: cfg.Cache}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Get("/layouts/{code}", s.handleEvaluate)
	r.Get("/count", s.handleCount)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))

	s.router = r
	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// instrument reports every request to the HTTP hooks, labelled by route
// pattern rather than raw path to keep label cardinality bounded.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		d := time.Since(start)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, d)
		s.logger.Debug("request",
			"method", r.Method,
			"route", route,
			"status", status,
			"duration", d,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	ev, err := pipeline.Evaluate(chi.URLParam(r, "code"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

type countResponse struct {
	Size   int    `json:"size"`
	Tiles  string `json:"tiles"`
	Count  string `json:"count"` // decimal; may exceed int64
	Unique string `json:"unique,omitempty"`
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	size := pipeline.DefaultSize
	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "size must be an integer"))
			return
		}
		size = n
	}

	kinds, err := tile.ParseKinds(q.Get("tiles"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	n, err := enumerate.Count(kinds, size)
	if err != nil {
		s.writeError(w, err)
		return
	}
	resp := countResponse{Size: size, Tiles: tile.Codes(kinds), Count: n.String()}

	if q.Get("unique") == "true" {
		if n.Cmp(big.NewInt(MaxUniqueSpace)) > 0 {
			s.writeError(w, errors.New(errors.ErrCodeUnsupported,
				"unique counts are limited to %d layouts, space has %s", MaxUniqueSpace, n))
			return
		}
		u, err := s.uniqueCount(r.Context(), kinds, size)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp.Unique = u
	}
	writeJSON(w, http.StatusOK, resp)
}

// uniqueCount counts symmetry classes, memoized per alphabet and size.
func (s *Server) uniqueCount(ctx context.Context, kinds []tile.Kind, size int) (string, error) {
	key := cache.Key("unique", tile.Codes(kinds), size)
	if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		return string(data), nil
	}

	seq, err := enumerate.UniqueContext(ctx, kinds, size)
	if err != nil {
		return "", err
	}
	n := 0
	for range seq {
		n++
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	u := strconv.Itoa(n)
	if err := s.cache.Set(ctx, key, []byte(u), 0); err != nil {
		s.logger.Warn("cache set failed", "key", key, "err", err)
	}
	return u, nil
}

type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: code, Error: errors.UserMessage(err)})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeMalformedGrid, errors.ErrCodeUnknownTileKind, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
