// internal/server/server.go
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"quote-engine/internal/common/config"
	stderrors "quote-engine/internal/common/errors"
	"quote-engine/internal/common/logger"
	"quote-engine/internal/common/metrics"
	"quote-engine/internal/leads"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LeadCreator is the lead-side dependency of the HTTP layer.
type LeadCreator interface {
	Create(ctx context.Context, input *leads.CreateInput) (*leads.Lead, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// QuoteObserver records quote processing outcomes, optional at runtime.
type QuoteObserver interface {
	RecordQuoteProcessed(ctx context.Context, status string)
	RecordQuoteDuration(ctx context.Context, duration time.Duration, status string)
}

// Server represents the HTTP API server
type Server struct {
	config      config.ServerConfig
	router      *chi.Mux
	leadService LeadCreator
	readiness   []Pinger
	observer    QuoteObserver
	logger      logger.Logger
	errHandler  *stderrors.Handler
}

// NewServer creates a new API server
func NewServer(cfg config.ServerConfig, leadService LeadCreator, log logger.Logger, readiness ...Pinger) *Server {
	s := &Server{
		config:      cfg,
		leadService: leadService,
		readiness:   readiness,
		logger:      log.WithFields(map[string]interface{}{"component": "http"}),
	}
	s.errHandler = stderrors.NewHandler(s.logger)
	s.setupRouter()
	return s
}

// WithObserver attaches the quote outcome recorder.
func (s *Server) WithObserver(observer QuoteObserver) *Server {
	s.observer = observer
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health and metrics (outside versioned API - public)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/quotes", s.handleCreateQuote)
		r.Post("/quotes/preview", s.handlePreviewQuote)
		r.Get("/profiles", s.handleListProfiles)
	})

	s.router = r
}

// loggingMiddleware logs HTTP requests and records request durations
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			duration := time.Since(start)
			s.logger.Info("http request", map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"bytes":       ww.BytesWritten(),
				"duration_ms": duration.Milliseconds(),
				"request_id":  middleware.GetReqID(r.Context()),
				"remote_addr": r.RemoteAddr,
			})
			metrics.RequestDuration.
				WithLabelValues(r.URL.Path, r.Method, strconv.Itoa(ww.Status())).
				Observe(duration.Seconds())
		}()

		next.ServeHTTP(ww, r)
	})
}
