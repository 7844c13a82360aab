// Package http assembles the semana API server: router, middleware and
// the net/http server around them.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	mw "github.com/semana-app/semana/internal/http/middleware"
)

// Default configuration values for the HTTP server.
const (
	DefaultHost              = "" // all interfaces
	DefaultPort              = "8080"
	DefaultReadTimeout       = 15 * time.Second
	DefaultWriteTimeout      = 15 * time.Second
	DefaultIdleTimeout       = 60 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultMaxHeaderBytes    = 1 << 20 // 1MB
	DefaultMaxBodyBytes      = 1 << 20 // 1MB
)

// ServerConfig holds configuration for the HTTP server and router.
type ServerConfig struct {
	Host              string
	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	MaxHeaderBytes    int
	MaxBodyBytes      int64

	// APIToken enables bearer-token auth on the API routes when
	// non-empty. The health endpoint is always open.
	APIToken string
}

// applyDefaults sets default values for any unset (zero) fields.
func (cfg *ServerConfig) applyDefaults() {
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if cfg.MaxHeaderBytes <= 0 {
		cfg.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

// APIServer wraps the HTTP server with router and all HTTP concerns.
type APIServer struct {
	server *http.Server
}

// NewAPIServer creates the HTTP server with router and middleware
// configured. The apiHandler is mounted under /api/v1; when cfg.APIToken
// is set those routes require a matching bearer token. Applies defaults
// for zero or invalid config values.
func NewAPIServer(apiHandler http.Handler, cfg ServerConfig) *APIServer {
	cfg.applyDefaults()

	router := setupRouter(apiHandler, cfg)
	httpServer := setupHTTPServer(router, cfg)

	return &APIServer{
		server: httpServer,
	}
}

// setupRouter creates and configures the chi router with all middleware
// and routes.
func setupRouter(apiHandler http.Handler, cfg ServerConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middlewares (applied to all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(mw.MaxBodyBytes(cfg.MaxBodyBytes))

	// Health check endpoint (no auth required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			slog.ErrorContext(r.Context(), "failed to write health check response", "error", err)
		}
	})

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.APIToken != "" {
			r.Use(mw.NewAuth(cfg.APIToken).Validate)
		}

		r.Mount("/", apiHandler)
	})

	return r
}

// setupHTTPServer creates the net/http.Server with the given router and
// config. The otelhttp wrapper records an HTTP server span per request
// and is a no-op under the default tracer provider.
func setupHTTPServer(router *chi.Mux, cfg ServerConfig) *http.Server {
	return &http.Server{
		Addr:              cfg.Host + ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(router, "semana-api"),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

// Start starts the HTTP server.
func (s *APIServer) Start() error {
	slog.Info("starting HTTP server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server. The provided context
// controls the timeout for outstanding requests.
func (s *APIServer) Shutdown(ctx context.Context) error {
	slog.Info("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Handler returns the underlying HTTP handler (router) for testing purposes.
func (s *APIServer) Handler() http.Handler {
	return s.server.Handler
}
