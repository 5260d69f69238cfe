// Package http provides the HTTP delivery layer for the URL shortener service.
// This package contains the HTTP handlers and related types used for processing
// incoming requests, validating input, and formatting responses.
package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/vadimbarashkov/memshort/docs"
	"github.com/vadimbarashkov/memshort/internal/metrics"
	"github.com/vadimbarashkov/memshort/internal/shortcode"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	// BaseURL prefixes generated short URLs. When empty the scheme and host of the
	// incoming request are used.
	BaseURL string
	// ShortCodeLength is the exact length accepted for short codes.
	ShortCodeLength int
	// Metrics records request and domain metrics. May be nil.
	Metrics *metrics.Metrics
	// Gatherer backs the /metrics endpoint. The endpoint is not mounted when nil.
	Gatherer prometheus.Gatherer
}

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the URL shortener API.
func NewRouter(logger *httplog.Logger, urlUseCase urlUseCase, opts RouterOptions) *chi.Mux {
	if opts.ShortCodeLength <= 0 {
		opts.ShortCodeLength = shortcode.DefaultLength
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(opts.Metrics.Middleware)
	r.Use(middleware.Recoverer)

	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleMethodNotAllowed)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))
	r.Get("/docs/swagger.yml", docs.ServeSwagger)

	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	h := newURLHandler(urlUseCase, validator.New(), opts)

	r.Get("/", handleRoot)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth)
		r.Post("/shorten", h.shortenURL)
		r.Get("/stats/{shortCode}", h.getURLStats)
	})

	r.Get("/{shortCode}", h.redirect)

	return r
}
