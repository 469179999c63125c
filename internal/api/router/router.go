package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ankitraj/portfolio/internal/contact"
	httpmiddleware "github.com/ankitraj/portfolio/internal/http/middleware"
	"github.com/ankitraj/portfolio/internal/observability/metrics"
	"github.com/ankitraj/portfolio/pkg/logging"
)

const contactPath = "/api/contact"

var contactMethods = []string{http.MethodPost, http.MethodOptions}

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	ContactHandler *contact.Handler
	// Site serves static assets with SPA fallback.
	Site   http.Handler
	Health http.HandlerFunc

	MetricsHandler     http.Handler
	HTTPMetrics        *metrics.HTTPMetrics
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(httpmiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.HTTPMetrics != nil {
		r.Use(httpmiddleware.Metrics(cfg.HTTPMetrics))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	if cfg.Health != nil {
		r.Get("/health", cfg.Health)
	}
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	if cfg.ContactHandler != nil {
		r.Group(func(api chi.Router) {
			if len(cfg.CORSAllowedOrigins) > 0 {
				api.Use(httpmiddleware.CORS(httpmiddleware.CORSPolicy{
					Origins: cfg.CORSAllowedOrigins,
					Methods: contactMethods,
					Headers: []string{"Content-Type"},
					MaxAge:  10 * time.Minute,
				}))
			}
			api.Post(contactPath, cfg.ContactHandler.Submit)
			api.Options(contactPath, httpmiddleware.Preflight(contactMethods...))
		})
	}

	// Catch-all: static files, then the SPA document.
	if cfg.Site != nil {
		r.Get("/*", cfg.Site.ServeHTTP)
		r.Head("/*", cfg.Site.ServeHTTP)
	}

	return r
}
