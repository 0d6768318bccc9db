// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for Folio.
// The JSON API lives under /api; /health, /metrics and /feed.xml sit at the
// root outside the rate limiter.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"folio/internal/cache"
	"folio/internal/config"
	"folio/internal/handlers"
	"folio/internal/middleware"
)

// New creates the configured Chi router. respCache may be nil, in which case
// list responses are served uncached.
func New(cfg config.HTTPConfig, content *handlers.Content, rss *handlers.RSS, respCache *cache.ResponseCache) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/feed.xml", rss.Feed)

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimit, cfg.RateWindow))
		}

		// Detail routes bump view counters, so they never hit the cache.
		r.Get("/blog/{slug}", content.GetBlogPost)
		r.Get("/projects/{slug}", content.GetProject)

		r.Group(func(r chi.Router) {
			if respCache != nil {
				r.Use(respCache.Middleware)
			}
			r.Get("/blog", content.ListBlogPosts)
			r.Get("/projects", content.ListProjects)
			r.Get("/search", content.Search)
			r.Get("/category/{category}", content.ByCategory)
			r.Get("/feed", content.Feed)
			r.Get("/tags", content.Tags)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not found"}`))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"error":"Method not allowed"}`))
}
