// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics defines the Prometheus collectors exported at /metrics.
// Collectors register with the default registry on package init.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"folio/internal/models"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "folio_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "folio_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	ContentViewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_content_views_total",
			Help: "Detail views served, by content type",
		},
		[]string{"type"},
	)

	SearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_searches_total",
			Help: "Total number of search requests",
		},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "folio_search_results",
			Help:    "Number of items returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
		},
	)
)

// RecordAPIRequest records one finished request.
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight gauge up or down.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordView counts a served detail page.
func RecordView(t models.ContentType) {
	ContentViewsTotal.WithLabelValues(string(t)).Inc()
}

// RecordSearch counts a search and the size of its result.
func RecordSearch(results int) {
	SearchesTotal.Inc()
	SearchResults.Observe(float64(results))
}
