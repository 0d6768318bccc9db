// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"folio/internal/models"
)

func TestRecordAPIRequest(t *testing.T) {
	c := APIRequestsTotal.WithLabelValues("GET", "/api/blog/{slug}", "404")
	before := testutil.ToFloat64(c)

	RecordAPIRequest("GET", "/api/blog/{slug}", "404", 3*time.Millisecond)

	if got := testutil.ToFloat64(c) - before; got != 1 {
		t.Errorf("counter delta: got %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc: got %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec: got %v, want %v", got, before)
	}
}

func TestRecordView(t *testing.T) {
	c := ContentViewsTotal.WithLabelValues("project")
	before := testutil.ToFloat64(c)

	RecordView(models.ContentTypeProject)
	RecordView(models.ContentTypeProject)

	if got := testutil.ToFloat64(c) - before; got != 2 {
		t.Errorf("views delta: got %v, want 2", got)
	}
}

func TestRecordSearch(t *testing.T) {
	before := testutil.ToFloat64(SearchesTotal)
	RecordSearch(4)
	if got := testutil.ToFloat64(SearchesTotal) - before; got != 1 {
		t.Errorf("searches delta: got %v, want 1", got)
	}
}

func TestMetricsLint(t *testing.T) {
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer,
		"folio_api_requests_total", "folio_content_views_total", "folio_searches_total")
	if err != nil {
		t.Fatalf("GatherAndLint: %v", err)
	}
	for _, p := range problems {
		t.Errorf("metric %s: %s", p.Metric, p.Text)
	}
}
