// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the handler tests:
// a seeded in-memory store, a failing store, and a router that mounts the
// handlers on their production paths.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"folio/internal/models"
	"folio/internal/seed"
	"folio/internal/store"
)

func testStore(t *testing.T) *store.Memory {
	t.Helper()
	c, err := seed.Default()
	if err != nil {
		t.Fatalf("seed.Default: %v", err)
	}
	return store.NewMemoryFromCatalog(c)
}

// testRouter mounts the content and feed handlers over s.
func testRouter(s store.ContentStore) http.Handler {
	h := NewContent(s)
	rss := NewRSS(s, "Folio", "https://folio.example/")

	r := chi.NewRouter()
	r.Get("/feed.xml", rss.Feed)
	r.Route("/api", func(r chi.Router) {
		r.Get("/blog", h.ListBlogPosts)
		r.Get("/blog/{slug}", h.GetBlogPost)
		r.Get("/projects", h.ListProjects)
		r.Get("/projects/{slug}", h.GetProject)
		r.Get("/search", h.Search)
		r.Get("/category/{category}", h.ByCategory)
		r.Get("/feed", h.Feed)
		r.Get("/tags", h.Tags)
	})
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	decode(t, rr, &body)
	return body.Error
}

// brokenStore fails every call with an internal error.
type brokenStore struct{}

var errBroken = errors.New("connection reset")

func (brokenStore) ListBlogPosts(context.Context) ([]models.BlogPost, error) { return nil, errBroken }
func (brokenStore) ListProjects(context.Context) ([]models.Project, error) { return nil, errBroken }
func (brokenStore) BlogPostBySlug(context.Context, string) (models.BlogPost, error) {
	return models.BlogPost{}, errBroken
}
func (brokenStore) ProjectBySlug(context.Context, string) (models.Project, error) {
	return models.Project{}, errBroken
}
func (brokenStore) IncrementViews(context.Context, models.ContentType, string) error {
	return errBroken
}

// stuckCounter wraps a store whose increments always fail.
type stuckCounter struct {
	store.ContentStore
}

func (stuckCounter) IncrementViews(context.Context, models.ContentType, string) error {
	return errBroken
}
