// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API and the RSS feed on top of a
// content store and the catalog engine.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"folio/internal/catalog"
	"folio/internal/metrics"
	"folio/internal/models"
	"folio/internal/store"
)

// Content groups the read-only content endpoints.
type Content struct {
	store store.ContentStore
}

// NewContent creates a Content handler group over s.
func NewContent(s store.ContentStore) *Content {
	return &Content{store: s}
}

// FeedResponse is the body of GET /api/feed.
type FeedResponse struct {
	Items   []models.Item `json:"items"`
	Total   int           `json:"total"`
	HasMore bool          `json:"hasMore"`
}

// ListBlogPosts handles GET /api/blog.
func (h *Content) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListBlogPosts(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to fetch blog posts", err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

// GetBlogPost handles GET /api/blog/{slug}. The response carries the view
// count read before this request's increment.
func (h *Content) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.store.BlogPostBySlug(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, "Blog post not found", nil)
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to fetch blog post", err)
		return
	}

	h.countView(r, models.ContentTypeBlog, slug)
	respondJSON(w, http.StatusOK, post)
}

// ListProjects handles GET /api/projects.
func (h *Content) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to fetch projects", err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{slug}.
func (h *Content) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.store.ProjectBySlug(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, "Project not found", nil)
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to fetch project", err)
		return
	}

	h.countView(r, models.ContentTypeProject, slug)
	respondJSON(w, http.StatusOK, project)
}

// countView increments the item's counter. The read already succeeded, so
// a failure here is logged and the response still goes out.
func (h *Content) countView(r *http.Request, t models.ContentType, slug string) {
	if err := h.store.IncrementViews(r.Context(), t, slug); err != nil {
		slog.Warn("increment views failed", "type", t, "slug", slug, "error", err)
		return
	}
	metrics.RecordView(t)
}

// Search handles GET /api/search?q=...&type=blog|project.
func (h *Content) Search(w http.ResponseWriter, r *http.Request) {
	p, err := parseSearchParams(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, searchParamsMessage(err), nil)
		return
	}

	posts, projects, err := h.lists(r)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Search failed", err)
		return
	}

	results := catalog.Search(posts, projects, p.Query, p.Type)
	metrics.RecordSearch(len(results))
	respondJSON(w, http.StatusOK, results)
}

func searchParamsMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Query" && fe.Tag() == "required" {
				return "Search query is required"
			}
		}
	}
	return "Invalid search query"
}

// ByCategory handles GET /api/category/{category}.
func (h *Content) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if decoded, err := url.PathUnescape(category); err == nil {
		category = decoded
	}

	posts, projects, err := h.lists(r)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to fetch content by category", err)
		return
	}
	respondJSON(w, http.StatusOK, catalog.ByCategory(posts, projects, category))
}

// Feed handles GET /api/feed?q=...&filter=...&limit=n. It returns the first
// limit items of the merged feed and whether more remain.
func (h *Content) Feed(w http.ResponseWriter, r *http.Request) {
	p, err := parseFeedParams(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid feed parameters", nil)
		return
	}

	posts, projects, err := h.lists(r)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to build feed", err)
		return
	}

	feed := catalog.Feed(posts, projects, p.Query, p.Filter)
	if p.Query != "" {
		metrics.RecordSearch(len(feed))
	}

	respondJSON(w, http.StatusOK, FeedResponse{
		Items:   feed[:min(p.Limit, len(feed))],
		Total:   len(feed),
		HasMore: p.Limit < len(feed),
	})
}

// Tags handles GET /api/tags.
func (h *Content) Tags(w http.ResponseWriter, r *http.Request) {
	posts, projects, err := h.lists(r)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to fetch tags", err)
		return
	}
	respondJSON(w, http.StatusOK, catalog.Tags(posts, projects))
}

func (h *Content) lists(r *http.Request) ([]models.BlogPost, []models.Project, error) {
	posts, err := h.store.ListBlogPosts(r.Context())
	if err != nil {
		return nil, nil, err
	}
	projects, err := h.store.ListProjects(r.Context())
	if err != nil {
		return nil, nil, err
	}
	return posts, projects, nil
}
