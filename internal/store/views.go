// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"log/slog"

	"folio/internal/models"
)

// Counter keeps view counts outside the content store so that several
// server instances observe the same numbers.
type Counter interface {
	// Counts returns the shared counts for the given slugs. Slugs that have
	// never been incremented are absent from the map.
	Counts(ctx context.Context, t models.ContentType, slugs []string) (map[string]int64, error)

	// Increment adds one to the shared count, first seeding it with base if
	// the counter does not exist yet.
	Increment(ctx context.Context, t models.ContentType, slug string, base int64) (int64, error)
}

// Counted wraps a ContentStore and serves view counts from a Counter.
type Counted struct {
	ContentStore
	counter Counter
}

// WithViewCounter layers counter over base. Reads overlay the shared counts
// onto items; a counter read failure falls back to the base values.
func WithViewCounter(base ContentStore, counter Counter) *Counted {
	return &Counted{ContentStore: base, counter: counter}
}

func (c *Counted) counts(ctx context.Context, t models.ContentType, slugs []string) map[string]int64 {
	m, err := c.counter.Counts(ctx, t, slugs)
	if err != nil {
		slog.Warn("view counter read failed", "type", t, "error", err)
		return nil
	}
	return m
}

func (c *Counted) ListBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := c.ContentStore.ListBlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, len(posts))
	for i, p := range posts {
		slugs[i] = p.Slug
	}
	m := c.counts(ctx, models.ContentTypeBlog, slugs)
	for i := range posts {
		if v, ok := m[posts[i].Slug]; ok {
			posts[i].Views = v
		}
	}
	return posts, nil
}

func (c *Counted) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := c.ContentStore.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, len(projects))
	for i, p := range projects {
		slugs[i] = p.Slug
	}
	m := c.counts(ctx, models.ContentTypeProject, slugs)
	for i := range projects {
		if v, ok := m[projects[i].Slug]; ok {
			projects[i].Views = v
		}
	}
	return projects, nil
}

func (c *Counted) BlogPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	p, err := c.ContentStore.BlogPostBySlug(ctx, slug)
	if err != nil {
		return p, err
	}
	if v, ok := c.counts(ctx, models.ContentTypeBlog, []string{slug})[slug]; ok {
		p.Views = v
	}
	return p, nil
}

func (c *Counted) ProjectBySlug(ctx context.Context, slug string) (models.Project, error) {
	p, err := c.ContentStore.ProjectBySlug(ctx, slug)
	if err != nil {
		return p, err
	}
	if v, ok := c.counts(ctx, models.ContentTypeProject, []string{slug})[slug]; ok {
		p.Views = v
	}
	return p, nil
}

// IncrementViews checks the item exists in the base store and increments the
// shared counter. The base store's own counter is left untouched.
func (c *Counted) IncrementViews(ctx context.Context, t models.ContentType, slug string) error {
	var base int64
	switch t {
	case models.ContentTypeBlog:
		p, err := c.ContentStore.BlogPostBySlug(ctx, slug)
		if err != nil {
			return err
		}
		base = p.Views
	case models.ContentTypeProject:
		p, err := c.ContentStore.ProjectBySlug(ctx, slug)
		if err != nil {
			return err
		}
		base = p.Views
	default:
		return ErrNotFound
	}

	if _, err := c.counter.Increment(ctx, t, slug, base); err != nil {
		return fmt.Errorf("increment shared views: %w", err)
	}
	return nil
}
