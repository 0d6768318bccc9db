// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the two content collections and the operations the
// API and the feed builder read them through: list, lookup by slug, and
// view-count increments.
package store

import (
	"context"
	"errors"

	"folio/internal/models"
)

// ErrNotFound is returned when no item matches a slug or content type.
var ErrNotFound = errors.New("content not found")

// ContentStore is implemented by every content backend. Lookups are exact
// and case-sensitive on slug. Malformed input never produces an error other
// than ErrNotFound.
type ContentStore interface {
	ListBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	BlogPostBySlug(ctx context.Context, slug string) (models.BlogPost, error)
	ProjectBySlug(ctx context.Context, slug string) (models.Project, error)

	// IncrementViews adds exactly one to the item's view counter.
	IncrementViews(ctx context.Context, t models.ContentType, slug string) error
}
