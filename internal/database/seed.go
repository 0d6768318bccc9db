// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	"folio/internal/seed"
)

// Seed loads the catalog into blog_posts and projects. It does nothing when
// either table already holds rows, so it is safe to call on every start.
func Seed(ctx context.Context, db *sql.DB, c *seed.Catalog) error {
	var count int
	if err := db.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM blog_posts) + (SELECT COUNT(*) FROM projects)
	`).Scan(&count); err != nil {
		return fmt.Errorf("seed check content: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	for _, p := range c.BlogPosts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO blog_posts (id, title, slug, excerpt, content, featured_image,
			                        category, tags, read_time, published_at, views)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage,
			p.Category, p.Tags, p.ReadTime, p.PublishedAt, strconv.FormatInt(p.Views, 10))
		if err != nil {
			return fmt.Errorf("seed insert blog post %q: %w", p.Slug, err)
		}
	}

	for _, p := range c.Projects {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projects (id, title, slug, description, content, featured_image,
			                      category, tags, demo_url, github_url, published_at, views)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, p.ID, p.Title, p.Slug, p.Description, p.Content, p.FeaturedImage,
			p.Category, p.Tags, p.DemoURL, p.GithubURL, p.PublishedAt, strconv.FormatInt(p.Views, 10))
		if err != nil {
			return fmt.Errorf("seed insert project %q: %w", p.Slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded",
		"blog_posts", len(c.BlogPosts),
		"projects", len(c.Projects),
	)
	return nil
}
