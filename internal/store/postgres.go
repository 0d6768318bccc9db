// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"folio/internal/models"
)

// Postgres is a ContentStore backed by the blog_posts and projects tables.
// The views column is TEXT; increments cast it to bigint inside a single
// UPDATE so the row lock serializes concurrent writers.
type Postgres struct {
	db    *sql.DB
	types *pgtype.Map
}

// NewPostgres creates a Postgres store with the given database connection.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db, types: pgtype.NewMap()}
}

const blogColumns = `id, title, slug, excerpt, content, featured_image, category,
		       tags, read_time, published_at, views::bigint`

const projectColumns = `id, title, slug, description, content, featured_image, category,
		       tags, demo_url, github_url, published_at, views::bigint`

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Postgres) scanPost(r rowScanner) (models.BlogPost, error) {
	var p models.BlogPost
	err := r.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage,
		&p.Category, s.types.SQLScanner(&p.Tags), &p.ReadTime, &p.PublishedAt, &p.Views,
	)
	if err != nil {
		return p, err
	}
	p.PublishedAt = p.PublishedAt.UTC()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}

func (s *Postgres) scanProject(r rowScanner) (models.Project, error) {
	var p models.Project
	err := r.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.Content, &p.FeaturedImage,
		&p.Category, s.types.SQLScanner(&p.Tags), &p.DemoURL, &p.GithubURL,
		&p.PublishedAt, &p.Views,
	)
	if err != nil {
		return p, err
	}
	p.PublishedAt = p.PublishedAt.UTC()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}

// ListBlogPosts returns all blog posts, newest first.
func (s *Postgres) ListBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+blogColumns+`
		FROM blog_posts
		ORDER BY published_at DESC, slug
	`)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	posts := []models.BlogPost{}
	for rows.Next() {
		p, err := s.scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListProjects returns all projects, newest first.
func (s *Postgres) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		ORDER BY published_at DESC, slug
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := s.scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// BlogPostBySlug retrieves a blog post by its slug.
func (s *Postgres) BlogPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1`, slug)
	p, err := s.scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BlogPost{}, ErrNotFound
	}
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("find blog post by slug: %w", err)
	}
	return p, nil
}

// ProjectBySlug retrieves a project by its slug.
func (s *Postgres) ProjectBySlug(ctx context.Context, slug string) (models.Project, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE slug = $1`, slug)
	p, err := s.scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("find project by slug: %w", err)
	}
	return p, nil
}

// IncrementViews adds one to the stored counter of the matched row.
func (s *Postgres) IncrementViews(ctx context.Context, t models.ContentType, slug string) error {
	var query string
	switch t {
	case models.ContentTypeBlog:
		query = `UPDATE blog_posts SET views = (views::bigint + 1)::text WHERE slug = $1`
	case models.ContentTypeProject:
		query = `UPDATE projects SET views = (views::bigint + 1)::text WHERE slug = $1`
	default:
		return ErrNotFound
	}

	res, err := s.db.ExecContext(ctx, query, slug)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment views rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
