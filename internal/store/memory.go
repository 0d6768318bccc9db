// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"slices"
	"sync"

	"folio/internal/models"
	"folio/internal/seed"
)

// Memory is the default in-process ContentStore. Items live in slices in
// seed order and are indexed by slug; view counters are updated in place
// under the write lock, so concurrent increments are never lost.
type Memory struct {
	mu       sync.RWMutex
	posts    []models.BlogPost
	projects []models.Project
	postIdx  map[string]int
	projIdx  map[string]int
}

// NewMemory creates a Memory store holding copies of the given items.
func NewMemory(posts []models.BlogPost, projects []models.Project) *Memory {
	m := &Memory{
		posts:    make([]models.BlogPost, len(posts)),
		projects: make([]models.Project, len(projects)),
		postIdx:  make(map[string]int, len(posts)),
		projIdx:  make(map[string]int, len(projects)),
	}
	for i, p := range posts {
		m.posts[i] = clonePost(p)
		m.postIdx[p.Slug] = i
	}
	for i, p := range projects {
		m.projects[i] = cloneProject(p)
		m.projIdx[p.Slug] = i
	}
	return m
}

// NewMemoryFromCatalog creates a Memory store from a seed catalog.
func NewMemoryFromCatalog(c *seed.Catalog) *Memory {
	return NewMemory(c.BlogPosts, c.Projects)
}

// ListBlogPosts returns copies of all blog posts in seed order.
func (m *Memory) ListBlogPosts(_ context.Context) ([]models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.BlogPost, len(m.posts))
	for i, p := range m.posts {
		out[i] = clonePost(p)
	}
	return out, nil
}

// ListProjects returns copies of all projects in seed order.
func (m *Memory) ListProjects(_ context.Context) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Project, len(m.projects))
	for i, p := range m.projects {
		out[i] = cloneProject(p)
	}
	return out, nil
}

// BlogPostBySlug returns a copy of the post with the given slug.
func (m *Memory) BlogPostBySlug(_ context.Context, slug string) (models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.postIdx[slug]
	if !ok {
		return models.BlogPost{}, ErrNotFound
	}
	return clonePost(m.posts[i]), nil
}

// ProjectBySlug returns a copy of the project with the given slug.
func (m *Memory) ProjectBySlug(_ context.Context, slug string) (models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.projIdx[slug]
	if !ok {
		return models.Project{}, ErrNotFound
	}
	return cloneProject(m.projects[i]), nil
}

// IncrementViews adds one to the matched item's counter.
func (m *Memory) IncrementViews(_ context.Context, t models.ContentType, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch t {
	case models.ContentTypeBlog:
		i, ok := m.postIdx[slug]
		if !ok {
			return ErrNotFound
		}
		m.posts[i].Views++
	case models.ContentTypeProject:
		i, ok := m.projIdx[slug]
		if !ok {
			return ErrNotFound
		}
		m.projects[i].Views++
	default:
		return ErrNotFound
	}
	return nil
}

// clonePost copies p so the caller cannot reach the store's tag slice.
func clonePost(p models.BlogPost) models.BlogPost {
	p.Tags = slices.Clone(p.Tags)
	return p
}

func cloneProject(p models.Project) models.Project {
	p.Tags = slices.Clone(p.Tags)
	if p.DemoURL != nil {
		v := *p.DemoURL
		p.DemoURL = &v
	}
	if p.GithubURL != nil {
		v := *p.GithubURL
		p.GithubURL = &v
	}
	return p
}
