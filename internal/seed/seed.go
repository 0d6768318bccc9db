// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seed provides the fixed catalog of blog posts and projects that
// stores are populated with at startup. The dataset ships embedded in the
// binary as YAML; a different file can be supplied with Parse.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"folio/internal/markdown"
	"folio/internal/models"
	"folio/internal/slug"
)

//go:embed content.yaml
var defaultContent []byte

// Catalog is the decoded seed dataset.
type Catalog struct {
	BlogPosts []models.BlogPost `yaml:"blog_posts"`
	Projects  []models.Project  `yaml:"projects"`
}

// Default returns the embedded seed catalog.
func Default() (*Catalog, error) {
	return Parse(defaultContent)
}

// Parse decodes a YAML catalog and normalizes it: records without an id get
// a random UUID, records without a slug get one derived from the title, posts
// without a read time get an estimate, and slugs must be unique within each
// collection.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}

	seen := make(map[string]bool)
	for i := range c.BlogPosts {
		p := &c.BlogPosts[i]
		if err := normalize(&p.ID, &p.Slug, p.Title); err != nil {
			return nil, fmt.Errorf("blog post %d: %w", i, err)
		}
		if seen[p.Slug] {
			return nil, fmt.Errorf("duplicate blog post slug %q", p.Slug)
		}
		seen[p.Slug] = true
		if p.Tags == nil {
			p.Tags = []string{}
		}
		if p.ReadTime == "" {
			p.ReadTime = markdown.ReadTime(p.Content)
		}
	}

	seen = make(map[string]bool)
	for i := range c.Projects {
		p := &c.Projects[i]
		if err := normalize(&p.ID, &p.Slug, p.Title); err != nil {
			return nil, fmt.Errorf("project %d: %w", i, err)
		}
		if seen[p.Slug] {
			return nil, fmt.Errorf("duplicate project slug %q", p.Slug)
		}
		seen[p.Slug] = true
		if p.Tags == nil {
			p.Tags = []string{}
		}
	}

	return &c, nil
}

func normalize(id, s *string, title string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if *id == "" {
		*id = uuid.NewString()
	}
	if *s == "" {
		*s = slug.Generate(title)
	}
	if !slug.Valid(*s) {
		return fmt.Errorf("slug %q is not url-safe", *s)
	}
	return nil
}
