// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog implements the content engine behind the API: free-text
// search over both collections, the merged and filtered feed, and the
// "load more" cursor that slices it.
package catalog

import (
	"strings"

	"folio/internal/models"
)

// Search returns every blog post and project whose title, summary, tags or
// category contain query, ignoring case. Blog matches come first, each group
// in input order. A blank query yields an empty slice.
//
// only restricts the scan to one collection when it is ContentTypeBlog or
// ContentTypeProject; any other value scans both.
func Search(posts []models.BlogPost, projects []models.Project, query string, only models.ContentType) []models.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	results := []models.Item{}
	if q == "" {
		return results
	}

	if only != models.ContentTypeProject {
		for _, p := range posts {
			if matches(q, p.Title, p.Excerpt, p.Category, p.Tags) {
				results = append(results, models.NewBlogItem(p))
			}
		}
	}
	if only != models.ContentTypeBlog {
		for _, p := range projects {
			if matches(q, p.Title, p.Description, p.Category, p.Tags) {
				results = append(results, models.NewProjectItem(p))
			}
		}
	}
	return results
}

// matches reports whether the lower-cased needle q occurs in any field.
func matches(q, title, summary, category string, tags []string) bool {
	if contains(title, q) || contains(summary, q) || contains(category, q) {
		return true
	}
	for _, tag := range tags {
		if contains(tag, q) {
			return true
		}
	}
	return false
}

func contains(field, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}
