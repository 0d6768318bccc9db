// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"sort"
	"strings"

	"folio/internal/models"
)

// FilterAll disables feed filtering. The empty string is treated the same.
const FilterAll = "all"

// BuildFeed merges content into a single feed ordered by publication date,
// newest first. When the trimmed query is non-empty the working set is
// searchResults, otherwise every post followed by every project.
//
// filter selects what survives: FilterAll (or "") keeps everything, "blog"
// and "project" keep one type, and any other token keeps items whose
// category or one of whose tags equals it, ignoring case.
func BuildFeed(posts []models.BlogPost, projects []models.Project, searchResults []models.Item, query, filter string) []models.Item {
	var working []models.Item
	if strings.TrimSpace(query) != "" {
		working = searchResults
	} else {
		working = make([]models.Item, 0, len(posts)+len(projects))
		for _, p := range posts {
			working = append(working, models.NewBlogItem(p))
		}
		for _, p := range projects {
			working = append(working, models.NewProjectItem(p))
		}
	}

	feed := make([]models.Item, 0, len(working))
	for _, item := range working {
		if keep(item, filter) {
			feed = append(feed, item)
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].PublishedAt().After(feed[j].PublishedAt())
	})
	return feed
}

// Feed runs Search when query is non-empty and passes the result to
// BuildFeed. It is the full pipeline a consumer needs for one render.
func Feed(posts []models.BlogPost, projects []models.Project, query, filter string) []models.Item {
	var results []models.Item
	if strings.TrimSpace(query) != "" {
		results = Search(posts, projects, query, "")
	}
	return BuildFeed(posts, projects, results, query, filter)
}

func keep(item models.Item, filter string) bool {
	switch filter {
	case "", FilterAll:
		return true
	case string(models.ContentTypeBlog), string(models.ContentTypeProject):
		return string(item.Type) == filter
	}
	if strings.EqualFold(item.Category(), filter) {
		return true
	}
	for _, tag := range item.Tags() {
		if strings.EqualFold(tag, filter) {
			return true
		}
	}
	return false
}

// ByCategory returns the posts and projects whose category equals category,
// ignoring case. Blog posts come first.
func ByCategory(posts []models.BlogPost, projects []models.Project, category string) []models.Item {
	items := []models.Item{}
	for _, p := range posts {
		if strings.EqualFold(p.Category, category) {
			items = append(items, models.NewBlogItem(p))
		}
	}
	for _, p := range projects {
		if strings.EqualFold(p.Category, category) {
			items = append(items, models.NewProjectItem(p))
		}
	}
	return items
}

// Tags returns every distinct tag and category across both collections,
// lower-cased and sorted. Each value is a valid feed filter token.
func Tags(posts []models.BlogPost, projects []models.Project) []string {
	seen := make(map[string]struct{})
	add := func(s string) {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			seen[s] = struct{}{}
		}
	}
	for _, p := range posts {
		add(p.Category)
		for _, t := range p.Tags {
			add(t)
		}
	}
	for _, p := range projects {
		add(p.Category)
		for _, t := range p.Tags {
			add(t)
		}
	}

	tags := make([]string, 0, len(seen))
	for s := range seen {
		tags = append(tags, s)
	}
	sort.Strings(tags)
	return tags
}
