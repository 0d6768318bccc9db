// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the catalog's content types: blog posts, projects,
// and the tagged Item variant that carries either one through search and
// the merged feed.
package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// ContentType distinguishes blog posts from projects. It is carried
// explicitly on every Item so the type never has to be inferred from shape.
type ContentType string

const (
	ContentTypeBlog    ContentType = "blog"
	ContentTypeProject ContentType = "project"
)

// ParseContentType maps a raw string to a known ContentType.
func ParseContentType(s string) (ContentType, bool) {
	switch ContentType(s) {
	case ContentTypeBlog:
		return ContentTypeBlog, true
	case ContentTypeProject:
		return ContentTypeProject, true
	}
	return "", false
}

// BlogPost is a long-form article. Views is kept as an integer and written
// as a decimal string on the wire, matching the stored text format.
type BlogPost struct {
	ID            string    `json:"id" yaml:"id"`
	Title         string    `json:"title" yaml:"title"`
	Slug          string    `json:"slug" yaml:"slug"`
	Excerpt       string    `json:"excerpt" yaml:"excerpt"`
	Content       string    `json:"content" yaml:"content"`
	FeaturedImage string    `json:"featuredImage" yaml:"featured_image"`
	Category      string    `json:"category" yaml:"category"`
	Tags          []string  `json:"tags" yaml:"tags"`
	ReadTime      string    `json:"readTime" yaml:"read_time"`
	PublishedAt   time.Time `json:"publishedAt" yaml:"published_at"`
	Views         int64     `json:"views,string" yaml:"views"`
}

// Project is a portfolio entry. DemoURL and GithubURL are optional.
type Project struct {
	ID            string    `json:"id" yaml:"id"`
	Title         string    `json:"title" yaml:"title"`
	Slug          string    `json:"slug" yaml:"slug"`
	Description   string    `json:"description" yaml:"description"`
	Content       string    `json:"content" yaml:"content"`
	FeaturedImage string    `json:"featuredImage" yaml:"featured_image"`
	Category      string    `json:"category" yaml:"category"`
	Tags          []string  `json:"tags" yaml:"tags"`
	DemoURL       *string   `json:"demoUrl" yaml:"demo_url"`
	GithubURL     *string   `json:"githubUrl" yaml:"github_url"`
	PublishedAt   time.Time `json:"publishedAt" yaml:"published_at"`
	Views         int64     `json:"views,string" yaml:"views"`
}

// Item is a blog post or a project tagged with its ContentType. Exactly one
// of Post and Project is set, matching Type.
type Item struct {
	Type    ContentType
	Post    *BlogPost
	Project *Project
}

// NewBlogItem wraps a copy of p as a blog Item.
func NewBlogItem(p BlogPost) Item {
	return Item{Type: ContentTypeBlog, Post: &p}
}

// NewProjectItem wraps a copy of p as a project Item.
func NewProjectItem(p Project) Item {
	return Item{Type: ContentTypeProject, Project: &p}
}

// Title returns the display title.
func (i Item) Title() string {
	if i.Type == ContentTypeBlog {
		return i.Post.Title
	}
	return i.Project.Title
}

// Slug returns the slug, unique within the item's type.
func (i Item) Slug() string {
	if i.Type == ContentTypeBlog {
		return i.Post.Slug
	}
	return i.Project.Slug
}

// Summary returns the excerpt of a post or the description of a project.
func (i Item) Summary() string {
	if i.Type == ContentTypeBlog {
		return i.Post.Excerpt
	}
	return i.Project.Description
}

func (i Item) Category() string {
	if i.Type == ContentTypeBlog {
		return i.Post.Category
	}
	return i.Project.Category
}

func (i Item) Tags() []string {
	if i.Type == ContentTypeBlog {
		return i.Post.Tags
	}
	return i.Project.Tags
}

func (i Item) PublishedAt() time.Time {
	if i.Type == ContentTypeBlog {
		return i.Post.PublishedAt
	}
	return i.Project.PublishedAt
}

func (i Item) Views() int64 {
	if i.Type == ContentTypeBlog {
		return i.Post.Views
	}
	return i.Project.Views
}

// itemJSON is the wire shape of an Item: {"type": "...", "item": {...}}.
type itemJSON struct {
	Type ContentType     `json:"type"`
	Item json.RawMessage `json:"item"`
}

// MarshalJSON writes the item with its type tag alongside the payload.
func (i Item) MarshalJSON() ([]byte, error) {
	var (
		payload []byte
		err     error
	)
	switch i.Type {
	case ContentTypeBlog:
		payload, err = json.Marshal(i.Post)
	case ContentTypeProject:
		payload, err = json.Marshal(i.Project)
	default:
		return nil, fmt.Errorf("marshal item: unknown content type %q", i.Type)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(itemJSON{Type: i.Type, Item: payload})
}

// UnmarshalJSON decodes the tagged wire shape back into the matching variant.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case ContentTypeBlog:
		var p BlogPost
		if err := json.Unmarshal(raw.Item, &p); err != nil {
			return fmt.Errorf("unmarshal blog item: %w", err)
		}
		*i = NewBlogItem(p)
	case ContentTypeProject:
		var p Project
		if err := json.Unmarshal(raw.Item, &p); err != nil {
			return fmt.Errorf("unmarshal project item: %w", err)
		}
		*i = NewProjectItem(p)
	default:
		return fmt.Errorf("unmarshal item: unknown content type %q", raw.Type)
	}
	return nil
}
