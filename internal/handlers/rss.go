// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"folio/internal/markdown"
	"folio/internal/store"
)

type rssXML struct {
	XMLName   xml.Name   `xml:"rss"`
	Version   string     `xml:"version,attr"`
	ContentNS string     `xml:"xmlns:content,attr"`
	Channel   rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Content     rssCDATA `xml:"content:encoded"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate"`
	GUID        rssGUID  `xml:"guid"`
}

type rssCDATA struct {
	Text string `xml:",cdata"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// RSS serves the blog as an RSS 2.0 feed.
type RSS struct {
	store    store.ContentStore
	siteName string
	siteURL  string
}

// NewRSS creates the feed handler. siteURL is the public base URL used to
// build item links.
func NewRSS(s store.ContentStore, siteName, siteURL string) *RSS {
	return &RSS{store: s, siteName: siteName, siteURL: strings.TrimRight(siteURL, "/")}
}

// Feed handles GET /feed.xml. Posts are listed newest first with their
// Markdown bodies rendered into content:encoded.
func (h *RSS) Feed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListBlogPosts(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to fetch blog posts", err)
		return
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})

	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		body, err := markdown.ToHTML(p.Content)
		if err != nil {
			slog.Warn("render post for feed failed", "slug", p.Slug, "error", err)
			body = ""
		}
		link := h.siteURL + "/blog/" + p.Slug
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Excerpt,
			Content:     rssCDATA{Text: body},
			Categories:  append([]string{p.Category}, p.Tags...),
			PubDate:     p.PublishedAt.Format(time.RFC1123Z),
			GUID:        rssGUID{IsPermaLink: true, Value: link},
		})
	}

	feed := rssXML{
		Version:   "2.0",
		ContentNS: "http://purl.org/rss/1.0/modules/content/",
		Channel: rssChannel{
			Title:       h.siteName,
			Link:        h.siteURL,
			Description: h.siteName + " blog",
			Items:       items,
		},
	}
	if len(posts) > 0 {
		feed.Channel.LastBuildDate = posts[0].PublishedAt.Format(time.RFC1123Z)
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(feed); err != nil {
		slog.Warn("encode rss feed failed", "error", err)
	}
}
