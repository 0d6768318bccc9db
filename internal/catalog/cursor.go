// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import "folio/internal/models"

// PageSize is the initial window and the step added by Advance.
const PageSize = 6

// Cursor tracks how many feed items a consumer currently shows. It does not
// know which feed it is applied to and never resets on its own.
type Cursor struct {
	visible int
}

// NewCursor returns a cursor showing the first PageSize items.
func NewCursor() *Cursor {
	return &Cursor{visible: PageSize}
}

// Visible returns the current window size, which may exceed the feed length.
func (c *Cursor) Visible() int {
	return c.visible
}

// Window returns the visible prefix of feed.
func (c *Cursor) Window(feed []models.Item) []models.Item {
	return feed[:min(c.visible, len(feed))]
}

// Advance grows the window by PageSize.
func (c *Cursor) Advance() {
	c.visible += PageSize
}

// HasMore reports whether feed holds items beyond the window.
func (c *Cursor) HasMore(feed []models.Item) bool {
	return c.visible < len(feed)
}

// Reset shrinks the window back to PageSize.
func (c *Cursor) Reset() {
	c.visible = PageSize
}
