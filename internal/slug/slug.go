// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives and checks the URL-safe identifiers used to address
// blog posts and projects.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonSlugChars matches anything that isn't a letter, digit, whitespace, or hyphen.
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	// separators collapses runs of whitespace and hyphens into one hyphen.
	separators = regexp.MustCompile(`[\s-]+`)
	// valid matches lowercase words joined by single hyphens.
	valid = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Generate creates a slug from a title.
// Example: "The Art of Minimalist Web Design" → "the-art-of-minimalist-web-design"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonSlugChars.ReplaceAllString(result, "")
	result = separators.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Valid reports whether s is already in slug form.
func Valid(s string) bool {
	return valid.MatchString(s)
}
