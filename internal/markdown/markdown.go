// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown renders article and project bodies, which are stored as
// Markdown, into HTML for feed readers.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithXHTML(),
	),
)

// ToHTML converts Markdown source into HTML. Raw HTML in the source is
// dropped.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// ReadTime estimates reading time at 200 words per minute, formatted the
// way the seed data writes it ("8 min read"). The minimum is one minute.
func ReadTime(source string) string {
	words := len(strings.Fields(source))
	minutes := max((words+199)/200, 1)
	return fmt.Sprintf("%d min read", minutes)
}
