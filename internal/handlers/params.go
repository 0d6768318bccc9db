// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"folio/internal/catalog"
	"folio/internal/models"
)

var validate = validator.New()

// errInvalidLimit is returned when the feed limit is not an integer.
var errInvalidLimit = errors.New("limit must be an integer")

// searchParams are the query parameters of GET /api/search.
type searchParams struct {
	Query string             `validate:"required,max=200"`
	Type  models.ContentType `validate:"omitempty,oneof=blog project"`
}

// parseSearchParams reads q and type. An unrecognised type is dropped so the
// search scans both collections.
func parseSearchParams(r *http.Request) (searchParams, error) {
	q := r.URL.Query()
	p := searchParams{Query: strings.TrimSpace(q.Get("q"))}
	if t, ok := models.ParseContentType(q.Get("type")); ok {
		p.Type = t
	}
	return p, validate.Struct(p)
}

// feedParams are the query parameters of GET /api/feed.
type feedParams struct {
	Query  string `validate:"max=200"`
	Filter string `validate:"max=100"`
	Limit  int    `validate:"min=1,max=1000"`
}

func parseFeedParams(r *http.Request) (feedParams, error) {
	q := r.URL.Query()
	p := feedParams{
		Query:  strings.TrimSpace(q.Get("q")),
		Filter: strings.TrimSpace(q.Get("filter")),
		Limit:  catalog.PageSize,
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, errInvalidLimit
		}
		p.Limit = n
	}
	return p, validate.Struct(p)
}
