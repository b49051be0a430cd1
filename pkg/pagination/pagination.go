// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pagination parses page-based list parameters and builds the metadata
block of paginated responses.

Query parameters:

  - page: 1-indexed page number, default [DefaultPage].
  - limit: items per page, default [DefaultLimit], at most [MaxLimit].
    page_size is accepted as an alias; limit wins when both are sent.

Out-of-range or non-numeric values fall back to the defaults instead of
failing the request.
*/
package pagination

import (
	"net/http"

	"github.com/taibuivan/libris/pkg/convert"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params is a resolved page window.
type Params struct {
	Page  int
	Limit int
}

// Offset is the number of rows before the window.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta builds the response metadata for a result set of total rows.
func (p Params) Meta(total int) Meta {
	return NewMeta(p.Page, p.Limit, total)
}

// Meta is the "meta" block of a paginated response.
type Meta struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewMeta derives total_pages and the navigation flags from total.
func NewMeta(page, limit, total int) Meta {
	meta := Meta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = (total + limit - 1) / limit
	}
	meta.HasNext = page < meta.TotalPages
	meta.HasPrevious = page > 1
	return meta
}

// FromRequest reads page and limit (or page_size) from the query string.
func FromRequest(request *http.Request) Params {
	query := request.URL.Query()

	rawLimit := query.Get("limit")
	if rawLimit == "" {
		rawLimit = query.Get("page_size")
	}

	return Params{
		Page:  clamp(query.Get("page"), DefaultPage, 1<<31-1),
		Limit: clamp(rawLimit, DefaultLimit, MaxLimit),
	}
}

// clamp parses raw and returns fallback unless it lies in [1, upper].
func clamp(raw string, fallback, upper int) int {
	value, ok := convert.OptionalInt(raw)
	if !ok || value == nil || *value < 1 || *value > upper {
		return fallback
	}
	return *value
}
