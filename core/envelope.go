package core

import (
	"encoding/json"
	"net/url"
	"strconv"
)

type (
	// Envelope is the `{message, errors, data}` wrapper every API response uses.
	Envelope struct {
		Message string          `json:"message"`
		Errors  []EnvelopeError `json:"errors"`
		Data    json.RawMessage `json:"data,omitempty"`
	}

	EnvelopeError struct {
		Key     string `json:"key"`
		Message string `json:"message"`
	}

	// Page is one page of a server-owned collection.
	Page[T any] struct {
		Page    int `json:"page"`
		PerPage int `json:"perPage"`
		Total   int `json:"total"`
		Pages   int `json:"pages"`
		List    []T `json:"list"`
	}
)

// ListFilter selects a page of a collection, optionally narrowed by a search term.
type ListFilter struct {
	Page    int
	PerPage int
	Search  string
}

func (f ListFilter) Query() url.Values {
	page, perPage := f.Page, f.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	q := make(url.Values)
	q.Set("page", strconv.Itoa(page))
	q.Set("perPage", strconv.Itoa(perPage))
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}
