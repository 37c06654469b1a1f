package core

import (
	"context"
	"io"
	"net/url"
)

// Requester is what the resource services depend on to reach the API.
// Implementations decode the standard envelope into out (which may be nil),
// and return *APIError for non-2xx responses.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, out interface{}) error
	Post(ctx context.Context, path string, body, out interface{}) error
	Put(ctx context.Context, path string, query url.Values, body, out interface{}) error
	Delete(ctx context.Context, path string, query url.Values) error
}

// RawBody is a pre-encoded request body (e.g. multipart/form-data).
// A Requester sends it as-is instead of JSON-encoding it.
type RawBody struct {
	ContentType string
	Content     io.Reader
}
