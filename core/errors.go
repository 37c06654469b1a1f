package core

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// APIError is a non-2xx API response decoded from the standard
// `{message, errors, data}` envelope.
type APIError struct {
	Status  int
	Message string
	Fields  []FieldError
}

// Error returns the `errors[].message` entries joined as a list,
// or falls back to the envelope's top-level message.
func (err *APIError) Error() string {
	if len(err.Fields) > 0 {
		msgs := make([]string, 0, len(err.Fields))
		for _, fld := range err.Fields {
			msgs = append(msgs, fld.Error)
		}
		return strings.Join(msgs, "\n")
	}
	if err.Message != "" {
		return err.Message
	}
	return fmt.Sprintf("request failed with status %d", err.Status)
}

// ErrSessionExpired is returned on a 401 response, after the persisted
// session has been cleared.
var ErrSessionExpired = errors.New("session expired")

// IsAPIError unwraps err into an *APIError if it is one.
func IsAPIError(err error) (*APIError, bool) {
	apiErr, ok := errors.Cause(err).(*APIError)
	return apiErr, ok
}

// UserMessage derives a user-facing failure notification from err:
// the server envelope's message when there is one, fallback otherwise.
func UserMessage(err error, fallback string) string {
	if apiErr, ok := IsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
