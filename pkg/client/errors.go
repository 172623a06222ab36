package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized means the token was missing, invalid or expired.
	// The client drops its stored token before returning it.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the id resolved to no record on the server.
	ErrNotFound = errors.New("not found")
)

// APIError is a non-2xx response from the server. Message carries the
// "error" field of the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known status codes onto sentinel errors so callers
// can use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}
