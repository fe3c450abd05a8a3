package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse marks a response that decoded but is missing the
// fields the endpoint contract promises.
var ErrMalformedResponse = errors.New("api: malformed response")

// Error is a backend rejection carrying the HTTP status and the
// backend-supplied message, so callers can surface it verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// IsUnauthorized reports whether err is a 401 rejection from the backend.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Message extracts the backend-supplied message from err, falling back to
// err.Error() for transport failures.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
