package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable wraps transport failures (server down, timeout).
var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-2xx response. Transport failures are reported with
// Status 500 and wrap ErrUnavailable.
type APIError struct {
	Status  int
	Message string
	err     error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.err }

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

func transportError(err error) *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: ErrUnavailable.Error(),
		err:     fmt.Errorf("%w: %v", ErrUnavailable, err),
	}
}
