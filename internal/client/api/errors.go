package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps transport-level failures: the server could not
	// be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrMalformedResponse marks a 2xx response whose body is missing
	// fields the client depends on.
	ErrMalformedResponse = errors.New("malformed server response")
)

// APIError is a non-2xx response decoded from the backend's error body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is an APIError with HTTP 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 401
}
