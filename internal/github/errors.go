package github

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRequest indicates the request could not be sent or its response read.
	ErrRequest = errors.New("github request failed")

	// ErrUnexpectedResponse indicates a success status with an unusable body.
	ErrUnexpectedResponse = errors.New("unexpected github response")
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	// Message is the API's own "message" field, empty when absent.
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if msg == "" {
		msg = "unknown error"
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

// Detail returns the upstream message, or the status text when the API sent none.
func (e *APIError) Detail() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
