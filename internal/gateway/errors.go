package gateway

import (
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the backend
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether the request may succeed if sent again
func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// NotFound reports whether the resource does not exist
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Conflict reports whether the backend refused the change, e.g. for a reviewed task
func (e *APIError) Conflict() bool {
	return e.StatusCode == http.StatusConflict
}

// TransportError wraps a failure to reach the backend at all
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Temporary is always true: nothing reached the backend
func (e *TransportError) Temporary() bool {
	return true
}
