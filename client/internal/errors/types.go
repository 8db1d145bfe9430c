// Package errors defines the single error kind surfaced by the client SDK.
package errors

import (
	"errors"
	"fmt"
)

// RequestError is returned by every client operation that fails: transport
// failures, connection refusal, non-2xx statuses, undecodable bodies and
// request bodies that cannot be encoded.
type RequestError struct {
	Op         string // logical operation, e.g. "get settings"
	Method     string
	URL        string
	StatusCode int    // 0 when no response was received
	Body       string // response body, kept for diagnostics
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s %s: HTTP %d: %v", e.Op, e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsRequestError reports whether err is, or wraps, a *RequestError.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}
