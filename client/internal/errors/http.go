package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrStatus is wrapped by errors built from a non-2xx response.
var ErrStatus = errors.New("unexpected status")

// NewHTTPError builds a RequestError for a response outside the 2xx range.
func NewHTTPError(op string, req *http.Request, statusCode int, body string) *RequestError {
	return &RequestError{
		Op:         op,
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: statusCode,
		Body:       body,
		Err:        fmt.Errorf("%w %s", ErrStatus, http.StatusText(statusCode)),
	}
}

// NewNetworkError builds a RequestError for a failure before any response
// arrived (refused connection, DNS, reset, canceled context).
func NewNetworkError(op string, req *http.Request, err error) *RequestError {
	return &RequestError{
		Op:     op,
		Method: req.Method,
		URL:    req.URL.String(),
		Err:    fmt.Errorf("network error: %w", err),
	}
}

// NewBuildError builds a RequestError for a request that could not be
// constructed, e.g. a body that cannot be JSON encoded.
func NewBuildError(op, method, url string, err error) *RequestError {
	return &RequestError{
		Op:     op,
		Method: method,
		URL:    url,
		Err:    err,
	}
}
