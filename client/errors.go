package client

import clienterrors "github.com/audiolux/audiolux/client/internal/errors"

// RequestError is the single error kind returned by client operations.
type RequestError = clienterrors.RequestError

// ErrStatus is wrapped by RequestErrors caused by a non-2xx response.
var ErrStatus = clienterrors.ErrStatus

// IsRequestError reports whether err is, or wraps, a *RequestError.
func IsRequestError(err error) bool { return clienterrors.IsRequestError(err) }

// StatusCode returns the HTTP status carried by err, or 0 if none.
func StatusCode(err error) int { return clienterrors.StatusCode(err) }
