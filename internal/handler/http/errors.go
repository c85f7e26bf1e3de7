// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
)

// Controller list errors returned by [NewHandler].
var (
	ErrNilController       = errors.New("controller is nil")
	ErrNilControllerRouter = errors.New("controller router is nil")
	ErrInvalidMountPath    = errors.New("invalid controller mount path")
	ErrDuplicateMountPath  = errors.New("duplicate controller mount path")
)

// Request errors reported by the middleware chain. Their text is sent to the
// client as the error message.
var (
	// ErrMalformedBody is reported for a JSON body that does not parse, an
	// unparsable form or a broken gzip stream.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrBodyTooLarge is reported when the request body exceeds the
	// configured limit.
	ErrBodyTooLarge = errors.New("request entity too large")

	// ErrRouteNotFound is reported for paths no controller claims.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is reported when the path exists but the method is
	// not registered for it.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrPanicRecovered wraps the value of a recovered handler panic.
	ErrPanicRecovered = errors.New("panic recovered")
)

// HTTPError lets a controller choose the status code and client-facing
// message of a failure explicitly. Err, if set, is logged but never sent to
// the client.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

// NewHTTPError returns an [HTTPError]. An empty message is replaced by the
// status text.
func NewHTTPError(status int, message string, err error) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &HTTPError{Status: status, Message: message, Err: err}
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
