package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-api-bootstrap/internal/app"
	"github.com/MKhiriev/go-api-bootstrap/internal/store"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order; the first match wins. Store errors come
// first because a failed ping may also wrap context.DeadlineExceeded.
var errorStatuses = []errorStatus{
	{store.ErrNotConnected, http.StatusServiceUnavailable, app.MsgDatabaseUnavailable},
	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable, app.MsgDatabaseUnavailable},

	{ErrMalformedBody, http.StatusBadRequest, ErrMalformedBody.Error()},
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge, ErrBodyTooLarge.Error()},
	{ErrRouteNotFound, http.StatusNotFound, ErrRouteNotFound.Error()},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed, ErrMethodNotAllowed.Error()},

	{context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgRequestTimedOut},
}

// statusFromError resolves the status code and client message for err.
// An [HTTPError] anywhere in the chain wins, then the sentinel table, then 500.
func statusFromError(err error) (int, string) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, httpErr.Message
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}

	return http.StatusInternalServerError, app.MsgSomethingWentWrong
}
