package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-api-bootstrap/internal/app"
	"github.com/MKhiriev/go-api-bootstrap/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"http error", NewHTTPError(http.StatusForbidden, "no access", nil), http.StatusForbidden, "no access"},
		{"not connected", store.ErrNotConnected, http.StatusServiceUnavailable, "database is not available"},
		{
			"failed ping wrapping a deadline",
			fmt.Errorf("%w: %w", store.ErrDatabaseUnavailable, context.DeadlineExceeded),
			http.StatusServiceUnavailable,
			"database is not available",
		},
		{"body too large", fmt.Errorf("%w: limit", ErrBodyTooLarge), http.StatusRequestEntityTooLarge, "request entity too large"},
		{"route not found", ErrRouteNotFound, http.StatusNotFound, "route not found"},
		{"method not allowed", ErrMethodNotAllowed, http.StatusMethodNotAllowed, "method not allowed"},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "request timed out"},
		{"panic", fmt.Errorf("%w: nil map", ErrPanicRecovered), http.StatusInternalServerError, app.MsgSomethingWentWrong},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgSomethingWentWrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMessage, message)
		})
	}
}
