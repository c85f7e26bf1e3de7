package http

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-api-bootstrap/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
	}{
		{"trace ID from request header is reused", "my-custom-trace-id", true},
		{"uuid from request header is reused", "0190f5b2-8c1e-7a3b-9c2d-4e5f60718293", true},
		{"no trace ID in request, one is generated", "", false},
		{"trace ID with forbidden characters is replaced", "bad id\n{json}", false},
		{"overlong trace ID is replaced", strings.Repeat("a", maxTraceIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := newTestHandler(testServerConfig())
			h.logger = newBufferLogger(&logBuf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside handler")
			})

			req := newRequest(http.MethodGet, "/test")
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := serve(h.withTraceID(next), req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}
			assert.Contains(t, logBuf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler(testServerConfig())
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	seen := make(map[string]struct{})
	for range 20 {
		rr := serve(handler, newRequest(http.MethodGet, "/"))
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 20)
}

func TestWithTraceID_DoesNotLeakIntoParentLogger(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(testServerConfig())
	h.logger = newBufferLogger(&logBuf)

	serve(h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})), newRequest(http.MethodGet, "/"))
	h.logger.Info().Msg("after request")

	assert.NotContains(t, logBuf.String(), "trace_id")
}
