package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name            string
		allowedOrigins  []string
		method          string
		origin          string
		requestMethod   string
		requestHeaders  string
		expectedCode    int
		expectedOrigin  string
		expectedMethods string
		expectedHeaders string
		expectedVary    []string
		nextCalled      bool
	}{
		{
			name:           "any origin by default",
			method:         http.MethodGet,
			origin:         "https://client.example",
			expectedCode:   http.StatusOK,
			expectedOrigin: "*",
			nextCalled:     true,
		},
		{
			name:           "wildcard among configured origins",
			allowedOrigins: []string{"https://a.example", "*"},
			method:         http.MethodGet,
			origin:         "https://other.example",
			expectedCode:   http.StatusOK,
			expectedOrigin: "*",
			nextCalled:     true,
		},
		{
			name:           "listed origin is echoed",
			allowedOrigins: []string{"https://a.example", "https://b.example/"},
			method:         http.MethodGet,
			origin:         "https://b.example",
			expectedCode:   http.StatusOK,
			expectedOrigin: "https://b.example",
			expectedVary:   []string{"Origin"},
			nextCalled:     true,
		},
		{
			name:           "listed origin with surrounding spaces is echoed",
			allowedOrigins: []string{"https://a.example", " https://b.example"},
			method:         http.MethodGet,
			origin:         "https://b.example",
			expectedCode:   http.StatusOK,
			expectedOrigin: "https://b.example",
			expectedVary:   []string{"Origin"},
			nextCalled:     true,
		},
		{
			name:           "unlisted origin gets no cors headers",
			allowedOrigins: []string{"https://a.example"},
			method:         http.MethodGet,
			origin:         "https://evil.example",
			expectedCode:   http.StatusOK,
			expectedVary:   []string{"Origin"},
			nextCalled:     true,
		},
		{
			name:            "preflight is answered",
			method:          http.MethodOptions,
			origin:          "https://client.example",
			requestMethod:   http.MethodPut,
			requestHeaders:  "Content-Type, X-Trace-ID",
			expectedCode:    http.StatusNoContent,
			expectedOrigin:  "*",
			expectedMethods: corsAllowedMethods,
			expectedHeaders: "Content-Type, X-Trace-ID",
			expectedVary:    []string{"Access-Control-Request-Headers"},
		},
		{
			name:           "preflight from unlisted origin ends without cors headers",
			allowedOrigins: []string{"https://a.example"},
			method:         http.MethodOptions,
			origin:         "https://evil.example",
			requestMethod:  http.MethodDelete,
			expectedCode:   http.StatusNoContent,
			expectedVary:   []string{"Origin"},
		},
		{
			name:           "plain options request reaches the router",
			method:         http.MethodOptions,
			origin:         "https://client.example",
			expectedCode:   http.StatusOK,
			expectedOrigin: "*",
			nextCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testServerConfig()
			cfg.AllowedOrigins = tt.allowedOrigins
			h := newTestHandler(cfg)

			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := newRequest(tt.method, "/api/posts")
			req.Header.Set("Origin", tt.origin)
			if tt.requestMethod != "" {
				req.Header.Set("Access-Control-Request-Method", tt.requestMethod)
			}
			if tt.requestHeaders != "" {
				req.Header.Set("Access-Control-Request-Headers", tt.requestHeaders)
			}

			rr := serve(h.withCORS(next), req)

			assert.Equal(t, tt.nextCalled, called)
			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.expectedMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, tt.expectedHeaders, rr.Header().Get("Access-Control-Allow-Headers"))
			for _, vary := range tt.expectedVary {
				assert.Contains(t, rr.Header().Values("Vary"), vary)
			}
			if tt.expectedOrigin != "" && tt.nextCalled {
				assert.Equal(t, traceIDHeader, rr.Header().Get("Access-Control-Expose-Headers"))
			}
		})
	}
}
