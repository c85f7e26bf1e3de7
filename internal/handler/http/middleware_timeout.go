package http

import (
	"context"
	"net/http"
	"time"
)

// withRequestTimeout puts a deadline on the request context. Handlers that
// honour it give up with context.DeadlineExceeded, which the error layer
// answers with 504.
func withRequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
