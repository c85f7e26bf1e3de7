package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-api-bootstrap/internal/logger"
)

// withLogging writes one access log line per request with the request
// scoped logger installed by withTraceID. A request that panics before
// writing a status is logged with 500, the status the error layer answers.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		if uri == "" {
			uri = r.URL.RequestURI()
		}
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		completed := false
		defer func() {
			status := lw.status
			if !completed && !lw.wroteHeader {
				status = http.StatusInternalServerError
			}

			log.Info().
				Str("uri", uri).
				Str("method", method).
				Int("status", status).
				Dur("duration", time.Since(start)).
				Int("size", lw.size).
				Send()
		}()

		next.ServeHTTP(lw, r)
		completed = true
	})
}
