package http

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-api-bootstrap/internal/logger"
	"github.com/MKhiriev/go-api-bootstrap/internal/utils"
	"github.com/MKhiriev/go-api-bootstrap/models"
	"github.com/rs/zerolog"
)

// ErrorHandler writes the response for a failed request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// HandlerFunc is a request handler that reports failure by returning an
// error instead of writing the error response itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f HandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := f(w, r); err != nil {
		Fail(w, r, err)
	}
}

// Fail hands err to the error layer of the request. Outside of a handler
// chain built by [Handler.Init] it falls back to [WriteError].
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	if report, ok := r.Context().Value(utils.ErrorReporterCtxKey).(ErrorHandler); ok && report != nil {
		report(w, r, err)
		return
	}
	WriteError(w, r, err)
}

// WriteError logs err with the request logger and writes a
// [models.ErrorResponse] with the status resolved from err.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	response := models.ErrorResponse{Status: status, Message: message}
	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

// withErrorHandling is the terminal layer. It wraps the whole chain so that
// panics anywhere in it end up here, and it stores the request's
// [ErrorHandler] in the context for [Fail]. Nothing runs after it.
func (h *Handler) withErrorHandling(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &responseWriter{ResponseWriter: w}
		report := reportOnce(tw)

		ctx := h.logger.WithContext(r.Context())
		ctx = context.WithValue(ctx, utils.ErrorReporterCtxKey, report)
		r = r.WithContext(ctx)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log := h.logger.GetChildLogger()
			if traceID := tw.Header().Get(traceIDHeader); traceID != "" {
				log.UpdateContext(func(c zerolog.Context) zerolog.Context {
					return c.Str("trace_id", traceID)
				})
			}

			log.Error().
				Str("uri", r.RequestURI).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			r = r.WithContext(log.WithContext(r.Context()))
			report(tw, r, fmt.Errorf("%w: %v", ErrPanicRecovered, rec))
		}()

		next.ServeHTTP(tw, r)
	})
}

// reportOnce returns an [ErrorHandler] that only writes while the response is
// untouched. Once a status line went out the error can only be logged.
func reportOnce(tw *responseWriter) ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if tw.wroteHeader {
			logger.FromRequest(r).Err(err).
				Int("status", tw.status).
				Msg("error after response was started")
			return
		}
		WriteError(w, r, err)
	}
}
