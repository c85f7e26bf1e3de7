package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Init builds the router. Middleware runs outermost first in the order
// CORS, security headers, trace id, access log, body parsing, compression.
// Controllers are mounted under /api in the order they were given, and the
// error layer wraps everything as the last installation step.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(
		h.withCORS,
		withSecurityHeaders,
		h.withTraceID,
		h.withLogging,
		h.withBodyParsing,
		withGZip,
	)
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(methodNotAllowed)

	// NotFound and MethodNotAllowed must be set before mounting: chi copies
	// them into mounted sub-routers only at Mount time.
	api := chi.NewRouter()
	api.NotFound(routeNotFound)
	api.MethodNotAllowed(methodNotAllowed)
	if h.cfg.RequestTimeout > 0 {
		api.Use(withRequestTimeout(h.cfg.RequestTimeout))
	}

	for _, c := range h.controllers {
		api.Mount(c.path, c.router)
		h.logger.Info().Str("path", mountedAt(c.path)).Msg("controller mounted")
	}
	router.Mount(apiPrefix, api)

	return h.withErrorHandling(router)
}

func mountedAt(path string) string {
	if path == "/" {
		return apiPrefix
	}
	return apiPrefix + path
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	Fail(w, r, ErrRouteNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Fail(w, r, ErrMethodNotAllowed)
}
