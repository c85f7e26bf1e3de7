package http

import (
	"net/http"
	"strings"
)

const (
	corsAllowedMethods = "GET,HEAD,PUT,PATCH,POST,DELETE"
	corsExposedHeaders = traceIDHeader
)

// withCORS answers cross-origin requests.
//
// With no configured origins, or with "*" among them, every origin is allowed
// and Access-Control-Allow-Origin is "*". Otherwise only listed origins are
// echoed back and responses vary on Origin; other origins get no CORS headers.
// A preflight (OPTIONS with Access-Control-Request-Method) is answered with
// 204 here and never reaches the later layers.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	allowAll := len(h.cfg.AllowedOrigins) == 0
	allowed := make(map[string]struct{}, len(h.cfg.AllowedOrigins))
	for _, origin := range h.cfg.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			allowAll = true
		}
		allowed[strings.TrimRight(origin, "/")] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		origin := r.Header.Get("Origin")

		allowOrigin := ""
		switch {
		case allowAll:
			allowOrigin = "*"
		default:
			header.Add("Vary", "Origin")
			if _, ok := allowed[origin]; ok && origin != "" {
				allowOrigin = origin
			}
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			if allowOrigin != "" {
				header.Set("Access-Control-Allow-Origin", allowOrigin)
				header.Set("Access-Control-Allow-Methods", corsAllowedMethods)
				header.Add("Vary", "Access-Control-Request-Headers")
				if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
					header.Set("Access-Control-Allow-Headers", requested)
				}
			}
			header.Set("Content-Length", "0")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if allowOrigin != "" {
			header.Set("Access-Control-Allow-Origin", allowOrigin)
			header.Set("Access-Control-Expose-Headers", corsExposedHeaders)
		}

		next.ServeHTTP(w, r)
	})
}
