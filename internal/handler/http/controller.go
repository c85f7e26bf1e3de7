package http

import "net/http"

// Controller is an externally supplied group of routes.
//
// Every request whose path starts with /api<Path()> is passed to Router().
// When Router() returns a chi router, it sees paths relative to the mount
// point, so a controller mounted at "/posts" registers "/" and "/{id}".
type Controller interface {
	// Path is the mount sub-path, e.g. "/posts". "/" mounts the controller at
	// the root of /api.
	Path() string

	// Router handles requests below the mount path.
	Router() http.Handler
}
