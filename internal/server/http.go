package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-api-bootstrap/internal/logger"
)

// readHeaderTimeout protects the listener from clients that never finish
// sending headers.
const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server

	// done receives the error that stopped Serve, if any, and is closed
	// afterwards.
	done chan error

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// Serve accepts connections on l in the background.
func (h *httpServer) Serve(l net.Listener) {
	h.done = make(chan error, 1)

	go func() {
		defer close(h.done)

		if err := h.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Err(err).Str("func", "httpServer.Serve").Msg("HTTP server stopped")
			h.done <- err
		}
	}()
}

// Done is nil until Serve was called.
func (h *httpServer) Done() <-chan error {
	return h.done
}

// Shutdown stops accepting connections and waits for active requests until
// ctx expires.
func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down HTTP server: %w", err)
	}
	return nil
}
