package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-api-bootstrap/internal/config"
	handler "github.com/MKhiriev/go-api-bootstrap/internal/handler/http"
	"github.com/MKhiriev/go-api-bootstrap/internal/logger"
	"github.com/MKhiriev/go-api-bootstrap/internal/store"
)

// App is the bootstrapped HTTP application. It is safe for concurrent use.
type App struct {
	cfg        *config.StructuredConfig
	db         store.Database
	handler    http.Handler
	httpServer *httpServer

	mu          sync.Mutex
	initialized bool
	listener    net.Listener
	closed      bool

	logger *logger.Logger
}

// NewApp wires the router: middleware in its fixed order, every controller
// mounted under /api in the given order and the error layer last. It does
// not touch the database; that happens in Init.
func NewApp(controllers []handler.Controller, cfg *config.StructuredConfig, db store.Database, logger *logger.Logger) (*App, error) {
	logger.Info().Msg("creating new app...")

	if cfg == nil {
		return nil, ErrNilConfig
	}
	if db == nil {
		return nil, ErrNilDatabase
	}

	h, err := handler.NewHandler(controllers, cfg.Server, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP handler: %w", err)
	}
	router := h.Init()

	return &App{
		cfg:        cfg,
		db:         db,
		handler:    router,
		httpServer: newHTTPServer(router, logger),
		logger:     logger,
	}, nil
}

// Init connects the database. It must succeed before Listen is allowed and
// succeeds at most once per App.
func (a *App) Init(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case a.closed:
		return ErrAppClosed
	case a.initialized:
		return ErrAlreadyInitialized
	}

	if err := a.db.Connect(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Init").Msg("database initialization failed")
		return fmt.Errorf("%w: %w", ErrDatabaseConnection, err)
	}

	a.initialized = true
	a.logger.Info().Str("func", "App.Init").Msg("app initialized")

	return nil
}

// Listen binds host:port from the configuration and serves in the
// background. A bind failure, such as a port already in use, is returned.
func (a *App) Listen() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case a.closed:
		return ErrAppClosed
	case !a.initialized:
		return ErrNotInitialized
	case a.listener != nil:
		return ErrAlreadyListening
	}

	address := a.cfg.Server.Address()
	listener, err := net.Listen("tcp", address)
	if err != nil {
		a.logger.Err(err).Str("func", "App.Listen").Str("address", address).Msg("error binding socket")
		return fmt.Errorf("error listening on %s: %w", address, err)
	}

	a.listener = listener
	a.httpServer.Serve(listener)

	port := a.cfg.Server.Port
	if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
		port = tcpAddr.Port
	}
	a.logger.Info().Msgf("App is listening %d", port)

	return nil
}

// Addr is the bound address, or "" before Listen.
func (a *App) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.listener == nil {
		return ""
	}
	return a.listener.Addr().String()
}

// Handler returns the fully wired router.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run listens and blocks until ctx is done, a stop signal arrives or the
// server fails, then shuts down within Server.ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	if err := a.Listen(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	var serveErr error
	select {
	case <-ctx.Done():
		a.logger.Info().Msg("stop signal received, shutting down")
	case serveErr = <-a.httpServer.Done():
	}

	shutdownCtx := context.Background()
	if timeout := a.cfg.Server.ShutdownTimeout; timeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, timeout)
		defer cancel()
	}

	if err := a.Shutdown(shutdownCtx); err != nil {
		return errors.Join(serveErr, err)
	}
	if serveErr != nil {
		return fmt.Errorf("HTTP server failed: %w", serveErr)
	}

	a.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// Shutdown stops the HTTP server, waiting for active requests until ctx
// expires, and closes the database. Only the first call does any work.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	var errs []error
	if a.listener != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if a.initialized {
		if err := a.db.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("error closing database: %w", err))
		}
	}

	return errors.Join(errs...)
}
