package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-api-bootstrap/internal/app"
	handler "github.com/MKhiriev/go-api-bootstrap/internal/handler/http"
	"github.com/MKhiriev/go-api-bootstrap/internal/utils"
	"github.com/MKhiriev/go-api-bootstrap/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultPingTimeout bounds the database ping of a single health check.
const DefaultPingTimeout = 2 * time.Second

// Pinger is the part of the database the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health answers GET /api/health with 200 while the database answers pings
// and with 503 otherwise.
type Health struct {
	db          Pinger
	pingTimeout time.Duration
}

func NewHealth(db Pinger) *Health {
	return &Health{
		db:          db,
		pingTimeout: DefaultPingTimeout,
	}
}

func (c *Health) Path() string {
	return "/health"
}

func (c *Health) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.GetHead)
	r.Method(http.MethodGet, "/", handler.HandlerFunc(c.check))

	return r
}

func (c *Health) check(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), c.pingTimeout)
	defer cancel()

	if err := c.db.Ping(ctx); err != nil {
		return err
	}

	_, err := utils.WriteJSON(w, models.HealthResponse{Status: app.MsgStatusOK}, http.StatusOK)
	return err
}
