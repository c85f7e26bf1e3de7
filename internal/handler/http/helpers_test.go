package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-api-bootstrap/internal/config"
	"github.com/MKhiriev/go-api-bootstrap/internal/logger"
	"github.com/MKhiriev/go-api-bootstrap/internal/utils"
	"github.com/MKhiriev/go-api-bootstrap/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testController struct {
	path   string
	router http.Handler
}

func (c testController) Path() string        { return c.path }
func (c testController) Router() http.Handler { return c.router }

// textController answers every request below its mount path with body.
func textController(path, body string) testController {
	return testController{
		path: path,
		router: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}),
	}
}

func testServerConfig() config.Server {
	return config.Server{
		Port:      config.DefaultPort,
		BodyLimit: config.DefaultBodyLimit,
	}
}

// newTestHandler builds a bare Handler for exercising single middlewares.
func newTestHandler(cfg config.Server) *Handler {
	return &Handler{
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger.Nop(),
	}
}

// newTestRouter builds the full chain around the given controllers.
func newTestRouter(t *testing.T, cfg config.Server, controllers ...Controller) http.Handler {
	t.Helper()

	h, err := NewHandler(controllers, cfg, logger.Nop())
	require.NoError(t, err)

	return h.Init()
}

// newBufferLogger returns a logger that writes JSON lines into buf.
func newBufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf).With().Timestamp().Logger()}
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}
