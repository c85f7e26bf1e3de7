package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-api-bootstrap/internal/config"
	handler "github.com/MKhiriev/go-api-bootstrap/internal/handler/http"
	"github.com/MKhiriev/go-api-bootstrap/internal/utils"
	"github.com/MKhiriev/go-api-bootstrap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_Path(t *testing.T) {
	assert.Equal(t, "/version", NewVersion(config.App{}, models.NewAppBuildInfo("", "", "")).Path())
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.App
		build    models.AppBuildInfo
		expected models.VersionResponse
	}{
		{
			name:  "configured version wins",
			cfg:   config.App{Name: "blog-api", Version: "2.1.0"},
			build: models.NewAppBuildInfo("2.0.0", "2026-10-01", "abc123"),
			expected: models.VersionResponse{
				Name: "blog-api", Version: "2.1.0", Date: "2026-10-01", Commit: "abc123",
			},
		},
		{
			name:  "build version as fallback",
			cfg:   config.App{Name: "blog-api"},
			build: models.NewAppBuildInfo("2.0.0", "2026-10-01", "abc123"),
			expected: models.VersionResponse{
				Name: "blog-api", Version: "2.0.0", Date: "2026-10-01", Commit: "abc123",
			},
		},
		{
			name:  "nothing injected",
			build: models.NewAppBuildInfo("", "", ""),
			expected: models.VersionResponse{
				Version: "N/A", Date: "N/A", Commit: "N/A",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			NewVersion(tt.cfg, tt.build).Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, http.StatusOK, rr.Code)
			var resp models.VersionResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expected, resp)
		})
	}
}

// failingWriter accepts headers but fails every body write.
type failingWriter struct {
	*httptest.ResponseRecorder
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestVersion_WriteErrorIsReported(t *testing.T) {
	var reported error
	report := handler.ErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		reported = err
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), utils.ErrorReporterCtxKey, report))

	w := failingWriter{ResponseRecorder: httptest.NewRecorder()}
	NewVersion(config.App{}, models.NewAppBuildInfo("", "", "")).Router().ServeHTTP(w, req)

	require.Error(t, reported)
	assert.Contains(t, reported.Error(), "connection reset")
}
