package controller

import (
	"net/http"

	"github.com/MKhiriev/go-api-bootstrap/internal/config"
	handler "github.com/MKhiriev/go-api-bootstrap/internal/handler/http"
	"github.com/MKhiriev/go-api-bootstrap/internal/utils"
	"github.com/MKhiriev/go-api-bootstrap/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Version answers GET /api/version with the application name and build
// metadata. A configured APP_VERSION takes precedence over the version baked
// in at build time.
type Version struct {
	response models.VersionResponse
}

func NewVersion(cfg config.App, build models.AppBuildInfo) *Version {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}

	return &Version{
		response: models.VersionResponse{
			Name:    cfg.Name,
			Version: version,
			Date:    build.BuildDate(),
			Commit:  build.BuildCommit(),
		},
	}
}

func (c *Version) Path() string {
	return "/version"
}

func (c *Version) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.GetHead)
	r.Method(http.MethodGet, "/", handler.HandlerFunc(c.version))

	return r
}

func (c *Version) version(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteJSON(w, c.response, http.StatusOK)
	return err
}
