package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-api-bootstrap/internal/config"
	"github.com/MKhiriev/go-api-bootstrap/internal/logger"
	"github.com/MKhiriev/go-api-bootstrap/internal/utils"
)

// apiPrefix is the shared namespace every controller is mounted under.
const apiPrefix = "/api"

type mountedController struct {
	path   string
	router http.Handler
}

type Handler struct {
	controllers []mountedController
	cfg         config.Server

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewHandler checks the controller list and keeps it in the given order.
// Each mount path is normalized to a single leading slash and no trailing
// slash. A nil controller, a nil router, an empty or patterned path and a
// path used twice are rejected.
func NewHandler(controllers []Controller, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	mounted := make([]mountedController, 0, len(controllers))
	seen := make(map[string]struct{}, len(controllers))

	for i, c := range controllers {
		if c == nil {
			return nil, fmt.Errorf("%w: controller #%d", ErrNilController, i)
		}

		path, err := normalizeMountPath(c.Path())
		if err != nil {
			return nil, fmt.Errorf("controller #%d: %w", i, err)
		}
		if _, ok := seen[path]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMountPath, path)
		}
		seen[path] = struct{}{}

		router := c.Router()
		if router == nil {
			return nil, fmt.Errorf("%w: controller #%d mounted at %q", ErrNilControllerRouter, i, path)
		}

		mounted = append(mounted, mountedController{path: path, router: router})
	}

	logger.Info().Int("controllers", len(mounted)).Msg("http handler created")

	return &Handler{
		controllers: mounted,
		cfg:         cfg,
		traceIDs:    utils.NewUUIDGenerator(),
		logger:      logger,
	}, nil
}

func normalizeMountPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidMountPath)
	}
	if strings.ContainsAny(trimmed, "*{}? \t") {
		return "", fmt.Errorf("%w: %q must be a plain path", ErrInvalidMountPath, path)
	}

	trimmed = "/" + strings.Trim(trimmed, "/")
	if strings.Contains(trimmed, "//") {
		return "", fmt.Errorf("%w: %q has an empty segment", ErrInvalidMountPath, path)
	}

	return trimmed, nil
}
