package main

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-api-bootstrap/internal/config"
	"github.com/MKhiriev/go-api-bootstrap/internal/logger"
	"github.com/MKhiriev/go-api-bootstrap/internal/utils"
)

const (
	healthcheckCommand = "healthcheck"
	healthcheckPath    = "/api/health"
	healthcheckTimeout = 3 * time.Second
)

// runHealthcheck probes the health endpoint of a server started with the
// same configuration and returns the process exit code. It is meant for
// container HEALTHCHECK instructions, where no curl is available.
func runHealthcheck(args []string) int {
	log := logger.NewLogger("healthcheck")

	cfg, err := config.GetServerConfig(args)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	baseURL := "http://" + net.JoinHostPort(probeHost(cfg.Host), strconv.Itoa(cfg.Port))
	resp, err := utils.NewHTTPClient(baseURL, healthcheckTimeout).R().Get(healthcheckPath)
	if err != nil {
		log.Error().Err(err).Str("url", baseURL+healthcheckPath).Msg("health check request failed")
		return 1
	}
	if resp.StatusCode() != http.StatusOK {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("server is unhealthy")
		return 1
	}

	log.Info().Msg("server is healthy")
	return 0
}

// probeHost maps wildcard listen addresses to loopback.
func probeHost(host string) string {
	switch host {
	case "", "0.0.0.0", "::":
		return "127.0.0.1"
	default:
		return host
	}
}
