package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so that every resty method is available
// directly. It is used by the container health probe and by tests that talk
// to a running server over a real socket.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that resolves relative request URLs against
// baseURL. A non-positive timeout leaves resty's default (no timeout).
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:3000", 2*time.Second)
//	resp, err := client.R().Get("/api/health")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
