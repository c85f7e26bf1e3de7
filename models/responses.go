package models

// ErrorResponse is the body written by the terminal error handler for every
// failed request.
type ErrorResponse struct {
	// Status repeats the HTTP status code of the response.
	Status int `json:"status"`

	// Message is a human-readable description of the failure. Internal
	// errors are reported with a generic message so that details do not
	// leak to clients.
	Message string `json:"message"`
}

// HealthResponse is returned by the health controller when the database
// answers a ping.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version"`
	Date    string `json:"build_date"`
	Commit  string `json:"build_commit"`
}
