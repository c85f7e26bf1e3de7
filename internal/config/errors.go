package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a port outside 1-65535 or a zero body limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMongoConfigs indicates invalid MongoDB settings
	// (for example, empty MONGO_PATH, unknown scheme or a password without
	// a user).
	ErrInvalidMongoConfigs = errors.New("invalid mongo configuration")
)
