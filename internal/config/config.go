// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Default values applied by [StructuredConfig.applyDefaults] to fields that
// no configuration source has set.
const (
	DefaultPort            = 3000
	DefaultBodyLimit       = 100 << 10
	DefaultShutdownTimeout = 5 * time.Second
	DefaultConnectTimeout  = 10 * time.Second
	DefaultMongoScheme     = "mongodb+srv"
	DefaultMongoPoolSize   = 100
	DefaultLogLevel        = "debug"
)

// StructuredConfig is the top-level configuration container for the
// application. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked by [StructuredConfig.validate].
type StructuredConfig struct {
	// App holds application-level settings such as the service name,
	// version and log level.
	App App `envPrefix:"APP_"`

	// Server holds the listen address, limits and timeouts of the HTTP
	// server. Its variables are not prefixed (PORT, HOST, ...).
	Server Server

	// Mongo holds the MongoDB connection settings.
	Mongo Mongo `envPrefix:"MONGO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path of a dotenv file loaded into the
	// process environment before variables are read. Defaults to ".env";
	// a missing file is not an error.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// Name identifies the service in logs and in the /api/version response.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level emitted (e.g. "info", "debug").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

// Server holds network, limit and timeout settings for the HTTP server.
type Server struct {
	// Host is the interface the server binds to. Empty means all interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port the server listens on.
	// Env: PORT
	Port int `env:"PORT" validate:"min=1,max=65535"`

	// RequestTimeout bounds the handling time of a single /api request.
	// Zero disables the timeout.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"min=0"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"min=0"`

	// BodyLimit is the maximum accepted request body size in bytes.
	// Env: BODY_LIMIT
	BodyLimit int64 `env:"BODY_LIMIT" validate:"min=1"`

	// AllowedOrigins lists the origins allowed by the CORS layer.
	// Empty means any origin ("*").
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Mongo holds MongoDB connection settings. Path, User and Password are
// combined into the connection URI by store.ConnectionURI.
type Mongo struct {
	// Scheme is the URI scheme, "mongodb+srv" for DNS seed lists or
	// "mongodb" for a plain host list.
	// Env: MONGO_SCHEME
	Scheme string `env:"SCHEME" validate:"oneof=mongodb mongodb+srv"`

	// Path is everything after the credentials: host list, optional
	// database and query options (e.g. "cluster0.example.net/blog?retryWrites=true").
	// Env: MONGO_PATH
	Path string `env:"PATH" validate:"required"`

	// User is the MongoDB user name.
	// Env: MONGO_USER
	User string `env:"USER" validate:"required_with=Password"`

	// Password is the MongoDB password. Must be kept confidential.
	// Env: MONGO_PASSWORD
	Password string `env:"PASSWORD" json:"-"`

	// Database is the database handed to controllers. When empty the
	// database named in Path (if any) is used.
	// Env: MONGO_DATABASE
	Database string `env:"DATABASE"`

	// ConnectTimeout bounds connecting and the initial ping.
	// Env: MONGO_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// MaxPoolSize caps the number of pooled connections.
	// Env: MONGO_MAX_POOL_SIZE
	MaxPoolSize uint64 `env:"MAX_POOL_SIZE"`
}

// Address returns the host:port pair the HTTP server binds to.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 1-3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// GetServerConfig reads the same sources as [GetStructuredConfig] but
// validates only the HTTP server settings. It serves tools that talk to a
// running server and never open the database themselves.
func GetServerConfig(args []string) (*Server, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		buildServer()
}

// applyDefaults fills unset fields with their defaults and trims list
// entries coming from sources that do not trim ("a, b" from the environment).
func (cfg *StructuredConfig) applyDefaults() {
	cfg.Server.AllowedOrigins = trimList(cfg.Server.AllowedOrigins)

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.BodyLimit == 0 {
		cfg.Server.BodyLimit = DefaultBodyLimit
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Mongo.Scheme == "" {
		cfg.Mongo.Scheme = DefaultMongoScheme
	}
	if cfg.Mongo.ConnectTimeout == 0 {
		cfg.Mongo.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.Mongo.MaxPoolSize == 0 {
		cfg.Mongo.MaxPoolSize = DefaultMongoPoolSize
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
}

// trimList trims every item and drops the empty ones.
func trimList(items []string) []string {
	var trimmed []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			trimmed = append(trimmed, item)
		}
	}
	return trimmed
}
