// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (loaded into the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are applied to anything left unset and the result is validated
// eagerly, so a misconfigured process fails at startup instead of at the
// first request. The main entry point is [GetStructuredConfig].
package config
