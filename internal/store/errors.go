package store

import "errors"

// Sentinel errors returned by [Mongo]. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrNotConnected is returned by Ping and Database when Connect has not
	// completed successfully yet (or Close has been called).
	ErrNotConnected = errors.New("database is not connected")

	// ErrAlreadyConnected is returned by Connect when a connection is
	// already established.
	ErrAlreadyConnected = errors.New("database is already connected")

	// ErrDatabaseUnavailable wraps a failed ping of an established
	// connection.
	ErrDatabaseUnavailable = errors.New("database is unavailable")

	// ErrBuildingConnectionURI is returned when the connection settings
	// cannot be assembled into a valid URI.
	ErrBuildingConnectionURI = errors.New("error building connection uri")
)
