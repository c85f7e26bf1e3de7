package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/database_mock.go -package=mock

// Database is the lifecycle contract of the application's database
// connection.
//
// Connect is called once during application initialization and must either
// leave the connection usable or return an error. Ping reports whether the
// connection is currently usable and is safe for concurrent use. Close
// releases the connection; calling it on a database that was never
// connected is a no-op.
type Database interface {
	Connect(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
