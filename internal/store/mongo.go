package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-api-bootstrap/internal/config"
	"github.com/MKhiriev/go-api-bootstrap/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo is the MongoDB implementation of [Database].
//
// The zero connection state is "not connected": Ping and Database return
// [ErrNotConnected] until Connect succeeds. Mongo is safe for concurrent use.
type Mongo struct {
	cfg config.Mongo

	mu       sync.RWMutex
	client   *mongo.Client
	database *mongo.Database

	logger *logger.Logger
}

// NewMongo returns an unconnected [Mongo] for the given settings. No network
// activity happens until Connect.
func NewMongo(cfg config.Mongo, logger *logger.Logger) *Mongo {
	return &Mongo{
		cfg:    cfg,
		logger: logger,
	}
}

// ConnectionURI assembles the MongoDB connection string
//
//	<scheme>://<user>:<password>@<path>
//
// User and password are URL-escaped. The credentials section is omitted when
// no user is configured. Scheme defaults to [config.DefaultMongoScheme].
func ConnectionURI(cfg config.Mongo) (string, error) {
	scheme := cfg.Scheme
	if scheme == "" {
		scheme = config.DefaultMongoScheme
	}
	if scheme != "mongodb" && scheme != "mongodb+srv" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrBuildingConnectionURI, scheme)
	}

	path := strings.TrimLeft(strings.TrimSpace(cfg.Path), "/")
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrBuildingConnectionURI)
	}
	if strings.Contains(path, "://") || strings.Contains(path, "@") {
		return "", fmt.Errorf("%w: path must not contain a scheme or credentials", ErrBuildingConnectionURI)
	}

	var credentials string
	switch {
	case cfg.User != "" && cfg.Password != "":
		credentials = url.UserPassword(cfg.User, cfg.Password).String() + "@"
	case cfg.User != "":
		credentials = url.User(cfg.User).String() + "@"
	case cfg.Password != "":
		return "", fmt.Errorf("%w: password given without user", ErrBuildingConnectionURI)
	}

	return scheme + "://" + credentials + path, nil
}

// databaseName returns the configured database, falling back to the
// database segment of the path ("host/db?opts").
func databaseName(cfg config.Mongo) string {
	if cfg.Database != "" {
		return cfg.Database
	}

	path := cfg.Path
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return strings.Trim(path[i+1:], "/")
	}

	return ""
}

// Connect opens the client, applies pool and timeout settings and verifies
// the connection with a ping against the primary. ConnectTimeout bounds the
// whole operation. On failure the client is disconnected again and the
// database stays unconnected.
func (m *Mongo) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return ErrAlreadyConnected
	}

	uri, err := ConnectionURI(m.cfg)
	if err != nil {
		return err
	}

	if m.cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.ConnectTimeout)
		defer cancel()
	}

	clientOptions := options.Client().ApplyURI(uri)
	if m.cfg.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(m.cfg.MaxPoolSize)
	}
	if m.cfg.ConnectTimeout > 0 {
		clientOptions.
			SetConnectTimeout(m.cfg.ConnectTimeout).
			SetServerSelectionTimeout(m.cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		m.logger.Err(err).Str("func", "Mongo.Connect").Msg("error occured during database connection")
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		m.logger.Err(err).Str("func", "Mongo.Connect").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	m.client = client
	m.database = client.Database(databaseName(m.cfg))
	m.logger.Info().
		Str("func", "Mongo.Connect").
		Str("database", m.database.Name()).
		Msg("connected to database successfully")

	return nil
}

// Ping checks that the established connection still reaches the primary.
func (m *Mongo) Ping(ctx context.Context) error {
	m.mu.RLock()
	client := m.client
	m.mu.RUnlock()

	if client == nil {
		return ErrNotConnected
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return nil
}

// Database returns the handle of the configured database.
func (m *Mongo) Database() (*mongo.Database, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.database == nil {
		return nil, ErrNotConnected
	}

	return m.database, nil
}

// Close disconnects the client. It is a no-op when not connected.
func (m *Mongo) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}

	err := m.client.Disconnect(ctx)
	m.client = nil
	m.database = nil
	if err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	m.logger.Info().Str("func", "Mongo.Close").Msg("database connection closed")
	return nil
}
