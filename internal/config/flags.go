package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p server port (overrides the port given with -a)
//	-c/-config json file path with configs
//	-mongo-scheme mongodb URI scheme (mongodb or mongodb+srv)
//	-mongo-path mongodb host list, database and options
//	-mongo-user mongodb user
//	-mongo-database database handed to controllers
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "5s")
//	-body-limit maximum request body size in bytes
//	-cors-origins comma separated list of allowed CORS origins
//	-log-level minimal log level
//
// The MongoDB password is intentionally not accepted as a flag; use
// MONGO_PASSWORD or the JSON file instead.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var port int
	var jsonConfigPath string
	var mongoScheme, mongoPath, mongoUser, mongoDatabase string
	var requestTimeout, shutdownTimeout time.Duration
	var bodyLimit int64
	var corsOrigins string
	var logLevel string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&mongoScheme, "mongo-scheme", "", "MongoDB URI scheme")
	fs.StringVar(&mongoPath, "mongo-path", "", "MongoDB host list, database and options")
	fs.StringVar(&mongoUser, "mongo-user", "", "MongoDB user")
	fs.StringVar(&mongoDatabase, "mongo-database", "", "MongoDB database")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.Int64Var(&bodyLimit, "body-limit", 0, "Maximum request body size in bytes")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed CORS origins")
	fs.StringVar(&logLevel, "log-level", "", "Minimal log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if port == 0 {
		port = serverAddress.Port
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			Host:            serverAddress.Host,
			Port:            port,
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			BodyLimit:       bodyLimit,
			AllowedOrigins:  splitList(corsOrigins),
		},
		Mongo: Mongo{
			Scheme:   mongoScheme,
			Path:     mongoPath,
			User:     mongoUser,
			Database: mongoDatabase,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. It validates the port range, checks IP correctness unless host
// is empty or "localhost", and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
