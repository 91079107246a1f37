// Package config loads process settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultHost keeps the listener on loopback unless HOST says otherwise.
	DefaultHost = "127.0.0.1"
	// DefaultPort is the port the responder has always used.
	DefaultPort = "8080"
	// DefaultLogLevel is used when LOG_LEVEL is unset.
	DefaultLogLevel = "info"
)

// ErrInvalidPort is returned when PORT is not a number in 1-65535.
var ErrInvalidPort = errors.New("invalid port")

// ErrInvalidLogLevel is returned when LOG_LEVEL is not a known level.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds the settings the server needs at startup.
type Config struct {
	Host      string
	Port      string
	LogLevel  string
	ProjectID string
}

// Addr returns the host:port pair the listener binds.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads .env from the working directory when present, then builds a
// Config from the environment. Variables already set in the environment win
// over values from the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Host:     valueOr(lookup, "HOST", DefaultHost),
		Port:     valueOr(lookup, "PORT", DefaultPort),
		LogLevel: strings.ToLower(valueOr(lookup, "LOG_LEVEL", DefaultLogLevel)),
		ProjectID: firstSet(lookup,
			"GOOGLE_CLOUD_PROJECT",
			"GCP_PROJECT",
			"GCLOUD_PROJECT",
			"PROJECT_ID",
		),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	n, err := strconv.Atoi(c.Port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%w: %q", ErrInvalidPort, c.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

func valueOr(lookup func(string) (string, bool), key, fallback string) string {
	if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func firstSet(lookup func(string) (string, bool), keys ...string) string {
	for _, k := range keys {
		if v, ok := lookup(k); ok && v != "" {
			return v
		}
	}
	return ""
}
