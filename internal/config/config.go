// Package config loads server settings from a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrNotConfigured means a required setting is missing. The server cannot
// start without it.
var ErrNotConfigured = errors.New("server is not configured")

// Environment variable names.
const (
	EnvDBPath        = "DB_PATH"
	EnvJWTSecret     = "JWT_SECRET"
	EnvTokenTTL      = "TOKEN_TTL"
	EnvPort          = "PORT"
	EnvStorageDir    = "STORAGE_DIR"
	EnvPublicURL     = "PUBLIC_URL"
	EnvOwnerUsername = "OWNER_USERNAME"
	EnvOwnerPassword = "OWNER_PASSWORD"
	EnvOwnerName     = "OWNER_NAME"
)

const (
	DefaultPort       = 8080
	DefaultTokenTTL   = 24 * time.Hour
	DefaultStorageDir = "./data/storage"
)

// Owner is the account created on first start when no identities exist.
type Owner struct {
	Username string
	Password string
	FullName string
}

// Config is the server configuration.
type Config struct {
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	Port       int
	StorageDir string
	// PublicURL prefixes object URLs; empty gives host-relative URLs.
	PublicURL string
	Owner     Owner
}

// LoadDotEnv loads variables from the given files (default ".env") into the
// process environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv builds a Config from lookup, typically os.Getenv, and validates it.
func FromEnv(lookup func(string) string) (*Config, error) {
	cfg := &Config{
		DBPath:     strings.TrimSpace(lookup(EnvDBPath)),
		JWTSecret:  lookup(EnvJWTSecret),
		TokenTTL:   DefaultTokenTTL,
		Port:       DefaultPort,
		StorageDir: DefaultStorageDir,
		PublicURL:  strings.TrimSpace(lookup(EnvPublicURL)),
		Owner: Owner{
			Username: strings.TrimSpace(lookup(EnvOwnerUsername)),
			Password: lookup(EnvOwnerPassword),
			FullName: strings.TrimSpace(lookup(EnvOwnerName)),
		},
	}

	if v := lookup(EnvTokenTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvTokenTTL, v, err)
		}
		cfg.TokenTTL = ttl
	}
	if v := lookup(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		cfg.Port = port
	}
	if v := strings.TrimSpace(lookup(EnvStorageDir)); v != "" {
		cfg.StorageDir = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads .env then the process environment.
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	return FromEnv(os.Getenv)
}

// Validate reports ErrNotConfigured when a required setting is missing.
func (c *Config) Validate() error {
	var missing []string
	if c.DBPath == "" {
		missing = append(missing, EnvDBPath)
	}
	if c.JWTSecret == "" {
		missing = append(missing, EnvJWTSecret)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrNotConfigured, strings.Join(missing, ", "))
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvTokenTTL)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%s %d out of range", EnvPort, c.Port)
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
