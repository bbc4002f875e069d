package config

import (
	"fmt"
	"os"
	"time"
)

// Storage backends understood by the client.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config holds runtime settings for the Laqtaha client.
//
// Every field may be set from JSON, from a LAQTAHA_* environment variable or
// from a command-line flag; see the package documentation for names.
type Config struct {
	// AuthEndpointAddr is the base URL of the authentication API.
	AuthEndpointAddr string `env:"LAQTAHA_AUTH_ENDPOINT"`
	// DataBaseURL is the base URL static data documents are fetched from.
	DataBaseURL string `env:"LAQTAHA_DATA_URL"`

	StorageBackend string `env:"LAQTAHA_STORAGE"`
	SQLitePath     string `env:"LAQTAHA_SQLITE_PATH"`
	RedisAddr      string `env:"LAQTAHA_REDIS_ADDR"`
	RedisKeyPrefix string `env:"LAQTAHA_REDIS_PREFIX"`

	// MockAuth replaces the remote endpoint with an in-process simulation.
	MockAuth       bool          `env:"LAQTAHA_MOCK_AUTH"`
	MockDelay      time.Duration `env:"LAQTAHA_MOCK_DELAY"`
	MockSigningKey string        `env:"LAQTAHA_MOCK_SIGNING_KEY"`

	RequestTimeout   time.Duration `env:"LAQTAHA_REQUEST_TIMEOUT"`
	CatalogStaleTime time.Duration `env:"LAQTAHA_CATALOG_STALE_TIME"`

	LogLevel  string `env:"LAQTAHA_LOG_LEVEL"`
	LogFormat string `env:"LAQTAHA_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthEndpointAddr = "http://localhost:4000"
	c.DataBaseURL = "http://localhost:3000"
	c.StorageBackend = StorageSQLite
	c.SQLitePath = "laqtaha.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisKeyPrefix = "laqtaha:"
	c.MockAuth = true
	c.MockDelay = 700 * time.Millisecond
	c.MockSigningKey = "laqtaha-dev-secret"
	c.RequestTimeout = 10 * time.Second
	c.CatalogStaleTime = 5 * time.Minute
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite storage needs a database path")
		}
	case StorageRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis storage needs an address")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	if !c.MockAuth && c.AuthEndpointAddr == "" {
		return fmt.Errorf("auth endpoint address is required when mock auth is off")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file named in args (or
// $LAQTAHA_CONFIG), then LAQTAHA_* environment variables, then flags in args.
// Later sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args. It panics on invalid configuration.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
