package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/laqtaha/internal/flagx"
)

var knownFlags = []string{
	"-a", "-d", "-storage", "-db", "-redis", "-mock", "-timeout", "-log-level", "-log-format",
}

// parseFlags populates Config fields from command-line flags.
//
//	-a string          base URL of the authentication API
//	-d string          base URL of static data documents
//	-storage string    sqlite | redis | memory
//	-db string         SQLite database path
//	-redis string      Redis address
//	-mock bool         simulate the authentication API (use -mock=false to disable)
//	-timeout duration  per-request timeout
//	-log-level string  debug | info | warn | error
//	-log-format string text | zerolog
//
// Only these flags are looked at; everything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("laqtaha", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.AuthEndpointAddr, "a", cfg.AuthEndpointAddr, "base URL of the authentication API")
	fs.StringVar(&cfg.DataBaseURL, "d", cfg.DataBaseURL, "base URL of static data documents")
	fs.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "session storage backend")
	fs.StringVar(&cfg.SQLitePath, "db", cfg.SQLitePath, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address")
	fs.BoolVar(&cfg.MockAuth, "mock", cfg.MockAuth, "simulate the authentication API")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
