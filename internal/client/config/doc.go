// Package config loads runtime configuration for the Laqtaha client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / -config or $LAQTAHA_CONFIG.
//  3. LAQTAHA_* environment variables (see the env tags on Config).
//  4. Command-line flags, which override everything above.
//
// # JSON schema
//
// Durations are strings like "700ms" or integer nanoseconds:
//
//	{
//	  "auth_endpoint_addr": "http://localhost:4000",
//	  "data_base_url": "http://localhost:3000",
//	  "storage_backend": "sqlite",
//	  "sqlite_path": "laqtaha.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_key_prefix": "laqtaha:",
//	  "mock_auth": true,
//	  "mock_delay": "700ms",
//	  "mock_signing_key": "laqtaha-dev-secret",
//	  "request_timeout": "10s",
//	  "catalog_stale_time": "5m",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
