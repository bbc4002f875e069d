package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/laqtaha/internal/flagx"
	"github.com/dmitrijs2005/laqtaha/internal/timex"
)

// jsonConfig is the on-disk shape. Pointer fields distinguish "absent" from
// zero values so a partial file only overrides what it names.
type jsonConfig struct {
	AuthEndpointAddr *string         `json:"auth_endpoint_addr"`
	DataBaseURL      *string         `json:"data_base_url"`
	StorageBackend   *string         `json:"storage_backend"`
	SQLitePath       *string         `json:"sqlite_path"`
	RedisAddr        *string         `json:"redis_addr"`
	RedisKeyPrefix   *string         `json:"redis_key_prefix"`
	MockAuth         *bool           `json:"mock_auth"`
	MockDelay        *timex.Duration `json:"mock_delay"`
	MockSigningKey   *string         `json:"mock_signing_key"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	CatalogStaleTime *timex.Duration `json:"catalog_stale_time"`
	LogLevel         *string         `json:"log_level"`
	LogFormat        *string         `json:"log_format"`
}

// parseJSON overlays cfg with the JSON file selected by -c/-config or
// $LAQTAHA_CONFIG. No file selected means no changes.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.AuthEndpointAddr, jc.AuthEndpointAddr)
	setString(&cfg.DataBaseURL, jc.DataBaseURL)
	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.SQLitePath, jc.SQLitePath)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisKeyPrefix, jc.RedisKeyPrefix)
	setString(&cfg.MockSigningKey, jc.MockSigningKey)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	if jc.MockAuth != nil {
		cfg.MockAuth = *jc.MockAuth
	}
	if jc.MockDelay != nil {
		cfg.MockDelay = jc.MockDelay.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CatalogStaleTime != nil {
		cfg.CatalogStaleTime = jc.CatalogStaleTime.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
