package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	t.Setenv("LAQTAHA_CONFIG", "")

	path := writeTempJSON(t, map[string]any{
		"auth_endpoint_addr": "https://api.example",
		"storage_backend":    "memory",
		"mock_auth":          false,
		"request_timeout":    "4s",
		"catalog_stale_time": 1000000000,
	})

	t.Run("partial file overrides named fields only", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(cfg, []string{"-c", path}))

		assert.Equal(t, "https://api.example", cfg.AuthEndpointAddr)
		assert.Equal(t, StorageMemory, cfg.StorageBackend)
		assert.False(t, cfg.MockAuth)
		assert.Equal(t, 4*time.Second, cfg.RequestTimeout)
		assert.Equal(t, time.Second, cfg.CatalogStaleTime)
		assert.Equal(t, "http://localhost:3000", cfg.DataBaseURL)
		assert.Equal(t, 700*time.Millisecond, cfg.MockDelay)
	})

	t.Run("no file selected leaves config untouched", func(t *testing.T) {
		cfg := &Config{AuthEndpointAddr: "keep"}
		require.NoError(t, parseJSON(cfg, nil))
		assert.Equal(t, "keep", cfg.AuthEndpointAddr)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))

		err := parseJSON(&Config{}, []string{"-config", bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("missing file", func(t *testing.T) {
		err := parseJSON(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "absent.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"auth_endpoint_addr": "http://from-json",
		"data_base_url":      "http://data-json",
		"log_level":          "debug",
	})
	t.Setenv("LAQTAHA_CONFIG", path)
	t.Setenv("LAQTAHA_AUTH_ENDPOINT", "http://from-env")
	t.Setenv("LAQTAHA_DATA_URL", "http://data-env")

	cfg, err := Load([]string{"-a", "http://from-flag"})
	require.NoError(t, err)

	assert.Equal(t, "http://from-flag", cfg.AuthEndpointAddr)
	assert.Equal(t, "http://data-env", cfg.DataBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}
