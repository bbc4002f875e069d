package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:4000", c.AuthEndpointAddr)
	assert.Equal(t, "http://localhost:3000", c.DataBaseURL)
	assert.Equal(t, StorageSQLite, c.StorageBackend)
	assert.True(t, c.MockAuth)
	assert.Equal(t, 700*time.Millisecond, c.MockDelay)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 5*time.Minute, c.CatalogStaleTime)
	require.NoError(t, c.Validate())
}

func TestLoad_DefaultsOnly(t *testing.T) {
	t.Setenv("LAQTAHA_CONFIG", "")

	cfg, err := Load(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults ok", mutate: func(c *Config) {}},
		{name: "memory ok", mutate: func(c *Config) { c.StorageBackend = StorageMemory }},
		{name: "unknown backend", mutate: func(c *Config) { c.StorageBackend = "etcd" }, wantErr: "unknown storage backend"},
		{name: "sqlite without path", mutate: func(c *Config) { c.SQLitePath = "" }, wantErr: "database path"},
		{name: "redis without addr", mutate: func(c *Config) {
			c.StorageBackend = StorageRedis
			c.RedisAddr = ""
		}, wantErr: "redis storage"},
		{name: "real auth without endpoint", mutate: func(c *Config) {
			c.MockAuth = false
			c.AuthEndpointAddr = ""
		}, wantErr: "auth endpoint"},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, wantErr: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_PanicsOnInvalid(t *testing.T) {
	t.Setenv("LAQTAHA_CONFIG", "")
	t.Setenv("LAQTAHA_STORAGE", "etcd")

	require.Panics(t, func() { LoadConfig() })
}
