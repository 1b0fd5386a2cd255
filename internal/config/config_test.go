package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "127.0.0.1:2053", cfg.ListenAddr())
	assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout())
	assert.False(t, cfg.API.Enabled)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"host": "0.0.0.0", "port": 53},
		"upstream": {"address": "1.1.1.1:53", "timeout": "2s"},
		"records": {
			"static": {
				"internal.example": {"ttl": 300, "address": "10.0.0.5"}
			}
		},
		"api": {"enabled": true, "host": "127.0.0.1", "port": 9090, "api_key": "secret"}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:53", cfg.ListenAddr())
	assert.Equal(t, "1.1.1.1:53", cfg.Upstream.Address)
	assert.Equal(t, 2*time.Second, cfg.UpstreamTimeout())
	assert.Equal(t, "127.0.0.1:9090", cfg.APIAddr())
	assert.Equal(t, "secret", cfg.API.APIKey)

	rec, ok := cfg.Records.Static["internal.example"]
	require.True(t, ok)
	assert.Equal(t, uint32(300), rec.TTL)
	assert.Equal(t, "10.0.0.5", rec.Address)

	// Untouched sections keep their defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "{not json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"upstream without port", func(c *Config) { c.Upstream.Address = "1.1.1.1" }, true},
		{"upstream ok", func(c *Config) { c.Upstream.Address = "1.1.1.1:53" }, false},
		{"bad timeout", func(c *Config) { c.Upstream.Timeout = "soon" }, true},
		{"negative timeout", func(c *Config) { c.Upstream.Timeout = "-1s" }, true},
		{"bad static address", func(c *Config) {
			c.Records.Static = map[string]StaticRecord{"x.example": {Address: "not-an-ip"}}
		}, true},
		{"empty static domain", func(c *Config) {
			c.Records.Static = map[string]StaticRecord{"": {Address: "10.0.0.1"}}
		}, true},
		{"api port out of range", func(c *Config) {
			c.API.Enabled = true
			c.API.Port = 0
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
