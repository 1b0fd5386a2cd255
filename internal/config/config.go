// Package config loads and validates the server configuration.
package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"time"

	"stubdns/internal/resolvers"
	"stubdns/internal/store"
)

// Default returns a configuration with sensible local defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 2053,
		},
		Upstream: UpstreamConfig{
			Timeout: resolvers.DefaultUpstreamTimeout.String(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
	}
}

// Load reads the JSON configuration at path, layered over Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Upstream.Address != "" {
		if _, _, err := net.SplitHostPort(c.Upstream.Address); err != nil {
			return fmt.Errorf("upstream.address: %w", err)
		}
	}
	if c.Upstream.Timeout != "" {
		d, err := time.ParseDuration(c.Upstream.Timeout)
		if err != nil {
			return fmt.Errorf("upstream.timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("upstream.timeout must be positive, got %s", d)
		}
	}
	for domain, rec := range c.Records.Static {
		if domain == "" {
			return fmt.Errorf("records.static: empty domain")
		}
		if _, err := store.ParseIPv4(rec.Address); err != nil {
			return fmt.Errorf("records.static[%s]: %w", domain, err)
		}
	}
	if c.API.Enabled {
		if c.API.Port < 1 || c.API.Port > 65535 {
			return fmt.Errorf("api.port %d out of range", c.API.Port)
		}
	}
	return nil
}

// UpstreamTimeout returns the parsed upstream reply timeout.
// Validate must have accepted the configuration first.
func (c *Config) UpstreamTimeout() time.Duration {
	if c.Upstream.Timeout == "" {
		return resolvers.DefaultUpstreamTimeout
	}
	d, err := time.ParseDuration(c.Upstream.Timeout)
	if err != nil || d <= 0 {
		return resolvers.DefaultUpstreamTimeout
	}
	return d
}

// ListenAddr returns the DNS listener address as host:port.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Server.Host, fmt.Sprintf("%d", c.Server.Port))
}

// APIAddr returns the management API listen address as host:port.
func (c *Config) APIAddr() string {
	return net.JoinHostPort(c.API.Host, fmt.Sprintf("%d", c.API.Port))
}
