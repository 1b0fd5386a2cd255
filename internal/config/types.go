package config

// ServerConfig contains the DNS listener settings.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// UpstreamConfig names the forwarding resolver, if any. An empty Address
// disables forwarding: unresolved questions simply receive no answer.
type UpstreamConfig struct {
	Address string `json:"address"` // host:port, e.g. "1.1.1.1:53"
	Timeout string `json:"timeout"` // per-query reply wait, e.g. "5s"
}

// StaticRecord is one configured A record.
type StaticRecord struct {
	TTL     uint32 `json:"ttl"`
	Address string `json:"address"` // dotted-quad IPv4
}

// RecordsConfig controls how the record store is seeded.
type RecordsConfig struct {
	// Database is an optional SQLite file holding seed records. Records
	// learned from the upstream are never written back to it.
	Database string `json:"database,omitempty"`

	// Static entries are merged over the built-in seed table.
	Static map[string]StaticRecord `json:"static,omitempty"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level       string            `json:"level"`
	JSON        bool              `json:"json"`
	IncludePID  bool              `json:"include_pid"`
	ExtraFields map[string]string `json:"extra_fields,omitempty"`
}

// APIConfig contains management API settings.
//
// APIKey is a shared secret; handlers never echo it back.
type APIConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
	APIKey  string `json:"api_key,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Upstream UpstreamConfig `json:"upstream"`
	Records  RecordsConfig  `json:"records"`
	Logging  LoggingConfig  `json:"logging"`
	API      APIConfig      `json:"api"`
}
