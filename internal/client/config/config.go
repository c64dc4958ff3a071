// Package config loads the runtime settings for the HR desktop client.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - ServerBaseURL: base URL of the HR backend, e.g. "http://127.0.0.1:8080".
//   - RequestTimeout: per-request HTTP timeout.
//   - SettingsDBPath: path of the local SQLite settings database.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	SettingsDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 30 * time.Second
	c.SettingsDBPath = "hrdesk.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
