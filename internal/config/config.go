// Package config loads the portal's runtime settings. Values are layered:
// built-in defaults, then an optional JSON file, then command-line flags,
// with later sources taking precedence.
package config

import "time"

// Config holds runtime settings for the portal CLI.
//
// RequestTimeout bounds each provider fetch (directory and catalog); the
// fetch code itself enforces no timeout, the CLI imposes this one via
// context.
type Config struct {
	DataServerAddr string
	SessionDBPath  string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataServerAddr = "http://127.0.0.1:8080"
	c.SessionDBPath = "portal.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
