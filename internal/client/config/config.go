package config

import "time"

// Config holds runtime settings for the plotline CLI.
//
// Fields:
//   - BaseURL: root of the listing backend REST API.
//   - RequestTimeout: per-request deadline for backend calls.
//   - SessionDBPath: location of the local session database.
//   - OnlineCheckInterval: how often the client probes backend reachability.
type Config struct {
	BaseURL             string
	RequestTimeout      time.Duration
	SessionDBPath       string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "plotline.db"
	c.OnlineCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
