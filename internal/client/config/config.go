package config

import "time"

// Config holds runtime settings for the photokeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - PollInterval: how often the background poller refreshes the record
//     list (picks up tag extraction finishing server-side).
//   - DatabaseFile: path of the local sqlite cache.
type Config struct {
	ServerEndpointAddr string
	PollInterval       time.Duration
	DatabaseFile       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8000"
	c.PollInterval = 10 * time.Second
	c.DatabaseFile = "photokeeper.db"
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
