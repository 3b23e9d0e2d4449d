package config

import "time"

// Config holds runtime settings for the intake CLI.
//
// Fields:
//   - ServerAddr: base URL of the backend HTTP API.
//   - QuietPeriod: autosave debounce window for the wizard.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerAddr     string
	QuietPeriod    time.Duration
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8080"
	c.QuietPeriod = 700 * time.Millisecond
	c.RequestTimeout = 30 * time.Second
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
