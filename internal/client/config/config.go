package config

import "time"

// Config holds runtime settings for the PlantPal CLI.
//
// Fields:
//   - ServerURL: base URL of the REST API.
//   - DatabasePath: SQLite file holding the session token; "~" is expanded.
//   - HTTPTimeout: per-request timeout of the API client.
type Config struct {
	ServerURL    string
	DatabasePath string
	HTTPTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.DatabasePath = "~/.plantpal/client.db"
	c.HTTPTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags found in args. Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
