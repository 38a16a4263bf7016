package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the notable CLI.
//
// Fields:
//   - BaseURL: base URL of the notes backend (scheme://host[:port]).
//   - HTTPTimeout: per-request timeout; zero leaves the transport default.
//   - LogFormat: "json" (zap) or "text" (slog).
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	LogFormat   string
}

// ErrNoBaseURL is returned by LoadConfig when no source supplied a base
// URL. Outside tests this is a fatal configuration error.
var ErrNoBaseURL = errors.New("BASEURL is not set")

// LoadDefaults populates c with sensible defaults. The base URL has no
// default: it must come from a config file, the environment, or a flag.
func (c *Config) LoadDefaults() {
	c.BaseURL = ""
	c.HTTPTimeout = 0
	c.LogFormat = "json"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment (.env aware), and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	if cfg.BaseURL == "" {
		return nil, ErrNoBaseURL
	}
	return cfg, nil
}
