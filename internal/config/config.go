// Package config loads runtime settings for the AdCreativeX client.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - DatabaseDSN: path of the local sqlite database file.
//   - SimulatedLatency: artificial delay applied to each session operation,
//     modeling the backend round-trip the local store stands in for.
//   - LinkTokenSecret: HS256 secret shared with the simulated ad-platform
//     connector.
//   - LinkTokenValidity: lifetime of minted link tokens.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	DatabaseDSN       string
	SimulatedLatency  time.Duration
	LinkTokenSecret   string
	LinkTokenValidity time.Duration
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "adcx.db"
	c.SimulatedLatency = 500 * time.Millisecond
	c.LinkTokenSecret = "dev-only-link-secret"
	c.LinkTokenValidity = time.Hour
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given) and command-line flags. Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
