// Package config assembles runtime settings for the training hub.
//
// Sources are applied in order, later ones winning: built-in defaults, then
// environment variables (optionally from a .env file), then a JSON config
// file (-c/-config), then command-line flags.
package config

import "time"

// Config holds runtime settings for the training hub CLI.
type Config struct {
	// DataDir is the subdirectory (under the working directory) holding
	// local data, created on startup if missing.
	DataDir string

	// DatabaseFile is the SQLite file name inside DataDir.
	DatabaseFile string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// SeedCatalog controls whether the built-in course catalog is
	// upserted at startup.
	SeedCatalog bool

	// ShutdownTimeout bounds how long shutdown waits for in-flight work
	// after an interrupt.
	ShutdownTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.DatabaseFile = "traininghub.db"
	c.LogLevel = "info"
	c.SeedCatalog = true
	c.ShutdownTimeout = 3 * time.Second
}

// LoadConfig constructs a Config from all sources.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
