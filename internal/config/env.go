package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if present; real environment
// variables win over it (godotenv does not override existing variables).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("TRAININGHUB_DATA_DIR"); ok {
		cfg.DataDir = v
	}
	if v, ok := os.LookupEnv("TRAININGHUB_DB_FILE"); ok {
		cfg.DatabaseFile = v
	}
	if v, ok := os.LookupEnv("TRAININGHUB_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("TRAININGHUB_SEED_CATALOG"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SeedCatalog = b
		}
	}
	if v, ok := os.LookupEnv("TRAININGHUB_SHUTDOWN_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ShutdownTimeout = d
		}
	}
}
