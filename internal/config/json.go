package config

import (
	"encoding/json"
	"os"

	"github.com/4citeB4U/AllwaysTrucking/internal/flagx"
	"github.com/4citeB4U/AllwaysTrucking/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so durations can be given as strings like "3s" or as
// integer nanoseconds. Pointer fields distinguish "absent" from zero values.
type JsonConfig struct {
	DataDir         string          `json:"data_dir"`
	DatabaseFile    string          `json:"database_file"`
	LogLevel        string          `json:"log_level"`
	SeedCatalog     *bool           `json:"seed_catalog"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. Without that flag nothing is loaded. A config file
// that cannot be read or parsed is a startup error and panics.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.SeedCatalog != nil {
		cfg.SeedCatalog = *jc.SeedCatalog
	}
	if jc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Std()
	}
}
