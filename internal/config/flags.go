package config

import (
	"flag"
	"os"

	"github.com/4citeB4U/AllwaysTrucking/internal/flagx"
)

// parseFlags overlays Config with values from the command line. Only flags
// owned by this stage are parsed; -c/-config is consumed by parseJson.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-d", "-database", "--database", "-data-dir", "--data-dir", "-log-level", "--log-level",
	})

	var (
		database string
		dataDir  string
		logLevel string
	)

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&database, "database", "", "SQLite database file name")
	fs.StringVar(&database, "d", "", "SQLite database file name (short)")
	fs.StringVar(&dataDir, "data-dir", "", "Local data directory")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	_ = fs.Parse(args)

	if database != "" {
		cfg.DatabaseFile = database
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
}
