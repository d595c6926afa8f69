package config

import (
	"flag"
	"os"
	"time"

	"github.com/adcreativex/adcreativex/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local database file
//	-l int      simulated backend latency in milliseconds
//	-v string   log level (debug, info, warn, error)
//
// Arguments are filtered with flagx.FilterArgs first so flags owned by other
// components do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	latencyMs := fs.Int("l", int(cfg.SimulatedLatency.Milliseconds()), "simulated backend latency (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SimulatedLatency = time.Duration(*latencyMs) * time.Millisecond
}
