package config

import (
	"flag"
	"os"
	"time"

	"github.com/carbontrail/carbontrail/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the marketplace API
//	-t int      request timeout in seconds
//	-d string   path to the local database file
//	-l string   log level
//
// The function filters os.Args to only the flags it knows about, via
// flagx.FilterArgs, so it can coexist with flags owned by other packages.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the marketplace API")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "path to the local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
