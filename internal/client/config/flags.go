package config

import (
	"flag"
	"os"
	"time"

	"github.com/dkrasnov/notable/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the notes backend (default from Config)
//	-t int      request timeout in seconds, 0 for the transport default
//	-l string   log format, "json" or "text"
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the notes backend")
	timeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format (json or text)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*timeout) * time.Second
}
