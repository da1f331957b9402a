package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/plantpal/internal/flagx"
)

// FlagNames lists every command-line flag read by LoadConfig, including
// the config file flags. Callers strip them before parsing subcommands.
var FlagNames = []string{"-c", "-config", "-a", "-db", "-timeout"}

// parseFlags populates selected Config fields from command-line flags.
//
// args are filtered with flagx.FilterArgs first, so subcommands and their
// flags pass through untouched.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-db", "-timeout"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the PlantPal API")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "local database file")
	timeout := fs.Int("timeout", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*timeout) * time.Second
}
