package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/eventhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   storage backend: sqlite, postgres, bolt, s3 or memory
//	-d string   database DSN for the sqlite and postgres backends
//	-t int      storage timeout in seconds
//	-l string   log level: debug, info, warn or error
//
// args are filtered with flagx.FilterArgs so subcommand flags do not
// interfere. Only flags present in args override earlier sources. Parse
// errors panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-b", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorageBackend, "b", cfg.StorageBackend, "storage backend")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	storageTimeout := fs.Int("t", int(cfg.StorageTimeout.Seconds()), "storage timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.StorageTimeout = time.Duration(*storageTimeout) * time.Second
		}
	})
}
