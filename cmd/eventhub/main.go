package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/eventhub/internal/buildinfo"
	"github.com/dmitrijs2005/eventhub/internal/common"
	"github.com/dmitrijs2005/eventhub/internal/config"
	"github.com/dmitrijs2005/eventhub/internal/logging"
	urfave "github.com/urfave/cli/v2"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(cfg, log)
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error(ctx, "eventhub failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// newApp declares the command tree. The global flags are parsed by the
// config package; they are listed here so the CLI accepts them and shows
// them in help.
func newApp(cfg *config.Config, log logging.Logger) *urfave.App {
	return &urfave.App{
		Name:    common.AppName,
		Usage:   "Browse events, RSVP and manage users from the terminal.",
		Version: buildinfo.Version,
		Flags: []urfave.Flag{
			&urfave.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to JSON config file"},
			&urfave.StringFlag{Name: "b", Usage: "storage backend: sqlite, postgres, bolt, s3 or memory"},
			&urfave.StringFlag{Name: "d", Usage: "database DSN for sqlite and postgres"},
			&urfave.IntFlag{Name: "t", Usage: "storage timeout in seconds"},
			&urfave.StringFlag{Name: "l", Usage: "log level: debug, info, warn or error"},
		},
		Action: func(c *urfave.Context) error {
			return runShell(c.Context, cfg, log)
		},
		Commands: []*urfave.Command{
			shellCommand(cfg, log),
			eventsCommand(cfg, log),
			exportCommand(cfg, log),
			backupCommand(cfg, log),
			restoreCommand(cfg, log),
			versionCommand(),
		},
	}
}
