package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/eventhub/internal/buildinfo"
	"github.com/dmitrijs2005/eventhub/internal/cli"
	"github.com/dmitrijs2005/eventhub/internal/config"
	"github.com/dmitrijs2005/eventhub/internal/logging"
	urfave "github.com/urfave/cli/v2"
)

func shellCommand(cfg *config.Config, log logging.Logger) *urfave.Command {
	return &urfave.Command{
		Name:  "shell",
		Usage: "Start the interactive shell (default).",
		Action: func(c *urfave.Context) error {
			return runShell(c.Context, cfg, log)
		},
	}
}

func runShell(ctx context.Context, cfg *config.Config, log logging.Logger) error {
	st, err := openStack(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	var in cli.LineReader
	if st.interactive() {
		rl, err := cli.NewReadlineReader(cfg.HistoryFile)
		if err != nil {
			return fmt.Errorf("init readline: %w", err)
		}
		defer rl.Close()
		in = rl
	} else {
		in = cli.NewScannerReader(os.Stdin, os.Stdout)
	}

	cli.NewApp(st.events, st.users, st.auth, in, os.Stdout, log).Run(ctx)
	return nil
}

func eventsCommand(cfg *config.Config, log logging.Logger) *urfave.Command {
	return &urfave.Command{
		Name:  "events",
		Usage: "Print the event list and exit.",
		Action: func(c *urfave.Context) error {
			st, err := openStack(c.Context, cfg, log)
			if err != nil {
				return err
			}
			defer st.Close(c.Context)

			cli.PrintEvents(os.Stdout, st.events.List(), st.auth.Current().UserID())
			return nil
		},
	}
}

func exportCommand(cfg *config.Config, log logging.Logger) *urfave.Command {
	return &urfave.Command{
		Name:  "export",
		Usage: "Write all events to an iCalendar file.",
		Flags: []urfave.Flag{
			&urfave.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "events.ics", Usage: "output file"},
		},
		Action: func(c *urfave.Context) error {
			st, err := openStack(c.Context, cfg, log)
			if err != nil {
				return err
			}
			defer st.Close(c.Context)

			path := c.String("out")
			n, skipped, err := cli.ExportCalendar(path, st.events.List(), time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d event(s) to %s\n", n, path)
			for _, id := range skipped {
				fmt.Printf("Skipped %s: no valid date\n", id)
			}
			return nil
		},
	}
}

func backupCommand(cfg *config.Config, log logging.Logger) *urfave.Command {
	return &urfave.Command{
		Name:  "backup",
		Usage: "Dump events, users and the cached session to a JSON file.",
		Flags: []urfave.Flag{
			&urfave.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "eventhub-backup.json", Usage: "output file"},
		},
		Action: func(c *urfave.Context) error {
			st, err := openStack(c.Context, cfg, log)
			if err != nil {
				return err
			}
			defer st.Close(c.Context)

			snap, err := cli.WriteBackup(c.Context, st.gateway, c.String("out"))
			if err != nil {
				return err
			}
			fmt.Printf("Backed up %d event(s) and %d user(s) to %s\n", len(snap.Events), len(snap.Users), c.String("out"))
			return nil
		},
	}
}

func restoreCommand(cfg *config.Config, log logging.Logger) *urfave.Command {
	return &urfave.Command{
		Name:  "restore",
		Usage: "Replace all stored data with the contents of a backup file.",
		Flags: []urfave.Flag{
			&urfave.StringFlag{Name: "in", Aliases: []string{"i"}, Required: true, Usage: "backup file"},
		},
		Action: func(c *urfave.Context) error {
			// Restore works on the raw store; services would reseed demo
			// events into an empty one first.
			repo, g, err := openGateway(c.Context, cfg, log)
			if err != nil {
				return err
			}
			defer repo.Close()

			snap, err := cli.ReadBackup(c.Context, g, c.String("in"))
			if err != nil {
				return err
			}
			fmt.Printf("Restored %d event(s) and %d user(s)\n", len(snap.Events), len(snap.Users))
			return nil
		},
	}
}

func versionCommand() *urfave.Command {
	return &urfave.Command{
		Name:  "version",
		Usage: "Print build information.",
		Action: func(c *urfave.Context) error {
			buildinfo.PrintBuildData(os.Stdout)
			return nil
		},
	}
}
