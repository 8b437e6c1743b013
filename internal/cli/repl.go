package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dmitrijs2005/eventhub/internal/common"
	"github.com/dmitrijs2005/eventhub/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	session() models.AuthState

	Events(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	RSVP(ctx context.Context, id string) error

	AddEvent(ctx context.Context) error
	EditEvent(ctx context.Context, id string) error
	DeleteEvent(ctx context.Context, id string) error
	Users(ctx context.Context, term string) error
	ToggleAdmin(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
	Export(ctx context.Context, path string) error
}

// runREPL reads commands from lines until EOF or "exit"/"quit". The first
// token selects the command; the rest are its arguments. A failing command
// prints its error and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, lines LineReader) {
	for {
		line, err := lines.ReadLine(fmt.Sprintf("eventhub%s> ", statusFn()))
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				printlnFn("Use 'exit' or 'quit' to leave.")
				continue
			}
			if !errors.Is(err, io.EOF) {
				printlnFn("Error:", err)
			}
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if ctx.Err() != nil {
			return
		}

		cmd, args := parts[0], parts[1:]
		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		reportError(dispatch(ctx, a, cmd, args))
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		printHelp(a.session())
		return nil

	case "events", "ls":
		return a.Events(ctx)

	case "show":
		return withID(args, "show <id>", func(id string) error { return a.Show(ctx, id) })

	case "login":
		return a.Login(ctx)

	case "register":
		return a.Register(ctx)

	case "logout":
		return a.Logout(ctx)

	case "whoami":
		return a.WhoAmI(ctx)

	case "rsvp":
		return withID(args, "rsvp <id>", func(id string) error { return a.RSVP(ctx, id) })

	case "event":
		return dispatchEvent(ctx, a, args)

	case "users":
		return a.Users(ctx, strings.Join(args, " "))

	case "user":
		return dispatchUser(ctx, a, args)

	case "export":
		if len(args) != 1 {
			printlnFn("Usage: export <file.ics>")
			return nil
		}
		return a.Export(ctx, args[0])

	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}

func dispatchEvent(ctx context.Context, a execIface, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: event add | edit <id> | delete <id>")
		return nil
	}
	switch args[0] {
	case "add":
		return a.AddEvent(ctx)
	case "edit":
		return withID(args[1:], "event edit <id>", func(id string) error { return a.EditEvent(ctx, id) })
	case "delete":
		return withID(args[1:], "event delete <id>", func(id string) error { return a.DeleteEvent(ctx, id) })
	default:
		printlnFn("Usage: event add | edit <id> | delete <id>")
		return nil
	}
}

func dispatchUser(ctx context.Context, a execIface, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: user admin | active | delete <id>")
		return nil
	}
	switch args[0] {
	case "admin":
		return withID(args[1:], "user admin <id>", func(id string) error { return a.ToggleAdmin(ctx, id) })
	case "active":
		return withID(args[1:], "user active <id>", func(id string) error { return a.ToggleActive(ctx, id) })
	case "delete":
		return withID(args[1:], "user delete <id>", func(id string) error { return a.DeleteUser(ctx, id) })
	default:
		printlnFn("Usage: user admin | active | delete <id>")
		return nil
	}
}

func withID(args []string, usage string, fn func(id string) error) error {
	if len(args) != 1 {
		printlnFn("Usage:", usage)
		return nil
	}
	return fn(args[0])
}

func printHelp(state models.AuthState) {
	printlnFn("Available commands: help, events, show <id>, exit")
	if !state.IsAuthenticated {
		printlnFn("  login, register")
		return
	}
	printlnFn("  rsvp <id>, whoami, logout")
	if state.IsAdmin() {
		printlnFn("  event add | edit <id> | delete <id>")
		printlnFn("  users [term], user admin | active | delete <id>")
		printlnFn("  export <file.ics>")
	}
}

func reportError(err error) {
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorUnauthorized):
		printlnFn("Please log in first.")
	case errors.Is(err, common.ErrorForbidden):
		printlnFn("Admin access required.")
	case errors.Is(err, common.ErrorValidation):
		printlnFn("Invalid input:", err)
	case errors.Is(err, common.ErrorNotFound):
		printlnFn("Not found:", err)
	default:
		printlnFn("Error:", err)
	}
}
