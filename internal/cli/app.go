package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/eventhub/internal/access"
	"github.com/dmitrijs2005/eventhub/internal/logging"
	"github.com/dmitrijs2005/eventhub/internal/models"
	"github.com/dmitrijs2005/eventhub/internal/services"
)

// App is the interactive shell: one session plus the two domain stores.
type App struct {
	events services.EventService
	users  services.UserService
	auth   services.AuthService
	in     LineReader
	out    io.Writer
	log    logging.Logger
	now    func() time.Time
}

func NewApp(events services.EventService, users services.UserService, auth services.AuthService,
	in LineReader, out io.Writer, log logging.Logger) *App {
	return &App{
		events: events,
		users:  users,
		auth:   auth,
		in:     in,
		out:    out,
		log:    log.With("module", "cli"),
		now:    time.Now,
	}
}

// Run starts the REPL and returns when the user leaves or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to eventhub (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.in)
}

func (a *App) session() models.AuthState {
	return a.auth.Current()
}

// status renders the prompt suffix: the signed-in name, with a marker for
// admins.
func (a *App) status() string {
	state := a.session()
	if !state.IsAuthenticated {
		return ""
	}
	if state.IsAdmin() {
		return fmt.Sprintf(" (%s, admin)", state.User.Name)
	}
	return fmt.Sprintf(" (%s)", state.User.Name)
}

// allow runs the authorization gate for action against the current session.
func (a *App) allow(ctx context.Context, action access.Action) error {
	if err := access.Check(a.session(), action); err != nil {
		a.log.Debug(ctx, "access denied", "action", action.String(), "user", a.session().UserID())
		return err
	}
	return nil
}
