package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventhub/internal/access"
	"github.com/dmitrijs2005/eventhub/internal/calendar"
	"github.com/dmitrijs2005/eventhub/internal/common"
	"github.com/dmitrijs2005/eventhub/internal/models"
)

// Events prints every event in stored order. Events the current user
// attends are starred.
func (a *App) Events(_ context.Context) error {
	PrintEvents(a.out, a.events.List(), a.session().UserID())
	return nil
}

// PrintEvents writes a one-line summary per event.
func PrintEvents(w io.Writer, events []models.Event, userID string) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events.")
		return
	}
	for _, e := range events {
		mark := " "
		if userID != "" && e.IsAttending(userID) {
			mark = "*"
		}
		fmt.Fprintf(w, "%s [%s] %s | %s | %s | %d attending\n",
			mark, e.ID, e.Title, e.Date, e.Location, len(e.Attendees))
	}
}

func (a *App) Show(_ context.Context, id string) error {
	e, ok := a.events.Get(id)
	if !ok {
		return fmt.Errorf("event %s: %w", id, common.ErrorNotFound)
	}

	fmt.Fprintf(a.out, "%s\n", e.Title)
	fmt.Fprintf(a.out, "  id:        %s\n", e.ID)
	fmt.Fprintf(a.out, "  date:      %s\n", e.Date)
	fmt.Fprintf(a.out, "  location:  %s\n", e.Location)
	fmt.Fprintf(a.out, "  image:     %s\n", e.ImageURL)
	fmt.Fprintf(a.out, "  attendees: %d\n", len(e.Attendees))
	if uid := a.session().UserID(); uid != "" && e.IsAttending(uid) {
		fmt.Fprintln(a.out, "  you are attending")
	}
	fmt.Fprintf(a.out, "\n%s\n", e.Description)
	return nil
}

// RSVP toggles the current user's attendance.
func (a *App) RSVP(ctx context.Context, id string) error {
	if err := a.allow(ctx, access.ActionRSVP); err != nil {
		return err
	}
	if _, ok := a.events.Get(id); !ok {
		return fmt.Errorf("event %s: %w", id, common.ErrorNotFound)
	}

	uid := a.session().UserID()
	if err := a.events.ToggleAttendance(ctx, id, uid); err != nil {
		return err
	}

	if a.events.IsAttending(id, uid) {
		fmt.Fprintln(a.out, "You are attending.")
	} else {
		fmt.Fprintln(a.out, "You are no longer attending.")
	}
	return nil
}

func (a *App) AddEvent(ctx context.Context) error {
	if err := a.allow(ctx, access.ActionManageEvents); err != nil {
		return err
	}

	form, err := a.readEventForm(models.EventFormData{})
	if err != nil {
		return err
	}

	e, err := a.events.Create(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Event created: %s\n", e.ID)
	return nil
}

func (a *App) EditEvent(ctx context.Context, id string) error {
	if err := a.allow(ctx, access.ActionManageEvents); err != nil {
		return err
	}

	e, ok := a.events.Get(id)
	if !ok {
		return fmt.Errorf("event %s: %w", id, common.ErrorNotFound)
	}

	form, err := a.readEventForm(models.FormFromEvent(e))
	if err != nil {
		return err
	}

	if err := a.events.Update(ctx, id, form); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Event updated.")
	return nil
}

func (a *App) DeleteEvent(ctx context.Context, id string) error {
	if err := a.allow(ctx, access.ActionManageEvents); err != nil {
		return err
	}

	e, ok := a.events.Get(id)
	if !ok {
		return fmt.Errorf("event %s: %w", id, common.ErrorNotFound)
	}

	yes, err := confirm(a.in, fmt.Sprintf("Delete event %q?", e.Title))
	if err != nil || !yes {
		return err
	}

	if err := a.events.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Event deleted.")
	return nil
}

// readEventForm prompts for each field. Non-empty current values are
// offered in brackets and kept on an empty answer.
func (a *App) readEventForm(current models.EventFormData) (models.EventFormData, error) {
	form := current
	fields := []struct {
		label string
		dst   *string
	}{
		{"Title", &form.Title},
		{"Description", &form.Description},
		{"Date (YYYY-MM-DD)", &form.Date},
		{"Location", &form.Location},
		{"Image URL", &form.ImageURL},
	}

	for _, f := range fields {
		prompt := f.label
		if *f.dst != "" {
			prompt = fmt.Sprintf("%s [%s]", f.label, *f.dst)
		}
		v, err := getSimpleText(a.in, prompt, a.out)
		if err != nil {
			return models.EventFormData{}, err
		}
		if v != "" {
			*f.dst = v
		}
	}

	if err := form.Validate(); err != nil {
		return models.EventFormData{}, err
	}
	return form, nil
}

// Export writes all events to an .ics file.
func (a *App) Export(ctx context.Context, path string) error {
	if err := a.allow(ctx, access.ActionManageEvents); err != nil {
		return err
	}

	n, skipped, err := ExportCalendar(path, a.events.List(), a.now())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported %d event(s) to %s\n", n, path)
	if len(skipped) > 0 {
		fmt.Fprintf(a.out, "Skipped (no valid date): %s\n", strings.Join(skipped, ", "))
	}
	a.log.Info(ctx, "calendar exported", "path", path, "events", n, "skipped", len(skipped))
	return nil
}

// ExportCalendar encodes events into the file at path and reports how many
// were written and which ids were skipped.
func ExportCalendar(path string, events []models.Event, stamp time.Time) (int, []string, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, nil, fmt.Errorf("create %s: %w", path, err)
	}

	skipped, err := calendar.Encode(f, events, stamp)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", path, cerr)
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, skipped, err
	}
	return len(events) - len(skipped), skipped, nil
}
