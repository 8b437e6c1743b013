package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventhub/internal/common"
)

// Event is a listed event and the set of user ids attending it.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	ImageURL    string   `json:"imageUrl"`
	Attendees   []string `json:"attendees"`
}

// IsAttending reports whether userID is in the attendee set.
func (e Event) IsAttending(userID string) bool {
	return slices.Contains(e.Attendees, userID)
}

// Clone returns a copy that does not share the attendee slice.
func (e Event) Clone() Event {
	e.Attendees = slices.Clone(e.Attendees)
	if e.Attendees == nil {
		e.Attendees = []string{}
	}
	return e
}

// EventFormData is the only input shape accepted for creating or editing an
// event.
type EventFormData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
}

// Apply overwrites the editable fields of e with the form values. Id and
// attendees are preserved.
func (f EventFormData) Apply(e Event) Event {
	e.Title = f.Title
	e.Description = f.Description
	e.Date = f.Date
	e.Location = f.Location
	e.ImageURL = f.ImageURL
	return e
}

// Validate mirrors what the input widgets enforce: every field is
// required and the date is a calendar date. Services do not call it.
func (f EventFormData) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", f.Title},
		{"description", f.Description},
		{"date", f.Date},
		{"location", f.Location},
		{"image url", f.ImageURL},
	}
	for _, fld := range fields {
		if strings.TrimSpace(fld.value) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrorValidation, fld.name)
		}
	}
	if _, err := time.Parse(common.DateLayout, f.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", common.ErrorValidation)
	}
	return nil
}

// FormFromEvent pre-fills an edit form.
func FormFromEvent(e Event) EventFormData {
	return EventFormData{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		ImageURL:    e.ImageURL,
	}
}
