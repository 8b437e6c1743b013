package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/eventhub/internal/logging"
	"github.com/dmitrijs2005/eventhub/internal/models"
)

// EventService is the in-memory authority for events.
//
// Contract:
//   - List returns events in insertion order.
//   - Update, Delete and ToggleAttendance on an unknown id are silent no-ops.
//   - ToggleAttendance with an empty user id does nothing.
//   - Every applied mutation is persisted; a persistence error is returned.
type EventService interface {
	List() []models.Event
	Get(id string) (models.Event, bool)
	Create(ctx context.Context, form models.EventFormData) (models.Event, error)
	Update(ctx context.Context, id string, form models.EventFormData) error
	Delete(ctx context.Context, id string) error
	ToggleAttendance(ctx context.Context, eventID, userID string) error
	IsAttending(eventID, userID string) bool
}

type eventService struct {
	mu     sync.Mutex
	store  EventStore
	events *orderedMap[models.Event]
	log    logging.Logger
}

// NewEventService loads the stored events. When none are stored and seed is
// set, the demo events are installed and persisted.
func NewEventService(ctx context.Context, store EventStore, seed bool, log logging.Logger) (EventService, error) {
	stored, err := store.LoadEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	s := &eventService{
		store:  store,
		events: newOrderedMap[models.Event](),
		log:    log.With("module", "events"),
	}
	for _, e := range stored {
		s.events.set(e.ID, e.Clone())
	}

	if s.events.len() == 0 && seed {
		for _, e := range DemoEvents() {
			s.events.set(e.ID, e)
		}
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		s.log.Info(ctx, "demo events installed", "count", s.events.len())
	}

	return s, nil
}

func (s *eventService) List() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events.values(models.Event.Clone)
}

func (s *eventService) Get(id string) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events.get(id)
	if !ok {
		return models.Event{}, false
	}
	return e.Clone(), true
}

func (s *eventService) Create(ctx context.Context, form models.EventFormData) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := form.Apply(models.Event{ID: newID(), Attendees: []string{}})
	s.events.set(e.ID, e)

	s.log.Debug(ctx, "event created", "id", e.ID, "title", e.Title)
	return e.Clone(), s.persist(ctx)
}

func (s *eventService) Update(ctx context.Context, id string, form models.EventFormData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events.get(id)
	if !ok {
		return nil
	}
	s.events.set(id, form.Apply(e))

	s.log.Debug(ctx, "event updated", "id", id)
	return s.persist(ctx)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.events.delete(id) {
		return nil
	}

	s.log.Debug(ctx, "event deleted", "id", id)
	return s.persist(ctx)
}

// ToggleAttendance adds userID to the attendees of the event, or removes it
// when already present.
func (s *eventService) ToggleAttendance(ctx context.Context, eventID, userID string) error {
	if userID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events.get(eventID)
	if !ok {
		return nil
	}

	e = e.Clone()
	attending := e.IsAttending(userID)
	if attending {
		e.Attendees = slices.DeleteFunc(e.Attendees, func(id string) bool { return id == userID })
	} else {
		e.Attendees = append(e.Attendees, userID)
	}
	s.events.set(eventID, e)

	s.log.Debug(ctx, "attendance toggled", "event", eventID, "user", userID, "attending", !attending)
	return s.persist(ctx)
}

func (s *eventService) IsAttending(eventID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events.get(eventID)
	return ok && e.IsAttending(userID)
}

// persist writes the whole collection. Callers hold mu.
func (s *eventService) persist(ctx context.Context) error {
	if err := s.store.SaveEvents(ctx, s.events.values(models.Event.Clone)); err != nil {
		s.log.Error(ctx, "failed to save events", "error", err)
		return fmt.Errorf("save events: %w", err)
	}
	return nil
}
