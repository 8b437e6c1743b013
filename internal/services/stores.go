package services

import (
	"context"

	"github.com/dmitrijs2005/eventhub/internal/models"
)

// EventStore persists the events collection. *storage.Gateway implements it.
type EventStore interface {
	LoadEvents(ctx context.Context) ([]models.Event, error)
	SaveEvents(ctx context.Context, events []models.Event) error
}

// UserStore persists the users collection.
type UserStore interface {
	LoadUsers(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error
}

// SessionStore persists the cached session state.
type SessionStore interface {
	LoadAuth(ctx context.Context) (*models.AuthState, error)
	SaveAuth(ctx context.Context, state models.AuthState) error
}
