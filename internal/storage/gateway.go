// Package storage is the persistence gateway: the only code that reads or
// writes the durable key/value store. Collections are stored as JSON text
// under fixed keys; decoding and encoding errors are returned, never
// swallowed.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eventhub/internal/logging"
	"github.com/dmitrijs2005/eventhub/internal/models"
	"github.com/dmitrijs2005/eventhub/internal/storage/kv"
)

// Storage keys.
const (
	KeyEvents = "eventhub_events"
	KeyUsers  = "eventhub_users"
	KeyAuth   = "eventhub_auth"
)

// Gateway serialises values to JSON and stores them in a kv.Repository.
type Gateway struct {
	repo    kv.Repository
	timeout time.Duration
	log     logging.Logger
}

// NewGateway wraps repo. A positive timeout bounds every repository call.
func NewGateway(repo kv.Repository, timeout time.Duration, log logging.Logger) *Gateway {
	return &Gateway{repo: repo, timeout: timeout, log: log.With("module", "storage")}
}

func (g *Gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.timeout)
}

// Save encodes value and writes it under key.
func (g *Gateway) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	if err := g.repo.Set(ctx, key, data); err != nil {
		return err
	}
	g.log.Debug(ctx, "saved", "key", key, "bytes", len(data))
	return nil
}

// Load decodes the value under key into dst. It reports false, and leaves
// dst untouched, when the key is absent.
func (g *Gateway) Load(ctx context.Context, key string, dst any) (bool, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	data, err := g.repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (g *Gateway) SaveEvents(ctx context.Context, events []models.Event) error {
	if events == nil {
		events = []models.Event{}
	}
	return g.Save(ctx, KeyEvents, events)
}

// LoadEvents returns the stored events, or an empty slice when none are
// stored.
func (g *Gateway) LoadEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if _, err := g.Load(ctx, KeyEvents, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (g *Gateway) SaveUsers(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	return g.Save(ctx, KeyUsers, users)
}

// LoadUsers returns the stored users, or an empty slice when none are
// stored.
func (g *Gateway) LoadUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := g.Load(ctx, KeyUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (g *Gateway) SaveAuth(ctx context.Context, state models.AuthState) error {
	return g.Save(ctx, KeyAuth, state)
}

// LoadAuth returns the cached session, or nil when none is cached.
func (g *Gateway) LoadAuth(ctx context.Context) (*models.AuthState, error) {
	var state models.AuthState
	found, err := g.Load(ctx, KeyAuth, &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}
