package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eventhub/internal/common"
	"github.com/dmitrijs2005/eventhub/internal/models"
)

// SnapshotVersion is written into every backup; Import rejects others.
const SnapshotVersion = 1

// Snapshot is a portable copy of everything the gateway stores.
type Snapshot struct {
	Version    int              `json:"version"`
	ExportedAt string           `json:"exportedAt"`
	Events     []models.Event   `json:"events"`
	Users      []models.User    `json:"users"`
	Auth       models.AuthState `json:"auth"`
}

// Export reads the three collections. Absent keys export as empty
// collections and an anonymous session.
func (g *Gateway) Export(ctx context.Context) (Snapshot, error) {
	events, err := g.LoadEvents(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	users, err := g.LoadUsers(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	auth, err := g.LoadAuth(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	s := Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: time.Now().UTC().Format(common.TimestampLayout),
		Events:     events,
		Users:      users,
		Auth:       models.Anonymous(),
	}
	if auth != nil {
		s.Auth = auth.Normalize()
	}
	return s, nil
}

// Import replaces the three stored collections with the snapshot contents
// in a single SetMany call.
func (g *Gateway) Import(ctx context.Context, s Snapshot) error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("%w: version %d, want %d", common.ErrorIncompatibleSnapshot, s.Version, SnapshotVersion)
	}

	events := s.Events
	if events == nil {
		events = []models.Event{}
	}
	users := s.Users
	if users == nil {
		users = []models.User{}
	}

	values := make(map[string][]byte, 3)
	for key, v := range map[string]any{
		KeyEvents: events,
		KeyUsers:  users,
		KeyAuth:   s.Auth.Normalize(),
	} {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		values[key] = data
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	if err := g.repo.SetMany(ctx, values); err != nil {
		return err
	}
	g.log.Info(ctx, "snapshot imported", "events", len(events), "users", len(users))
	return nil
}
