package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/eventhub/internal/logging"
	"github.com/dmitrijs2005/eventhub/internal/models"
	"github.com/dmitrijs2005/eventhub/internal/storage"
	"github.com/dmitrijs2005/eventhub/internal/storage/kv"
)

var errStorage = errors.New("quota exceeded")

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// stubSeams makes ids sequential (id-1, id-2, ...) and freezes the clock.
func stubSeams(t *testing.T) {
	t.Helper()
	origID, origNow := newID, now
	n := 0
	newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { newID, now = origID, origNow })
}

func newTestGateway(t *testing.T) *storage.Gateway {
	t.Helper()
	return storage.NewGateway(kv.NewMemoryRepository(), 0, logging.Discard())
}

// countingStore wraps a gateway, counts writes and can fail them.
type countingStore struct {
	*storage.Gateway
	eventSaves int
	userSaves  int
	authSaves  int
	failSaves  bool
	failLoads  bool
}

func (c *countingStore) SaveEvents(ctx context.Context, events []models.Event) error {
	c.eventSaves++
	if c.failSaves {
		return errStorage
	}
	return c.Gateway.SaveEvents(ctx, events)
}

func (c *countingStore) LoadEvents(ctx context.Context) ([]models.Event, error) {
	if c.failLoads {
		return nil, errStorage
	}
	return c.Gateway.LoadEvents(ctx)
}

func (c *countingStore) SaveUsers(ctx context.Context, users []models.User) error {
	c.userSaves++
	if c.failSaves {
		return errStorage
	}
	return c.Gateway.SaveUsers(ctx, users)
}

func (c *countingStore) LoadUsers(ctx context.Context) ([]models.User, error) {
	if c.failLoads {
		return nil, errStorage
	}
	return c.Gateway.LoadUsers(ctx)
}

func (c *countingStore) SaveAuth(ctx context.Context, state models.AuthState) error {
	c.authSaves++
	if c.failSaves {
		return errStorage
	}
	return c.Gateway.SaveAuth(ctx, state)
}

func (c *countingStore) LoadAuth(ctx context.Context) (*models.AuthState, error) {
	if c.failLoads {
		return nil, errStorage
	}
	return c.Gateway.LoadAuth(ctx)
}

func newCountingStore(t *testing.T) *countingStore {
	t.Helper()
	return &countingStore{Gateway: newTestGateway(t)}
}

func sampleForm(title string) models.EventFormData {
	return models.EventFormData{
		Title:       title,
		Description: "D",
		Date:        "2024-09-01",
		Location:    "Riga",
		ImageURL:    "https://example.com/img.jpg",
	}
}
