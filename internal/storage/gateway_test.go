package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/eventhub/internal/logging"
	"github.com/dmitrijs2005/eventhub/internal/models"
	"github.com/dmitrijs2005/eventhub/internal/storage/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T) (*Gateway, *kv.MemoryRepository) {
	t.Helper()
	repo := kv.NewMemoryRepository()
	return NewGateway(repo, time.Second, logging.Discard()), repo
}

// failingRepo returns err from every call.
type failingRepo struct {
	kv.Repository
	err error
}

func (f failingRepo) Get(context.Context, string) ([]byte, error)      { return nil, f.err }
func (f failingRepo) Set(context.Context, string, []byte) error        { return f.err }
func (f failingRepo) SetMany(context.Context, map[string][]byte) error { return f.err }
func (f failingRepo) List(context.Context) (map[string][]byte, error)  { return nil, f.err }

func boolPtr(b bool) *bool { return &b }

func TestGateway_RoundTrip(t *testing.T) {
	ctx := context.Background()

	events := []models.Event{
		{ID: "e1", Title: "T", Description: "D", Date: "2024-06-15", Location: "L", ImageURL: "http://img", Attendees: []string{"u1", "u2"}},
		{ID: "e2", Title: "Other", Attendees: []string{}},
	}
	users := []models.User{
		{ID: "u1", Name: "alice", Email: "alice@x.com", CreatedAt: "2024-01-01T00:00:00.000Z", LastLogin: "2024-01-01T00:00:00.000Z"},
		{ID: "u2", Name: "admin", Email: "admin@x.com", IsAdmin: true, IsActive: boolPtr(false)},
	}

	t.Run("events", func(t *testing.T) {
		g, _ := newGateway(t)
		require.NoError(t, g.SaveEvents(ctx, events))
		got, err := g.LoadEvents(ctx)
		require.NoError(t, err)
		assert.Equal(t, events, got)
	})

	t.Run("empty events", func(t *testing.T) {
		g, _ := newGateway(t)
		require.NoError(t, g.SaveEvents(ctx, []models.Event{}))
		got, err := g.LoadEvents(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("users", func(t *testing.T) {
		g, _ := newGateway(t)
		require.NoError(t, g.SaveUsers(ctx, users))
		got, err := g.LoadUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, users, got)
	})

	t.Run("empty users", func(t *testing.T) {
		g, _ := newGateway(t)
		require.NoError(t, g.SaveUsers(ctx, nil))
		got, err := g.LoadUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.User{}, got)
	})

	t.Run("session", func(t *testing.T) {
		g, _ := newGateway(t)
		for _, state := range []models.AuthState{models.Anonymous(), models.Authenticated(users[1])} {
			require.NoError(t, g.SaveAuth(ctx, state))
			got, err := g.LoadAuth(ctx)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, state, *got)
		}
	})
}

func TestGateway_Defaults(t *testing.T) {
	ctx := context.Background()
	g, _ := newGateway(t)

	events, err := g.LoadEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Event{}, events)

	users, err := g.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{}, users)

	auth, err := g.LoadAuth(ctx)
	require.NoError(t, err)
	assert.Nil(t, auth)

	var dst map[string]string
	found, err := g.Load(ctx, "nothing", &dst)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dst)
}

func TestGateway_StoredLayout(t *testing.T) {
	ctx := context.Background()
	g, repo := newGateway(t)

	require.NoError(t, g.SaveAuth(ctx, models.Anonymous()))
	raw, err := repo.Get(ctx, KeyAuth)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":null,"isAuthenticated":false}`, string(raw))

	require.NoError(t, g.SaveEvents(ctx, nil))
	raw, err = repo.Get(ctx, KeyEvents)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))
}

func TestGateway_CorruptDataPropagates(t *testing.T) {
	ctx := context.Background()
	g, repo := newGateway(t)
	require.NoError(t, repo.Set(ctx, KeyEvents, []byte(`{not json`)))

	_, err := g.LoadEvents(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode eventhub_events")
}

func TestGateway_EncodeErrorPropagates(t *testing.T) {
	g, _ := newGateway(t)
	err := g.Save(context.Background(), "bad", func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode bad")
}

func TestGateway_RepositoryErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("quota exceeded")
	g := NewGateway(failingRepo{err: boom}, 0, logging.Discard())

	assert.ErrorIs(t, g.SaveEvents(ctx, nil), boom)
	_, err := g.LoadUsers(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = g.LoadAuth(ctx)
	assert.ErrorIs(t, err, boom)
}

// deadlineRepo records whether the context it received had a deadline.
type deadlineRepo struct {
	*kv.MemoryRepository
	hadDeadline bool
}

func (d *deadlineRepo) Set(ctx context.Context, key string, value []byte) error {
	_, d.hadDeadline = ctx.Deadline()
	return d.MemoryRepository.Set(ctx, key, value)
}

func TestGateway_TimeoutApplied(t *testing.T) {
	repo := &deadlineRepo{MemoryRepository: kv.NewMemoryRepository()}

	require.NoError(t, NewGateway(repo, time.Second, logging.Discard()).SaveAuth(context.Background(), models.Anonymous()))
	assert.True(t, repo.hadDeadline)

	require.NoError(t, NewGateway(repo, 0, logging.Discard()).SaveAuth(context.Background(), models.Anonymous()))
	assert.False(t, repo.hadDeadline)
}
