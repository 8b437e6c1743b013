package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the behaviour every backend must share.
func runContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Helper()

	t.Run("get absent key returns nil, nil", func(t *testing.T) {
		repo := newRepo(t)
		v, err := repo.Get(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set then get, then overwrite", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		require.NoError(t, repo.Set(ctx, "eventhub_events", []byte(`[1]`)))
		v, err := repo.Get(ctx, "eventhub_events")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[1]`), v)

		require.NoError(t, repo.Set(ctx, "eventhub_events", []byte(`[1,2]`)))
		v, err = repo.Get(ctx, "eventhub_events")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[1,2]`), v)
	})

	t.Run("set many, list, delete, clear", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		require.NoError(t, repo.SetMany(ctx, map[string][]byte{
			"a": []byte("1"),
			"b": []byte("2"),
			"c": []byte("3"),
		}))

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2"), "c": []byte("3")}, all)

		require.NoError(t, repo.Delete(ctx, "b"))
		require.NoError(t, repo.Delete(ctx, "b"), "deleting twice is not an error")

		all, err = repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
		assert.NotContains(t, all, "b")

		require.NoError(t, repo.Clear(ctx))
		all, err = repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		// still usable after Clear
		require.NoError(t, repo.Set(ctx, "a", []byte("again")))
		v, err := repo.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, []byte("again"), v)
	})

	t.Run("returned values are not aliased", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		in := []byte("value")
		require.NoError(t, repo.Set(ctx, "k", in))
		in[0] = 'X'

		out, err := repo.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), out)
		out[0] = 'Y'

		again, err := repo.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), again)
	})
}
