package migrations

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func openFileDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUp_CreatesKVStoreAndGooseTable(t *testing.T) {
	db := openFileDB(t)

	require.NoError(t, Up(context.Background(), db, "sqlite3", DirSQLite))

	require.True(t, tableExists(t, db, "kv_store"))
	require.True(t, tableExists(t, db, "goose_db_version"))
}

func TestUp_IsIdempotent(t *testing.T) {
	db := openFileDB(t)
	ctx := context.Background()

	require.NoError(t, Up(ctx, db, "sqlite3", DirSQLite))
	require.NoError(t, Up(ctx, db, "sqlite3", DirSQLite), "second run must be a no-op")
}

func TestUp_UnknownDialect(t *testing.T) {
	db := openFileDB(t)

	err := Up(context.Background(), db, "oracle-ish", DirSQLite)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set goose dialect")
}

func TestUp_WrapsGooseError(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	db := openFileDB(t)
	err := Up(context.Background(), db, "postgres", DirPostgres)
	require.Error(t, err)
	require.Contains(t, err.Error(), "migrations (postgres): boom")
}

func TestMigrations_EmbedsBothDialects(t *testing.T) {
	for _, dir := range []string{DirSQLite, DirPostgres} {
		entries, err := Migrations.ReadDir(dir)
		require.NoError(t, err)
		require.NotEmpty(t, entries, dir)
	}
}
