package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/eventhub/internal/common"
	"github.com/dmitrijs2005/eventhub/internal/logging"
	"github.com/dmitrijs2005/eventhub/internal/models"
	"github.com/dmitrijs2005/eventhub/internal/storage"
	"github.com/dmitrijs2005/eventhub/internal/storage/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRestore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "backup.json")

	src := storage.NewGateway(kv.NewMemoryRepository(), 0, logging.Discard())
	require.NoError(t, src.SaveEvents(ctx, []models.Event{{ID: "e1", Title: "T", Attendees: []string{"u1"}}}))
	require.NoError(t, src.SaveUsers(ctx, []models.User{{ID: "u1", Email: "u1@x.com"}}))

	written, err := WriteBackup(ctx, src, path)
	require.NoError(t, err)
	assert.Len(t, written.Events, 1)

	dst := storage.NewGateway(kv.NewMemoryRepository(), 0, logging.Discard())
	restored, err := ReadBackup(ctx, dst, path)
	require.NoError(t, err)
	assert.Equal(t, written.Users, restored.Users)

	events, err := dst.LoadEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, written.Events, events)
}

func TestReadBackup_Errors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	g := storage.NewGateway(kv.NewMemoryRepository(), 0, logging.Discard())

	_, err := ReadBackup(ctx, g, filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = ReadBackup(ctx, g, bad)
	require.ErrorContains(t, err, "decode backup")

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version":0}`), 0o600))
	_, err = ReadBackup(ctx, g, old)
	require.ErrorIs(t, err, common.ErrorIncompatibleSnapshot)
}

func TestExportCalendar_NothingExportable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ics")

	n, skipped, err := ExportCalendar(path, []models.Event{{ID: "x", Date: "whenever"}}, time.Now())
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []string{"x"}, skipped)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "partial file is removed")
}
