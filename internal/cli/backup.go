package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eventhub/internal/storage"
)

// snapshotter is the part of *storage.Gateway used by backup and restore.
type snapshotter interface {
	Export(ctx context.Context) (storage.Snapshot, error)
	Import(ctx context.Context, s storage.Snapshot) error
}

// WriteBackup exports everything the gateway stores into a JSON file.
func WriteBackup(ctx context.Context, g snapshotter, path string) (storage.Snapshot, error) {
	snap, err := g.Export(ctx)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("export: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return storage.Snapshot{}, fmt.Errorf("write %s: %w", path, err)
	}
	return snap, nil
}

// ReadBackup replaces the stored collections with the contents of a file
// written by WriteBackup.
func ReadBackup(ctx context.Context, g snapshotter, path string) (storage.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("read %s: %w", path, err)
	}

	var snap storage.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return storage.Snapshot{}, fmt.Errorf("decode backup: %w", err)
	}
	if err := g.Import(ctx, snap); err != nil {
		return storage.Snapshot{}, fmt.Errorf("import: %w", err)
	}
	return snap, nil
}
