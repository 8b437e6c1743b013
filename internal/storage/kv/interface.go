package kv

import (
	"context"
)

// Repository is a flat key/value store of opaque byte payloads.
type Repository interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// SetMany writes several keys. SQL and bolt backends do it in one
	// transaction; s3 writes them one after another.
	SetMany(ctx context.Context, values map[string][]byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored pair.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Close releases the underlying handle.
	Close() error
}
