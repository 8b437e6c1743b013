// Package kv provides the byte-level key/value repositories behind the
// persistence gateway.
//
// # Backends
//
//   - sqlite  : local file (default), goose-migrated kv_store table, modernc driver
//   - postgres: shared kv_store table through the pgx stdlib driver
//   - bolt    : single-bucket bbolt file
//   - s3      : one object per key under a prefix (S3 or MinIO)
//   - memory  : process-local map, for tests and throwaway sessions
//
// All backends honour the same contract: Get returns (nil, nil) for an
// absent key, Set upserts, Delete is idempotent, and every error is wrapped
// with the operation and key so callers can log it verbatim.
//
// # Concurrency
//
// Implementations are safe for concurrent use inside one process. Nothing
// coordinates separate processes: the last full write of a key wins.
//
// Typical Usage
//
//	repo, _ := kv.Open(ctx, cfg)
//	defer repo.Close()
//	_ = repo.Set(ctx, "eventhub_events", payload)
//	raw, _ := repo.Get(ctx, "eventhub_events")
package kv
