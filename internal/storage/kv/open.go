package kv

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/eventhub/internal/common"
	"github.com/dmitrijs2005/eventhub/internal/config"
)

// Backend names accepted by Open.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendBolt     = "bolt"
	BackendS3       = "s3"
	BackendMemory   = "memory"
)

// Open builds the repository selected by cfg.StorageBackend.
func Open(ctx context.Context, cfg *config.Config) (Repository, error) {
	repo, err := open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func open(ctx context.Context, cfg *config.Config) (Repository, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.StorageBackend)) {
	case BackendSQLite:
		return OpenSQLite(ctx, cfg.DatabaseDSN)
	case BackendPostgres:
		if cfg.DatabaseDSN == "" {
			return nil, fmt.Errorf("postgres dsn is required: %w", common.ErrorStorageNotConfigured)
		}
		return OpenPostgres(ctx, cfg.DatabaseDSN)
	case BackendBolt:
		return OpenBolt(cfg.BoltPath)
	case BackendS3:
		return OpenS3(ctx, S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			Prefix:       cfg.S3Prefix,
		})
	case BackendMemory:
		return NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrorUnknownBackend, cfg.StorageBackend)
	}
}
