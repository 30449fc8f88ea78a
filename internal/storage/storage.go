// Package storage exports scrape snapshots to files or MongoDB.
package storage

import (
	"fmt"
	"log/slog"

	"github.com/IshaanNene/ParlScrape/internal/config"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

// Storage is the interface for all storage backends.
type Storage interface {
	// Store persists a batch of items.
	Store(items []*types.Item) error

	// Close flushes pending writes and releases resources.
	Close() error

	// Name returns the storage backend identifier.
	Name() string
}

// New creates the backends listed in cfg.Type. Several backends are
// wrapped in a MultiStorage.
func New(cfg config.StorageConfig, logger *slog.Logger) (Storage, error) {
	names := cfg.Types()
	if len(names) == 0 {
		return nil, fmt.Errorf("no storage type configured")
	}

	backends := make([]Storage, 0, len(names))
	for _, t := range names {
		s, err := newBackend(t, cfg, logger)
		if err != nil {
			for _, b := range backends {
				_ = b.Close()
			}
			return nil, err
		}
		backends = append(backends, s)
	}
	if len(backends) == 1 {
		return backends[0], nil
	}
	return NewMultiStorage(backends, logger), nil
}

func newBackend(storageType string, cfg config.StorageConfig, logger *slog.Logger) (Storage, error) {
	if storageType == "mongodb" {
		s, err := NewMongoStorage(cfg.MongoURI, cfg.Database, cfg.Collection, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return NewFileStorage(storageType, cfg.OutputPath, logger)
}

// Items flattens records of one kind into export items.
func Items[T any](kind, sourceURL, source string, records []T) ([]*types.Item, error) {
	items := make([]*types.Item, 0, len(records))
	for _, r := range records {
		item, err := types.NewItem(kind, sourceURL, source, r)
		if err != nil {
			return nil, &types.StorageError{Backend: "export", Err: err}
		}
		items = append(items, item)
	}
	return items, nil
}

func wrap(backend, op string, err error) error {
	return &types.StorageError{Backend: backend, Err: fmt.Errorf("%s: %w", op, err)}
}
