package reports

import (
	"context"
	"fmt"
	"sort"

	"antennacalc/internal/logger"
	"antennacalc/internal/storage"
)

// StorageOrchestrator writes report bundles through a storage client
type StorageOrchestrator struct {
	storage storage.StorageClient
	log     *logger.Logger
}

// NewStorageOrchestrator creates a new storage orchestrator
func NewStorageOrchestrator(client storage.StorageClient) *StorageOrchestrator {
	return &StorageOrchestrator{
		storage: client,
		log:     logger.WithComponent("report-storage"),
	}
}

// Store writes every bundle file and returns the stored paths.
// index.html is written last so listings only see complete reports.
func (so *StorageOrchestrator) Store(ctx context.Context, bundle *Bundle) ([]string, error) {
	names := make([]string, 0, len(bundle.Files))
	for name := range bundle.Files {
		if name != HTMLFile {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := bundle.Files[HTMLFile]; ok {
		names = append(names, HTMLFile)
	}

	stored := make([]string, 0, len(names))
	for _, name := range names {
		p := bundle.FolderPath + "/" + name
		if err := so.storage.StoreFile(ctx, p, bundle.Files[name]); err != nil {
			return stored, fmt.Errorf("failed to store %s: %w", name, err)
		}
		stored = append(stored, p)
	}

	so.log.Info("Report stored", map[string]interface{}{
		"folder": bundle.FolderPath,
		"files":  len(stored),
	})
	return stored, nil
}
