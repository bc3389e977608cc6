package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"antennacalc/internal/logger"
)

// LocalStorageClient stores report files under a directory on disk
type LocalStorageClient struct {
	rootDir string
	log     *logger.Logger
}

// NewLocalStorageClient creates a new local storage client rooted at rootDir
func NewLocalStorageClient(rootDir string) (*LocalStorageClient, error) {
	if rootDir == "" {
		rootDir = "data"
	}
	if err := os.MkdirAll(rootDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create root directory %s: %w", rootDir, err)
	}

	return &LocalStorageClient{
		rootDir: rootDir,
		log:     logger.WithComponent("storage-local"),
	}, nil
}

// Root returns the directory files are stored under
func (l *LocalStorageClient) Root() string {
	return l.rootDir
}

// Close is a no-op for local storage
func (l *LocalStorageClient) Close() error {
	return nil
}

func (l *LocalStorageClient) resolve(filePath string) (string, error) {
	cleaned, err := CleanPath(filePath)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.rootDir, filepath.FromSlash(cleaned)), nil
}

// StoreFile writes a file, creating its directory
func (l *LocalStorageClient) StoreFile(ctx context.Context, filePath string, fileData []byte) error {
	fullPath, err := l.resolve(filePath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(fullPath, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}

	l.log.Debug("File stored", map[string]interface{}{
		"path": filePath,
		"size": len(fileData),
	})
	return nil
}

// GetFile reads a stored file
func (l *LocalStorageClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	fullPath, err := l.resolve(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filePath)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// FileExists reports whether a regular file exists at filePath
func (l *LocalStorageClient) FileExists(ctx context.Context, filePath string) (bool, error) {
	fullPath, err := l.resolve(filePath)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file %s: %w", filePath, err)
	}
	return !info.IsDir(), nil
}

// ListReports lists report folders containing an index file, newest first
func (l *LocalStorageClient) ListReports(ctx context.Context, limit int) ([]ReportInfo, error) {
	reportsPath := filepath.Join(l.rootDir, ReportsPrefix)

	var reports []ReportInfo
	err := filepath.WalkDir(reportsPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipDir
			}
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || d.Name() != IndexFile {
			return nil
		}

		rel, err := filepath.Rel(l.rootDir, p)
		if err != nil {
			return nil
		}
		if info, ok := reportFromIndex(filepath.ToSlash(rel)); ok {
			reports = append(reports, info)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk reports directory: %w", err)
	}

	return sortAndLimit(reports, limit), nil
}

// DeleteOlderThan removes report folders whose timestamp is older than age
func (l *LocalStorageClient) DeleteOlderThan(ctx context.Context, age time.Duration) (int, error) {
	reports, err := l.ListReports(ctx, 0)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-age)
	deleted := 0
	for _, r := range reports {
		if !r.Created.Before(cutoff) {
			continue
		}
		dir := filepath.Join(l.rootDir, filepath.FromSlash(r.Folder))
		if err := os.RemoveAll(dir); err != nil {
			return deleted, fmt.Errorf("failed to delete report %s: %w", r.Folder, err)
		}
		deleted++
	}

	if deleted > 0 {
		l.log.Info("Expired reports deleted", map[string]interface{}{
			"count":  deleted,
			"cutoff": cutoff.Format(time.RFC3339),
		})
	}
	return deleted, nil
}
