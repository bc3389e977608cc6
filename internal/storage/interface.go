package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a requested file does not exist
	ErrNotFound = errors.New("file not found")
	// ErrInvalidPath is returned for absolute paths or paths escaping the root
	ErrInvalidPath = errors.New("invalid file path")
)

// StorageClient defines the interface for report storage operations.
// Paths are slash-separated and relative to the storage root.
type StorageClient interface {
	// Close releases the underlying client
	Close() error

	// StoreFile stores a file at the specified path, creating parents as needed
	StoreFile(ctx context.Context, filePath string, fileData []byte) error

	// GetFile retrieves a file from the specified path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// FileExists checks if a file exists at the specified path
	FileExists(ctx context.Context, filePath string) (bool, error)

	// ListReports returns stored reports, newest first
	ListReports(ctx context.Context, limit int) ([]ReportInfo, error)

	// DeleteOlderThan removes report folders created more than age ago
	DeleteOlderThan(ctx context.Context, age time.Duration) (int, error)
}

// ReportInfo describes one stored report folder
type ReportInfo struct {
	Folder  string    `json:"folder"`
	Index   string    `json:"index"`
	Kind    string    `json:"kind"`
	Created time.Time `json:"created"`
}
