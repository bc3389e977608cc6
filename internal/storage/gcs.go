package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"antennacalc/internal/logger"
)

// GCSClient handles Google Cloud Storage operations
type GCSClient struct {
	client *storage.Client
	bucket string
	log    *logger.Logger
}

// NewGCSClient creates a new GCS client for a bucket
func NewGCSClient(ctx context.Context, bucketName string) (*GCSClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSClient{
		client: client,
		bucket: bucketName,
		log:    logger.WithComponent("storage-gcs"),
	}, nil
}

// Close closes the GCS client
func (g *GCSClient) Close() error {
	return g.client.Close()
}

// StoreFile uploads a file to the bucket
func (g *GCSClient) StoreFile(ctx context.Context, filePath string, fileData []byte) error {
	objectPath, err := CleanPath(filePath)
	if err != nil {
		return err
	}

	g.log.Debug("Storing file to GCS", map[string]interface{}{
		"object": fmt.Sprintf("gs://%s/%s", g.bucket, objectPath),
		"size":   len(fileData),
	})

	writer := g.client.Bucket(g.bucket).Object(objectPath).NewWriter(ctx)
	writer.ContentType = GetContentType(objectPath)
	writer.CacheControl = "public, max-age=3600"
	writer.Metadata = map[string]string{
		"generated-at": time.Now().UTC().Format(time.RFC3339),
		"filename":     path.Base(objectPath),
	}

	if _, err := writer.Write(fileData); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write file to GCS: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize GCS file upload: %w", err)
	}
	return nil
}

// GetFile downloads a file from the bucket
func (g *GCSClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	objectPath, err := CleanPath(filePath)
	if err != nil {
		return nil, err
	}

	reader, err := g.client.Bucket(g.bucket).Object(objectPath).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filePath)
		}
		return nil, fmt.Errorf("failed to create reader for file %s: %w", filePath, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// FileExists checks object existence through its attributes
func (g *GCSClient) FileExists(ctx context.Context, filePath string) (bool, error) {
	objectPath, err := CleanPath(filePath)
	if err != nil {
		return false, err
	}

	_, err = g.client.Bucket(g.bucket).Object(objectPath).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get attributes of %s: %w", filePath, err)
	}
	return true, nil
}

// ListReports lists report index objects, newest first
func (g *GCSClient) ListReports(ctx context.Context, limit int) ([]ReportInfo, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{Prefix: ReportsPrefix + "/"})

	var reports []ReportInfo
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		if !strings.HasSuffix(attrs.Name, "/"+IndexFile) {
			continue
		}
		if info, ok := reportFromIndex(attrs.Name); ok {
			reports = append(reports, info)
		}
	}

	return sortAndLimit(reports, limit), nil
}

// DeleteOlderThan deletes every object under a report folder older than age
func (g *GCSClient) DeleteOlderThan(ctx context.Context, age time.Duration) (int, error) {
	reports, err := g.ListReports(ctx, 0)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-age)
	bucket := g.client.Bucket(g.bucket)
	deleted := 0
	for _, r := range reports {
		if !r.Created.Before(cutoff) {
			continue
		}

		it := bucket.Objects(ctx, &storage.Query{Prefix: r.Folder + "/"})
		for {
			attrs, err := it.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return deleted, fmt.Errorf("failed to list objects of %s: %w", r.Folder, err)
			}
			if err := bucket.Object(attrs.Name).Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
				return deleted, fmt.Errorf("failed to delete %s: %w", attrs.Name, err)
			}
		}
		deleted++
	}

	if deleted > 0 {
		g.log.Info("Expired reports deleted", map[string]interface{}{
			"bucket": g.bucket,
			"count":  deleted,
		})
	}
	return deleted, nil
}
