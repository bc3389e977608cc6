package storage

import (
	"context"
	"path/filepath"
	"testing"

	"antennacalc/internal/config"
)

func TestNewStorageClient(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{
			name:    "local storage",
			cfg:     &config.Config{StorageMode: config.StorageLocal, LocalReportsDir: filepath.Join(t.TempDir(), "data")},
			wantErr: false,
		},
		{
			name:    "gcs without bucket",
			cfg:     &config.Config{StorageMode: config.StorageGCS},
			wantErr: true,
		},
		{
			name:    "unsupported mode",
			cfg:     &config.Config{StorageMode: "ftp"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewStorageClient(ctx, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewStorageClient() error = %v, wantErr %v", err, tt.wantErr)
			}
			if client != nil {
				defer client.Close()
				if _, ok := client.(*LocalStorageClient); !ok {
					t.Errorf("Expected *LocalStorageClient, got %T", client)
				}
			}
		})
	}
}
