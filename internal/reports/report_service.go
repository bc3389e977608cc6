package reports

import (
	"context"
	"fmt"
	"time"

	"antennacalc/internal/charts"
	"antennacalc/internal/models"
	"antennacalc/internal/storage"
	"antennacalc/internal/units"
)

// SavedReport describes a stored report bundle
type SavedReport struct {
	Folder string   `json:"folder"`
	Files  []string `json:"files"`
}

// ReportService generates report bundles and stores them
type ReportService struct {
	files        *FileGenerator
	orchestrator *StorageOrchestrator
	now          func() time.Time
}

// NewReportService creates a report service storing through client
func NewReportService(client storage.StorageClient, version string) *ReportService {
	return &ReportService{
		files:        NewFileGenerator(charts.NewChartGenerator(), NewHTMLBuilder(version)),
		orchestrator: NewStorageOrchestrator(client),
		now:          time.Now,
	}
}

// Save generates the report bundle of result and stores it
func (rs *ReportService) Save(ctx context.Context, result models.Result, u units.Unit) (*SavedReport, error) {
	bundle, err := rs.files.GenerateAllFiles(result, u, rs.now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	stored, err := rs.orchestrator.Store(ctx, bundle)
	if err != nil {
		return nil, err
	}
	return &SavedReport{Folder: bundle.FolderPath, Files: stored}, nil
}
