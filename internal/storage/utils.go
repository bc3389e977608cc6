package storage

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"
)

// ReportsPrefix is the top-level folder holding every report bundle
const ReportsPrefix = "reports"

// IndexFile is the file that marks a folder as a complete report
const IndexFile = "index.html"

const folderTimeLayout = "2006-01-02-15-04-05"

// GenerateReportFolderPath generates a consistent folder path for reports
// Format: reports/YYYY/MM/DD/<Kind>Report-YYYY-MM-DD-HH-MM-SS
func GenerateReportFolderPath(kind string, timestamp time.Time) string {
	timestamp = timestamp.UTC()
	return fmt.Sprintf("%s/%04d/%02d/%02d/%sReport-%s",
		ReportsPrefix,
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		kind, timestamp.Format(folderTimeLayout))
}

// ParseReportFolder extracts the kind and creation time from a report folder path
func ParseReportFolder(folder string) (string, time.Time, bool) {
	name := path.Base(folder)
	idx := strings.LastIndex(name, "Report-")
	if idx <= 0 {
		return "", time.Time{}, false
	}

	t, err := time.Parse(folderTimeLayout, name[idx+len("Report-"):])
	if err != nil {
		return "", time.Time{}, false
	}
	return name[:idx], t, true
}

// CleanPath normalizes a relative storage path and rejects escapes
func CleanPath(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" || strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
		}
	}

	cleaned := path.Clean(p)
	if cleaned == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return cleaned, nil
}

// reportFromIndex builds report info from the path of its index file
func reportFromIndex(indexPath string) (ReportInfo, bool) {
	folder := path.Dir(indexPath)
	kind, created, ok := ParseReportFolder(folder)
	if !ok {
		return ReportInfo{}, false
	}
	return ReportInfo{Folder: folder, Index: indexPath, Kind: kind, Created: created}, true
}

// sortAndLimit orders reports newest first and applies the limit
func sortAndLimit(reports []ReportInfo, limit int) []ReportInfo {
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Created.Equal(reports[j].Created) {
			return reports[i].Folder > reports[j].Folder
		}
		return reports[i].Created.After(reports[j].Created)
	})

	if limit > 0 && limit < len(reports) {
		reports = reports[:limit]
	}
	return reports
}

// GetContentType determines the MIME content type based on file extension
func GetContentType(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css"
	case ".md":
		return "text/markdown; charset=utf-8"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
