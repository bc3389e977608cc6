package reports

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"antennacalc/internal/charts"
	"antennacalc/internal/models"
	"antennacalc/internal/storage"
	"antennacalc/internal/units"
)

var stamp = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newGenerator() *FileGenerator {
	return NewFileGenerator(charts.NewChartGenerator(), NewHTMLBuilder("1.0.0"))
}

func TestConvertMarkdownToHTML(t *testing.T) {
	html, err := NewHTMLBuilder("test").ConvertMarkdownToHTML("# Title\n\n| a | b |\n| --- | --- |\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("ConvertMarkdownToHTML: %v", err)
	}
	if !strings.Contains(html, `<h1 id="title">Title</h1>`) {
		t.Errorf("Expected heading with auto ID, got %s", html)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("Expected GFM table, got %s", html)
	}
}

func TestGenerateAllFilesYagi(t *testing.T) {
	bundle, err := newGenerator().GenerateAllFiles(yagiResult(t), units.Millimeter, stamp)
	if err != nil {
		t.Fatalf("GenerateAllFiles: %v", err)
	}

	if bundle.FolderPath != "reports/2026/10/18/YagiReport-2026-10-18-09-30-00" {
		t.Errorf("Unexpected folder %s", bundle.FolderPath)
	}
	for _, name := range []string{TextFile, MarkdownFile, HTMLFile, JSONFile, ChartFile} {
		if len(bundle.Files[name]) == 0 {
			t.Errorf("Expected %s in the bundle", name)
		}
	}

	page := string(bundle.Files[HTMLFile])
	for _, want := range []string{"<title>Long-Yagi DL6WU", `src="chart.png"`, "echarts.init", "2026-10-18 09:30:00 UTC", "antennacalc 1.0.0"} {
		if !strings.Contains(page, want) {
			t.Errorf("Expected %q in index.html", want)
		}
	}
	if !bytes.Contains(bundle.Files[JSONFile], []byte(`"boom_length_mm"`)) {
		t.Error("Expected the result JSON")
	}
}

func TestGenerateAllFilesWithoutChart(t *testing.T) {
	bundle, err := newGenerator().GenerateAllFiles(kharchenkoResult(t), units.Millimeter, stamp)
	if err != nil {
		t.Fatalf("GenerateAllFiles: %v", err)
	}
	if _, ok := bundle.Files[ChartFile]; ok {
		t.Error("Kharchenko reports have no chart")
	}
	if strings.Contains(string(bundle.Files[HTMLFile]), "echarts") {
		t.Error("Expected no ECharts script without a chart")
	}

	empty, err := newGenerator().GenerateAllFiles(models.CoaxResult{PowerW: 5}, units.Millimeter, stamp)
	if err != nil {
		t.Fatalf("GenerateAllFiles: %v", err)
	}
	if _, ok := empty.Files[ChartFile]; ok {
		t.Error("An empty feed line has no chart")
	}
}

func TestReportServiceSave(t *testing.T) {
	client, err := storage.NewLocalStorageClient(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatal(err)
	}

	svc := NewReportService(client, "test")
	svc.now = func() time.Time { return stamp }

	saved, err := svc.Save(context.Background(), coaxResult(t), units.Millimeter)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if saved.Folder != "reports/2026/10/18/CoaxReport-2026-10-18-09-30-00" {
		t.Errorf("Unexpected folder %s", saved.Folder)
	}
	if len(saved.Files) != 5 {
		t.Errorf("Expected 5 stored files, got %d", len(saved.Files))
	}
	if last := saved.Files[len(saved.Files)-1]; !strings.HasSuffix(last, "/"+HTMLFile) {
		t.Errorf("Expected index.html to be stored last, got %s", last)
	}

	reports, err := client.ListReports(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0].Kind != "Coax" {
		t.Errorf("Expected one Coax report, got %+v", reports)
	}

	text, err := client.GetFile(context.Background(), saved.Folder+"/"+TextFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(text), "Coaxial Cable Loss") {
		t.Error("Unexpected stored text report")
	}
}
