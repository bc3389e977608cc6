package reports

import (
	"encoding/json"
	"fmt"
	"time"

	"antennacalc/internal/charts"
	"antennacalc/internal/logger"
	"antennacalc/internal/models"
	"antennacalc/internal/storage"
	"antennacalc/internal/units"
)

// Bundle file names
const (
	TextFile     = "report.txt"
	MarkdownFile = "report.md"
	HTMLFile     = storage.IndexFile
	JSONFile     = "result.json"
	ChartFile    = "chart.png"
)

// Bundle contains every file generated for one report
type Bundle struct {
	Kind       models.Kind
	FolderPath string
	Files      map[string][]byte
}

// FileGenerator handles generation of all report files
type FileGenerator struct {
	chartGen    *charts.ChartGenerator
	htmlBuilder *HTMLBuilder
	log         *logger.Logger
}

// NewFileGenerator creates a new file generator
func NewFileGenerator(chartGen *charts.ChartGenerator, htmlBuilder *HTMLBuilder) *FileGenerator {
	return &FileGenerator{
		chartGen:    chartGen,
		htmlBuilder: htmlBuilder,
		log:         logger.WithComponent("report-files"),
	}
}

// folderKind is the CamelCase kind used in report folder names
func folderKind(k models.Kind) string {
	switch k {
	case models.KindFlowerPot:
		return "FlowerPot"
	case models.KindGroundPlane:
		return "GroundPlane"
	case models.KindJPole:
		return "JPole"
	case models.KindYagi:
		return "Yagi"
	case models.KindKharchenko:
		return "Kharchenko"
	case models.KindCoax:
		return "Coax"
	default:
		return "Antenna"
	}
}

// GenerateAllFiles creates the text, markdown, HTML, JSON and chart files of a result
func (fg *FileGenerator) GenerateAllFiles(result models.Result, u units.Unit, timestamp time.Time) (*Bundle, error) {
	doc, err := Build(result, u)
	if err != nil {
		return nil, err
	}

	bundle := &Bundle{
		Kind:       result.Kind(),
		FolderPath: storage.GenerateReportFolderPath(folderKind(result.Kind()), timestamp),
		Files:      make(map[string][]byte),
	}

	bundle.Files[TextFile] = []byte(doc.Text())

	markdown := doc.Markdown(timestamp)
	bundle.Files[MarkdownFile] = []byte(markdown)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	bundle.Files[JSONFile] = data

	opts := fg.generateCharts(result, bundle)

	page, err := fg.htmlBuilder.BuildPage(doc.Title, markdown, timestamp, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}
	bundle.Files[HTMLFile] = []byte(page)

	fg.log.Debug("Report files generated", map[string]interface{}{
		"kind":   string(bundle.Kind),
		"folder": bundle.FolderPath,
		"files":  len(bundle.Files),
	})
	return bundle, nil
}

// generateCharts adds chart.png and an inline snippet where the result has a chart.
// Chart failures are logged and the report is produced without it.
func (fg *FileGenerator) generateCharts(result models.Result, bundle *Bundle) PageOptions {
	var (
		png     []byte
		snippet charts.ChartSnippet
		err     error
	)

	switch r := result.(type) {
	case models.CoaxResult:
		if len(r.Bands) == 0 {
			return PageOptions{}
		}
		if png, err = fg.chartGen.CoaxLossPNG(r.Bands); err == nil {
			snippet, err = fg.chartGen.CoaxLossSnippet(r.Bands)
		}
	case models.YagiResult:
		if png, err = fg.chartGen.YagiLayoutPNG(r); err == nil {
			snippet, err = fg.chartGen.YagiLayoutSnippet(r)
		}
	default:
		return PageOptions{}
	}

	if err != nil {
		fg.log.Warn("Failed to generate chart", map[string]interface{}{
			"kind":  string(result.Kind()),
			"error": err.Error(),
		})
		return PageOptions{}
	}

	bundle.Files[ChartFile] = png
	return PageOptions{ChartImage: ChartFile, Snippet: &snippet}
}
