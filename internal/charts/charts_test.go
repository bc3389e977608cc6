package charts

import (
	"bytes"
	"strings"
	"testing"

	"antennacalc/internal/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func sampleBands() []models.BandResult {
	return []models.BandResult{
		{FrequencyMHz: 14.15, LossDB: 2.09, LossPercent: 38.3, OutputPowerW: 30.9, Tier: models.TierGreen, Color: "#bfffac"},
		{FrequencyMHz: 27.5, LossDB: 4.07, LossPercent: 60.8, OutputPowerW: 19.6, Tier: models.TierYellow, Color: "#fffeac"},
		{FrequencyMHz: 145, LossDB: 18.2, LossPercent: 98.5, OutputPowerW: 0.76, Tier: models.TierRed, Color: "#ffacac"},
	}
}

func sampleYagi() models.YagiResult {
	return models.YagiResult{
		Input:        models.YagiInput{FrequencyMHz: 144},
		WavelengthMM: 2081.9,
		BoomLengthMM: 1852.9,
		Elements: []models.YagiElement{
			{Type: models.ElementReflector, Name: "R", LengthMM: 1061.3},
			{Type: models.ElementDriven, Name: "F", LengthMM: 1055.0, PositionMM: 416.4},
			{Type: models.ElementDirector, Name: "D1", LengthMM: 1002.4, PositionMM: 832.8},
			{Type: models.ElementDirector, Name: "D2", LengthMM: 991.9, PositionMM: 1311.6},
			{Type: models.ElementDirector, Name: "D3", LengthMM: 981.4, PositionMM: 1852.9},
		},
	}
}

func TestCoaxLossPNG(t *testing.T) {
	cg := NewChartGenerator()

	png, err := cg.CoaxLossPNG(sampleBands())
	if err != nil {
		t.Fatalf("CoaxLossPNG: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Errorf("Expected PNG output, got %d bytes starting %x", len(png), png[:min(4, len(png))])
	}

	if _, err := cg.CoaxLossPNG(nil); err == nil {
		t.Error("Expected an error for no results")
	}
}

func TestCoaxLossPNGSingleBand(t *testing.T) {
	if _, err := NewChartGenerator().CoaxLossPNG(sampleBands()[:1]); err != nil {
		t.Errorf("Expected a single band to render, got %v", err)
	}
}

func TestYagiLayoutPNG(t *testing.T) {
	png, err := NewChartGenerator().YagiLayoutPNG(sampleYagi())
	if err != nil {
		t.Fatalf("YagiLayoutPNG: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("Expected PNG output")
	}

	if _, err := NewChartGenerator().YagiLayoutPNG(models.YagiResult{}); err == nil {
		t.Error("Expected an error for a Yagi without elements")
	}
}

func TestCoaxLossEChart(t *testing.T) {
	page, err := NewChartGenerator().CoaxLossEChart(models.CoaxResult{PowerW: 50, Bands: sampleBands()})
	if err != nil {
		t.Fatalf("CoaxLossEChart: %v", err)
	}

	for _, want := range []string{"echarts", "Feed-line loss per band", "145 MHz", "#ffacac"} {
		if !strings.Contains(page, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
}

func TestSnippets(t *testing.T) {
	cg := NewChartGenerator()

	coax, err := cg.CoaxLossSnippet(sampleBands())
	if err != nil {
		t.Fatalf("CoaxLossSnippet: %v", err)
	}
	yagi, err := cg.YagiLayoutSnippet(sampleYagi())
	if err != nil {
		t.Fatalf("YagiLayoutSnippet: %v", err)
	}

	for _, s := range []ChartSnippet{coax, yagi} {
		if !strings.Contains(s.Div, s.ID) || !strings.Contains(s.Script, s.ID) {
			t.Errorf("Snippet %s: div and script must reference the chart ID", s.ID)
		}
		if !strings.Contains(s.HTML, s.Div) || !strings.Contains(s.HTML, s.Script) {
			t.Errorf("Snippet %s: HTML must combine div and script", s.ID)
		}
		if !strings.Contains(s.Script, "echarts.init") {
			t.Errorf("Snippet %s: expected an echarts.init call", s.ID)
		}
	}

	if !strings.Contains(coax.Script, `"#fffeac"`) {
		t.Error("Expected tier colours in the coax snippet options")
	}
	if !strings.Contains(yagi.Script, `"D3"`) {
		t.Error("Expected element names in the Yagi snippet options")
	}

	if _, err := cg.CoaxLossSnippet(nil); err == nil {
		t.Error("Expected an error for no results")
	}
}

func TestHexColor(t *testing.T) {
	c := hexColor("#bfffac")
	if c.R != 0xbf || c.G != 0xff || c.B != 0xac {
		t.Errorf("Unexpected colour %+v", c)
	}
}
