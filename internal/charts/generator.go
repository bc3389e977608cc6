// Package charts renders calculator results as PNG images (go-chart),
// standalone ECharts pages (go-echarts) and embeddable ECharts snippets.
package charts

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartGenerator holds the image size shared by every rendered chart
type ChartGenerator struct {
	Width  int
	Height int
}

// NewChartGenerator creates a chart generator with the default size
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{Width: 800, Height: 400}
}

// renderer is satisfied by both chart.Chart and chart.BarChart
type renderer interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func renderPNG(name string, r renderer) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", name, err)
	}
	return buf.Bytes(), nil
}

func titleStyle() chart.Style {
	return chart.Style{
		FontSize:  16,
		FontColor: drawing.ColorBlack,
	}
}

func padding() chart.Style {
	return chart.Style{
		Padding: chart.Box{
			Top:    40,
			Left:   20,
			Right:  20,
			Bottom: 20,
		},
	}
}

// hexColor parses "#rrggbb" into a drawing colour
func hexColor(hex string) drawing.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	return drawing.ColorFromHex(hex)
}
