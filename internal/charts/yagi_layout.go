package charts

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"antennacalc/internal/models"
)

var (
	boomColor      = drawing.Color{R: 120, G: 120, B: 120, A: 255}
	reflectorColor = drawing.Color{R: 200, G: 60, B: 60, A: 255}
	drivenColor    = drawing.Color{R: 40, G: 120, B: 200, A: 255}
	directorColor  = drawing.Color{R: 60, G: 160, B: 80, A: 255}
)

func elementColor(t models.ElementType) drawing.Color {
	switch t {
	case models.ElementReflector:
		return reflectorColor
	case models.ElementDriven:
		return drivenColor
	default:
		return directorColor
	}
}

// YagiLayoutPNG draws the elements to scale as seen from above the boom
func (cg *ChartGenerator) YagiLayoutPNG(result models.YagiResult) ([]byte, error) {
	if len(result.Elements) == 0 {
		return nil, fmt.Errorf("no elements to chart")
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Boom",
			XValues: []float64{0, result.BoomLengthMM},
			YValues: []float64{0, 0},
			Style: chart.Style{
				StrokeColor: boomColor,
				StrokeWidth: 4,
			},
		},
	}
	for _, e := range result.Elements {
		half := e.LengthMM / 2
		series = append(series, chart.ContinuousSeries{
			Name:    e.Name,
			XValues: []float64{e.PositionMM, e.PositionMM},
			YValues: []float64{-half, half},
			Style: chart.Style{
				StrokeColor: elementColor(e.Type),
				StrokeWidth: 3,
			},
		})
	}

	graph := chart.Chart{
		Title:      fmt.Sprintf("Yagi %d elements, %g MHz", len(result.Elements), result.Input.FrequencyMHz),
		TitleStyle: titleStyle(),
		Background: padding(),
		Width:      cg.Width,
		Height:     cg.Height,
		XAxis: chart.XAxis{
			Name: "Position along the boom, mm",
		},
		YAxis: chart.YAxis{
			Name: "Element half-length, mm",
		},
		Series: series,
	}

	return renderPNG("yagi layout", graph)
}

// YagiLayoutSnippet builds an inline ECharts view of element lengths along the boom
func (cg *ChartGenerator) YagiLayoutSnippet(result models.YagiResult) (ChartSnippet, error) {
	if len(result.Elements) == 0 {
		return ChartSnippet{}, fmt.Errorf("no elements to chart")
	}

	series := make([]interface{}, 0, len(result.Elements))
	for _, e := range result.Elements {
		half := round1(e.LengthMM / 2)
		series = append(series, map[string]interface{}{
			"name":       e.Name,
			"type":       "line",
			"showSymbol": false,
			"lineStyle":  map[string]interface{}{"width": 3},
			"data":       [][]float64{{round1(e.PositionMM), -half}, {round1(e.PositionMM), half}},
			"endLabel":   map[string]interface{}{"show": true, "formatter": e.Name},
		})
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "item"},
		"xAxis":   map[string]interface{}{"type": "value", "name": "mm", "min": 0},
		"yAxis":   map[string]interface{}{"type": "value", "name": "mm"},
		"series":  series,
	}

	return buildSnippet("chart-yagi-layout", "Element layout", 360, option)
}
