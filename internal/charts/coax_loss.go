package charts

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/wcharczuk/go-chart/v2"

	"antennacalc/internal/models"
)

func bandLabel(f float64) string {
	return fmt.Sprintf("%g MHz", f)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CoaxLossPNG draws the percentage of power lost per band, bars coloured by tier
func (cg *ChartGenerator) CoaxLossPNG(results []models.BandResult) ([]byte, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no band results to chart")
	}

	bars := make([]chart.Value, 0, len(results))
	for _, r := range results {
		color := hexColor(r.Color)
		bars = append(bars, chart.Value{
			Value: r.LossPercent,
			Label: bandLabel(r.FrequencyMHz),
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color.WithAlpha(255),
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title:      "Feed-line loss per band",
		TitleStyle: titleStyle(),
		Background: padding(),
		Height:     cg.Height,
		Width:      cg.Width,
		Bars:       bars,
		BarWidth:   60,
		BarSpacing: 30,
		XAxis: chart.Style{
			FontSize: 10,
		},
		YAxis: chart.YAxis{
			Name: "Power lost, %",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
	}

	return renderPNG("coax loss", graph)
}

// CoaxLossEChart renders a standalone go-echarts page of the band losses
func (cg *ChartGenerator) CoaxLossEChart(result models.CoaxResult) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Feed-line loss",
			Theme:     types.ThemeWesteros,
			Width:     fmt.Sprintf("%dpx", cg.Width),
			Height:    fmt.Sprintf("%dpx", cg.Height),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Feed-line loss per band",
			Subtitle: fmt.Sprintf("%g W at the transmitter", result.PowerW),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Band",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Power lost, %",
			Max:  100,
		}),
	)

	xAxis := make([]string, 0, len(result.Bands))
	lost := make([]opts.BarData, 0, len(result.Bands))
	output := make([]opts.BarData, 0, len(result.Bands))
	for _, r := range result.Bands {
		xAxis = append(xAxis, bandLabel(r.FrequencyMHz))
		lost = append(lost, opts.BarData{
			Value:     round1(r.LossPercent),
			ItemStyle: &opts.ItemStyle{Color: r.Color},
		})
		output = append(output, opts.BarData{Value: round1(r.OutputPowerW)})
	}

	bar.SetXAxis(xAxis).
		AddSeries("Power lost, %", lost).
		AddSeries("Output power, W", output)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render coax loss page: %w", err)
	}
	return buf.String(), nil
}

// CoaxLossSnippet builds an inline ECharts bar chart of the band losses
func (cg *ChartGenerator) CoaxLossSnippet(results []models.BandResult) (ChartSnippet, error) {
	if len(results) == 0 {
		return ChartSnippet{}, fmt.Errorf("no band results to chart")
	}

	labels := make([]string, 0, len(results))
	data := make([]interface{}, 0, len(results))
	for _, r := range results {
		labels = append(labels, bandLabel(r.FrequencyMHz))
		data = append(data, map[string]interface{}{
			"value":     round1(r.LossPercent),
			"itemStyle": map[string]interface{}{"color": r.Color, "borderColor": "#666", "borderWidth": 1},
		})
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "axis"},
		"xAxis":   map[string]interface{}{"type": "category", "data": labels},
		"yAxis":   map[string]interface{}{"type": "value", "name": "%", "min": 0, "max": 100},
		"series": []interface{}{
			map[string]interface{}{
				"name":  "Power lost",
				"type":  "bar",
				"data":  data,
				"label": map[string]interface{}{"show": true, "position": "top", "formatter": "{c}%"},
			},
		},
	}

	return buildSnippet("chart-coax-loss", "Power lost per band", 320, option)
}
