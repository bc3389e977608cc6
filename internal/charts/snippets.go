package charts

import (
	"encoding/json"
	"fmt"
)

// EChartsCDN is the script tag that loads ECharts for inline snippets
const EChartsCDN = `<script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>`

// ChartSnippet represents an embeddable ECharts fragment.
// Div holds the root element, Script initializes the chart in it and HTML
// combines both for template substitution.
type ChartSnippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
}

func buildSnippet(id, title string, height int, option map[string]interface{}) (ChartSnippet, error) {
	optJSON, err := json.Marshal(option)
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("failed to marshal %s options: %w", id, err)
	}

	div := fmt.Sprintf("<div id=\"%s\" style=\"width:100%%;height:%dpx;\"></div>", id, height)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);var option=%s;c.setOption(option);window.addEventListener('resize',function(){c.resize();});})();</script>`, id, string(optJSON))

	html := fmt.Sprintf(`<div class="chart-container">
	<h3>%s</h3>
	%s
</div>
%s`, title, div, script)

	return ChartSnippet{ID: id, Title: title, Div: div, Script: script, HTML: html}, nil
}
