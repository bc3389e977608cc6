package reports

import (
	_ "embed"
	"html/template"
)

//go:embed templates/report.html
var reportTemplateHTML string

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"safeHTML": func(s string) template.HTML {
		return template.HTML(s)
	},
}).Parse(reportTemplateHTML))
