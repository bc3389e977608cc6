package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"antennacalc/internal/charts"
)

// HTMLBuilder handles HTML generation with goldmark
type HTMLBuilder struct {
	goldmark goldmark.Markdown
	version  string
}

// NewHTMLBuilder creates an HTML builder stamping pages with version
func NewHTMLBuilder(version string) *HTMLBuilder {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(),
		),
	)

	return &HTMLBuilder{
		goldmark: md,
		version:  version,
	}
}

// TemplateData represents the data structure for the HTML template
type TemplateData struct {
	Title          string
	GeneratedAt    string
	Version        string
	Content        template.HTML
	ChartImage     string
	ChartScriptTag string
	Chart          template.HTML
}

// PageOptions carries the optional chart parts of a report page
type PageOptions struct {
	ChartImage string
	Snippet    *charts.ChartSnippet
}

// ConvertMarkdownToHTML converts markdown to HTML using goldmark
func (h *HTMLBuilder) ConvertMarkdownToHTML(markdownContent string) (string, error) {
	var buf bytes.Buffer
	if err := h.goldmark.Convert([]byte(markdownContent), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// BuildPage renders markdown into a complete HTML report page
func (h *HTMLBuilder) BuildPage(title, markdown string, generatedAt time.Time, opts PageOptions) (string, error) {
	content, err := h.ConvertMarkdownToHTML(markdown)
	if err != nil {
		return "", err
	}

	data := TemplateData{
		Title:       title,
		GeneratedAt: generatedAt.UTC().Format("2006-01-02 15:04:05 UTC"),
		Version:     h.version,
		Content:     template.HTML(content),
		ChartImage:  opts.ChartImage,
	}
	if opts.Snippet != nil {
		data.ChartScriptTag = charts.EChartsCDN
		data.Chart = template.HTML(opts.Snippet.HTML)
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
