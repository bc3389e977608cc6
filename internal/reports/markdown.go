package reports

import (
	"fmt"
	"strings"
	"time"

	"antennacalc/internal/models"
	"antennacalc/internal/units"
)

// Markdown renders a result as a markdown document with GFM tables
func Markdown(result models.Result, u units.Unit) (string, error) {
	doc, err := Build(result, u)
	if err != nil {
		return "", err
	}
	return doc.Markdown(time.Time{}), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Markdown renders the document; a non-zero generatedAt adds a timestamp line
func (d Document) Markdown(generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	if d.Subtitle != "" {
		fmt.Fprintf(&b, "_%s_\n\n", d.Subtitle)
	}
	if !generatedAt.IsZero() {
		fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	if d.Kind != models.KindCoax {
		fmt.Fprintf(&b, "Units: %s\n\n", d.Unit.Name())
	}

	for _, s := range d.Sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)

		if len(s.Columns) > 0 {
			if len(s.Table) == 0 {
				b.WriteString("_None._\n\n")
				continue
			}
			writeMarkdownRow(&b, s.Columns)
			b.WriteString("|" + strings.Repeat(" --- |", len(s.Columns)) + "\n")
			for _, row := range s.Table {
				writeMarkdownRow(&b, row)
			}
			b.WriteString("\n")
			continue
		}

		b.WriteString("| Parameter | Value |\n| --- | --- |\n")
		for _, r := range s.Rows {
			writeMarkdownRow(&b, []string{r.Label, r.Value})
		}
		b.WriteString("\n")
	}

	for _, n := range d.Notes {
		fmt.Fprintf(&b, "> %s\n\n", n)
	}
	return b.String()
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" " + escapeCell(c) + " |")
	}
	b.WriteString("\n")
}
