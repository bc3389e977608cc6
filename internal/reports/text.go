package reports

import (
	"strings"
	"text/tabwriter"

	"antennacalc/internal/models"
	"antennacalc/internal/units"
)

const separator = "-------------------------------------------------------------"

// TextReport renders the plain-text copy-paste report of a result
func TextReport(result models.Result, u units.Unit) (string, error) {
	doc, err := Build(result, u)
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}

// Text renders the document as plain text with separator lines between sections
func (d Document) Text() string {
	var b strings.Builder

	b.WriteString(d.Title + "\n")
	if d.Subtitle != "" {
		b.WriteString(d.Subtitle + "\n")
	}
	b.WriteString(separator + "\n")

	for _, s := range d.Sections {
		if len(s.Columns) > 0 {
			b.WriteString(s.Title + ":\n")
			writeTextTable(&b, s)
		} else {
			for _, r := range s.Rows {
				b.WriteString(r.Label + ": " + r.Value + "\n")
			}
		}
		b.WriteString(separator + "\n")
	}

	for _, n := range d.Notes {
		b.WriteString(n + "\n")
	}
	return b.String()
}

func writeTextTable(b *strings.Builder, s Section) {
	if len(s.Table) == 0 {
		b.WriteString("(none)\n")
		return
	}

	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	tw.Write([]byte(strings.Join(s.Columns, "\t") + "\n"))
	for _, row := range s.Table {
		tw.Write([]byte(strings.Join(row, "\t") + "\n"))
	}
	tw.Flush()
}
