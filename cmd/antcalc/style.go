package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"antennacalc/internal/models"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2b6cb0"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// bandSummary renders one line per band coloured by its loss tier
func bandSummary(bands []models.BandResult) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Loss by band") + "\n")
	for _, band := range bands {
		tier := lipgloss.NewStyle().Foreground(lipgloss.Color(band.Tier.Color()))
		line := fmt.Sprintf("%9g MHz  %6.2f dB  %5.1f%%", band.FrequencyMHz, band.LossDB, band.LossPercent)
		b.WriteString(tier.Render(line) + dimStyle.Render(fmt.Sprintf("  %s", band.Tier)) + "\n")
	}
	return b.String()
}
