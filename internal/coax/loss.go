package coax

import (
	"math"

	"antennacalc/internal/models"
)

// Bands are the amateur band centres, in MHz, the loss sweep covers.
var Bands = []float64{1.9, 3.75, 7.15, 14.15, 27.5, 52.0, 145.0, 435.0}

// Tier thresholds in percent of power lost.
const (
	YellowThreshold = 50
	RedThreshold    = 80
)

// Interpolate returns the loss at band from a two-point linear fit between
// the closest key below it and the closest key at or above it. A missing
// lower key counts as (0 MHz, 0 dB); a missing upper key yields zero, the
// table is never extrapolated.
func Interpolate(t models.LossTable, band float64) float64 {
	var lower, upper models.LossPoint
	haveUpper := false

	for _, p := range t {
		if p.FrequencyMHz < band {
			if p.FrequencyMHz > lower.FrequencyMHz {
				lower = p
			}
			continue
		}
		if !haveUpper || p.FrequencyMHz < upper.FrequencyMHz {
			upper = p
			haveUpper = true
		}
	}

	if !haveUpper || upper.FrequencyMHz == lower.FrequencyMHz {
		return 0
	}

	slope := (upper.Loss - lower.Loss) / (upper.FrequencyMHz - lower.FrequencyMHz)
	intercept := upper.Loss - slope*upper.FrequencyMHz
	return slope*band + intercept
}

// ComponentLoss returns the loss in dB that quantity units of c add at band.
// Cable quantities are metres, others are pieces.
func ComponentLoss(c models.Component, quantity, band float64) float64 {
	if quantity <= 0 || len(c.Losses) == 0 {
		return 0
	}

	switch c.Type {
	case models.ComponentAttenuator:
		return c.Losses[0].Loss * quantity
	case models.ComponentCable:
		return Interpolate(c.Losses, band) * quantity / 100
	default:
		return Interpolate(c.Losses, band) * quantity
	}
}

// Classify returns the colour tier for a loss percentage.
func Classify(lossPercent float64) models.Tier {
	switch {
	case lossPercent >= RedThreshold:
		return models.TierRed
	case lossPercent >= YellowThreshold:
		return models.TierYellow
	default:
		return models.TierGreen
	}
}

// BandResult derives the power figures for a total loss at one band.
func BandResult(band, lossDB, powerW float64) models.BandResult {
	ratio := math.Pow(10, -lossDB/10)
	percent := (1 - ratio) * 100
	tier := Classify(percent)
	return models.BandResult{
		FrequencyMHz: band,
		LossDB:       lossDB,
		LossPercent:  percent,
		OutputPowerW: powerW * ratio,
		Tier:         tier,
		Color:        tier.Color(),
	}
}

// Sweep computes the feed-line loss at every band. Bands where the line
// loses nothing are left out.
func Sweep(catalog *Catalog, nodes []models.Node, powerW float64) ([]models.BandResult, error) {
	components := make([]models.Component, len(nodes))
	for i, n := range nodes {
		c, ok := catalog.Lookup(n.ComponentID)
		if !ok {
			return nil, unknownComponent(n.ComponentID)
		}
		components[i] = c
	}

	results := make([]models.BandResult, 0, len(Bands))
	for _, band := range Bands {
		total := 0.0
		for i, n := range nodes {
			total += ComponentLoss(components[i], n.Quantity, band)
		}
		if total > 0 {
			results = append(results, BandResult(band, total, powerW))
		}
	}
	return results, nil
}
