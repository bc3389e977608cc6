package calc

import (
	"math"

	"antennacalc/internal/models"
)

// FlowerPot computes a flower-pot dipole: two radiator halves and the
// coax choke, all in centimetres.
func FlowerPot(in models.FlowerPotInput) (models.FlowerPotResult, error) {
	var v validator
	v.check(positive(in.FrequencyMHz), "frequency must be positive")
	v.check(in.ResonanceShiftPercent >= 0 && in.ResonanceShiftPercent < 100, "resonance shift must be between 0 and 100 %")
	v.check(in.VelocityFactor > 0 && in.VelocityFactor <= 1, "velocity factor must be greater than 0 and at most 1")
	if err := v.err(); err != nil {
		return models.FlowerPotResult{}, err
	}

	// λ in cm with 0.1 cm resolution
	lambda := math.Round(299700/in.FrequencyMHz) / 10
	resonant := in.FrequencyMHz - in.FrequencyMHz*(in.ResonanceShiftPercent/100)
	resonantLambda := math.Round(299700/resonant) / 10
	quarter := math.Round(lambda / 4)

	return models.FlowerPotResult{
		Input:                in,
		WavelengthCM:         lambda,
		ResonantFrequencyMHz: round(resonant, 3),
		ResonantWavelengthCM: resonantLambda,
		UpperRadiatorCM:      round(quarter*0.89, 2),
		LowerRadiatorCM:      round(quarter*0.87, 2),
		ChokeLengthCM:        round(in.VelocityFactor*(resonantLambda/2), 2),
	}, nil
}
