package calc

import "antennacalc/internal/models"

// GroundPlane computes a quarter-wave ground-plane with drooping radials,
// all in centimetres.
func GroundPlane(in models.GroundPlaneInput) (models.GroundPlaneResult, error) {
	var v validator
	v.check(positive(in.FrequencyMHz), "frequency must be positive")
	if err := v.err(); err != nil {
		return models.GroundPlaneResult{}, err
	}

	lambda := round(30000/in.FrequencyMHz, 2)
	return models.GroundPlaneResult{
		Input:        in,
		WavelengthCM: lambda,
		RadiatorCM:   round(lambda*0.25*0.95, 2),
		RadialCM:     round(lambda*0.28*0.95, 2),
	}, nil
}
