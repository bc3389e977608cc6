package calc

import (
	"antennacalc/internal/models"
)

// Control points of the monopole velocity factor over λ/d.
var (
	vfRatios  = []float64{2, 4, 6, 10, 20, 100, 10000}
	vfFactors = []float64{0.72, 0.86, 0.90, 0.92, 0.94, 0.96, 0.98}
)

// VelocityFactor interpolates the shortening factor of a monopole whose
// wavelength to diameter ratio is ratio.
func VelocityFactor(ratio float64) float64 {
	if ratio < vfRatios[0] {
		return 0.70
	}
	if ratio > vfRatios[len(vfRatios)-1] {
		return 0.99
	}

	i := 1
	for i < len(vfRatios)-1 && ratio >= vfRatios[i] {
		i++
	}
	x0, x1 := vfRatios[i-1], vfRatios[i]
	y0, y1 := vfFactors[i-1], vfFactors[i]
	return y0 + (ratio-x0)*(y1-y0)/(x1-x0)
}

// JPole computes a J-pole. Dimensions are in centimetres rounded to 0.01.
func JPole(in models.JPoleInput) (models.JPoleResult, error) {
	if !positive(in.FrequencyMHz) || !positive(in.WireDiameterMM) {
		return models.JPoleResult{}, &ValidationError{
			Messages: []string{"enter valid data: frequency and wire diameter must be positive"},
			Err:      ErrInvalidInput,
		}
	}

	lambda := Wavelength(in.FrequencyMHz)
	vf := VelocityFactor(lambda / in.WireDiameterMM)

	a := 0.75 * lambda * vf
	b := 0.25 * lambda * vf
	c := 0.02175 * lambda * vf
	d := 0.025 * lambda * vf

	if c < 1.5*in.WireDiameterMM {
		return models.JPoleResult{}, &ValidationError{
			Messages: []string{ErrWireTooThick.Error()},
			Err:      ErrWireTooThick,
		}
	}

	return models.JPoleResult{
		Input:          in,
		WavelengthMM:   lambda,
		VelocityFactor: round(vf, 2),
		RadiatorCM:     round(a/10, 2),
		StubCM:         round(b/10, 2),
		SpacingCM:      round(c/10, 2),
		FeedPointCM:    round(d/10, 2),
	}, nil
}
