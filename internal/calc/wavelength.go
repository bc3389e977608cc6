package calc

import "math"

// SpeedOfLight is c in millimetres per microsecond, so c/f(MHz) gives mm.
const SpeedOfLight = 299792.458

// Wavelength returns the free-space wavelength in millimetres.
func Wavelength(frequencyMHz float64) float64 {
	return SpeedOfLight / frequencyMHz
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// positive rejects zero, negatives and NaN.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
