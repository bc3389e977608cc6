package calc

import (
	"math"
	"strconv"
)

// StandardCrossSections are the wire cross-sections (mm²) sold as stock.
var StandardCrossSections = []float64{0.5, 0.75, 1, 1.5, 2, 2.5, 4, 6, 10, 16, 25, 35, 50, 70}

// ActualWireDiameter snaps a theoretical diameter to the standard
// cross-section closest by area among the two that bracket it. Diameters
// outside the table, or exactly on an entry, are returned unchanged.
func ActualWireDiameter(theoreticalMM float64) float64 {
	area := math.Pi * theoreticalMM * theoreticalMM / 4

	for i := 0; i < len(StandardCrossSections)-1; i++ {
		lo, hi := StandardCrossSections[i], StandardCrossSections[i+1]
		if area > lo && area < hi {
			target := lo
			if area > (lo+hi)/2 {
				target = hi
			}
			return 2 * math.Sqrt(target/math.Pi)
		}
	}
	return theoreticalMM
}

// AWG returns the American Wire Gauge for a diameter in millimetres, or
// an empty string when the diameter is outside the gauge range.
func AWG(diameterMM float64) string {
	switch {
	case diameterMM > 12:
		return ""
	case diameterMM >= 11:
		return "0000"
	case diameterMM >= 10:
		return "000"
	case diameterMM >= 8.6:
		return "00"
	case diameterMM >= 0.00785:
		gauge := -39*math.Log(diameterMM/0.127)/math.Log(92) + 36
		return strconv.Itoa(int(math.Floor(gauge + 0.5)))
	default:
		return ""
	}
}
