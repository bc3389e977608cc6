package calc

import (
	"math"

	"antennacalc/internal/models"
)

// Frequency range the Kharchenko coefficients were fitted for.
const (
	KharchenkoMinMHz = 400
	KharchenkoMaxMHz = 3000
)

// Coefficients in wavelengths. guides75 and guides50 hold G0..G3.
var (
	reflector75 = [2]float64{1.02632601918224, 0.180628960318941}
	reflector50 = [2]float64{1.02632601918224, 0.147486031820053}
	guides75    = [4]float64{0.138647917553682, 0.218190945951014, 0.452953356151472, 0.671144302102486}
	guides50    = [4]float64{0.138647917553682, 0.204381392409811, 0.452953356151472, 0.662858569977764}
)

const (
	kharchenkoK      = 0.12033644955805
	wireFactor       = 0.0099
	kharchenkoBend   = 1.3962634015954636 // 80°
	reflectorSpacing = 0.4                // mm subtracted from D
)

// ValidateKharchenko checks frequency range and impedance, reporting both.
func ValidateKharchenko(in models.KharchenkoInput) error {
	var v validator
	v.check(positive(in.FrequencyMHz), "invalid frequency")
	if in.FrequencyMHz != 0 {
		v.check(in.FrequencyMHz >= KharchenkoMinMHz && in.FrequencyMHz <= KharchenkoMaxMHz,
			"the operating frequency is outside the range of this calculator (400-3000 MHz)")
	}
	v.check(in.ImpedanceOhm == 50 || in.ImpedanceOhm == 75, "only 50 Ω and 75 Ω impedances are supported")
	return v.err()
}

// Kharchenko computes a Kharchenko (BiQuad) antenna with its reflector.
func Kharchenko(in models.KharchenkoInput) (models.KharchenkoResult, error) {
	if err := ValidateKharchenko(in); err != nil {
		return models.KharchenkoResult{}, err
	}

	wavelength := Wavelength(in.FrequencyMHz)
	radius := kharchenkoK * wavelength
	wire := ActualWireDiameter(wireFactor * wavelength)

	guides, reflector := guides50, reflector50
	if in.ImpedanceOhm == 75 {
		guides, reflector = guides75, reflector75
	}

	var g [4]float64
	for i, c := range guides {
		g[i] = c * wavelength
	}

	width := (guides[3] + kharchenkoK) * wavelength
	height := (guides[1] + kharchenkoK) * wavelength
	distance := reflector[1]*wavelength - reflectorSpacing
	reflectorSide := reflector75[0] * wavelength

	// tangent points of the bend arcs, half-radius offsets
	cosOff := radius * math.Cos(kharchenkoBend/2) / 2
	sinOff := radius * math.Sin(kharchenkoBend/2) / 2

	side1 := math.Hypot(
		g[0]/2-cosOff-(g[1]/2+cosOff),
		sinOff-(g[2]/2-sinOff),
	)
	side2 := math.Hypot(
		g[1]/2+cosOff-cosOff,
		g[2]/2+sinOff-(g[3]/2+sinOff),
	)

	arc1 := math.Pi * radius / 3
	arc2 := 5 * math.Pi * radius / 36
	total := 4 * (side1 + side2 + arc1 + arc2)

	if err := finite(map[string]float64{"side 1": side1, "side 2": side2, "total wire length": total}); err != nil {
		return models.KharchenkoResult{}, err
	}

	return models.KharchenkoResult{
		FrequencyMHz:        in.FrequencyMHz,
		ImpedanceOhm:        in.ImpedanceOhm,
		WavelengthMM:        wavelength,
		WidthMM:             width,
		HeightMM:            height,
		ReflectorDistanceMM: distance,
		ReflectorWidthMM:    reflectorSide,
		ReflectorLengthMM:   reflectorSide,
		WireDiameterMM:      wire,
		WireAWG:             AWG(wire),
		Side1MM:             side1 + 2*arc1/3,
		Side2MM:             side2 + arc2 + arc1/3,
		BendRadiusMM:        radius / 2,
		FeedGapMM:           g[0] - radius - wire,
		TotalWireLengthMM:   total,
		GuideDistancesMM:    g,
		GuideDiameterMM:     radius - wire,
	}, nil
}
