package calc

import (
	"fmt"
	"math"

	"antennacalc/internal/models"
)

// MaxBoomRatio is the largest boom diameter, as a fraction of λ, that the
// boom correction polynomials cover.
const MaxBoomRatio = 0.09

// BoomCorrection returns the element lengthening, as a fraction of λ,
// needed to compensate for a conductive boom.
func BoomCorrection(boomDiameterMM, wavelengthMM float64, shape models.BoomShape, mounting models.MountingType) float64 {
	r := boomDiameterMM / wavelengthMM

	var correction float64
	if shape == models.BoomRound {
		correction = r * r * (630*r*r - 164*r + 13.5)
	} else {
		correction = r * r * (1221*r*r - 269.4*r + 18.8)
	}

	// elements bonded through the boom see it twice as strongly
	if mounting == models.MountingBonded {
		correction *= 2
	}
	return correction
}

// ValidateYagi checks every Yagi input and reports all problems at once.
func ValidateYagi(in models.YagiInput) error {
	var v validator
	v.check(positive(in.FrequencyMHz), "invalid frequency")
	v.check(in.Elements >= 3, "the minimum number of elements is 3")
	v.check(positive(in.BoomDiameterMM), "invalid boom diameter")
	v.check(positive(in.ElementDiameterMM), "invalid element diameter")
	if positive(in.FrequencyMHz) && positive(in.BoomDiameterMM) {
		v.check(in.BoomDiameterMM/Wavelength(in.FrequencyMHz) <= MaxBoomRatio, "the boom diameter is too large for this frequency")
	}
	v.check(in.Mounting.Valid(), fmt.Sprintf("unknown mounting type %d", int(in.Mounting)))
	v.check(in.DipoleForm == models.DipoleSplit || in.DipoleForm == models.DipoleFolded, fmt.Sprintf("unknown dipole form %q", in.DipoleForm))
	v.check(in.BoomShape == models.BoomRound || in.BoomShape == models.BoomSquare, fmt.Sprintf("unknown boom shape %q", in.BoomShape))
	v.check(in.ElementShape == models.ElementRound || in.ElementShape == models.ElementFlat, fmt.Sprintf("unknown element shape %q", in.ElementShape))
	if in.ElementShape == models.ElementFlat {
		v.check(positive(in.ElementThicknessMM), "invalid element thickness")
	}
	return v.err()
}

// Yagi computes a DL6WU long-Yagi: reflector, driven element and
// elements-2 directors with growing spacing and shrinking length.
func Yagi(in models.YagiInput) (models.YagiResult, error) {
	if err := ValidateYagi(in); err != nil {
		return models.YagiResult{}, err
	}

	wavelength := Wavelength(in.FrequencyMHz)
	correction := BoomCorrection(in.BoomDiameterMM, wavelength, in.BoomShape, in.Mounting)
	added := correction * wavelength

	dipoleFactor := 0.473
	if in.DipoleForm == models.DipoleFolded {
		dipoleFactor = 0.505
	}
	dipoleLength := dipoleFactor * wavelength

	elements := make([]models.YagiElement, 0, in.Elements)
	elements = append(elements, models.YagiElement{
		Type:     models.ElementReflector,
		Name:     "R",
		LengthMM: 0.508*wavelength + added,
	})

	spacing := 0.2 * wavelength
	driven := models.YagiElement{
		Type:       models.ElementDriven,
		Name:       "F",
		LengthMM:   dipoleLength + added,
		PositionMM: spacing,
		DistanceMM: spacing,
	}
	if in.DipoleForm == models.DipoleFolded {
		driven.GapMM = 0.012 * wavelength
	}
	elements = append(elements, driven)

	position := spacing
	for i := 1; i <= in.Elements-2; i++ {
		step := spacing * (1 + float64(i-1)*0.15)
		previous := position
		position += step
		elements = append(elements, models.YagiElement{
			Type:       models.ElementDirector,
			Name:       fmt.Sprintf("D%d", i),
			LengthMM:   dipoleLength*(0.95-float64(i-1)*0.01) + added,
			PositionMM: position,
			DistanceMM: position - previous,
		})
	}

	boom := position
	gain := 10 + 1.5*math.Log10(float64(in.Elements)) + 10*math.Log10(boom/wavelength)

	if err := finite(map[string]float64{"boom correction": correction, "boom length": boom, "gain": gain}); err != nil {
		return models.YagiResult{}, err
	}

	return models.YagiResult{
		Input:          in,
		WavelengthMM:   wavelength,
		BoomCorrection: correction,
		BoomLengthMM:   boom,
		GainDBi:        round(gain, 1),
		Elements:       elements,
	}, nil
}
