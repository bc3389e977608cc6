package models

// Kind identifies which calculator produced a result
type Kind string

const (
	KindFlowerPot   Kind = "flowerpot"
	KindGroundPlane Kind = "groundplane"
	KindJPole       Kind = "jpole"
	KindYagi        Kind = "yagi"
	KindKharchenko  Kind = "kharchenko"
	KindCoax        Kind = "coax"
)

// Kinds lists every calculator in menu order
var Kinds = []Kind{KindFlowerPot, KindGroundPlane, KindJPole, KindYagi, KindKharchenko, KindCoax}

// Title returns the human readable calculator name
func (k Kind) Title() string {
	switch k {
	case KindFlowerPot:
		return "Flower-Pot Dipole"
	case KindGroundPlane:
		return "Ground-Plane"
	case KindJPole:
		return "J-Pole"
	case KindYagi:
		return "Yagi (DL6WU)"
	case KindKharchenko:
		return "Kharchenko (BiQuad)"
	case KindCoax:
		return "Coaxial Cable Loss"
	default:
		return string(k)
	}
}

// ParseKind maps a calculator name to a Kind
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Result is implemented by every calculator output record
type Result interface {
	Kind() Kind
}

// FlowerPotResult holds the dimensions of a flower-pot (coaxial sleeve) dipole
type FlowerPotResult struct {
	Input                FlowerPotInput `json:"input"`
	WavelengthCM         float64        `json:"wavelength_cm"`
	ResonantFrequencyMHz float64        `json:"resonant_frequency_mhz"` // frequency shifted down by the resonance factor
	ResonantWavelengthCM float64        `json:"resonant_wavelength_cm"`
	UpperRadiatorCM      float64        `json:"upper_radiator_cm"`
	LowerRadiatorCM      float64        `json:"lower_radiator_cm"`
	ChokeLengthCM        float64        `json:"choke_length_cm"` // coax turns forming the choke
}

// Kind implements Result
func (FlowerPotResult) Kind() Kind { return KindFlowerPot }

// GroundPlaneResult holds the dimensions of a quarter-wave ground-plane
type GroundPlaneResult struct {
	Input        GroundPlaneInput `json:"input"`
	WavelengthCM float64          `json:"wavelength_cm"`
	RadiatorCM   float64          `json:"radiator_cm"`
	RadialCM     float64          `json:"radial_cm"`
}

// Kind implements Result
func (GroundPlaneResult) Kind() Kind { return KindGroundPlane }

// JPoleResult holds the dimensions of a J-pole antenna
type JPoleResult struct {
	Input          JPoleInput `json:"input"`
	WavelengthMM   float64    `json:"wavelength_mm"`
	VelocityFactor float64    `json:"velocity_factor"` // shortening factor, 2 decimals
	RadiatorCM     float64    `json:"radiator_cm"`     // A: 3/4 wave long element
	StubCM         float64    `json:"stub_cm"`         // B: 1/4 wave matching stub
	SpacingCM      float64    `json:"spacing_cm"`      // C: distance between the elements
	FeedPointCM    float64    `json:"feed_point_cm"`   // D: feed tap above the shorting bar
}

// Kind implements Result
func (JPoleResult) Kind() Kind { return KindJPole }

// ElementType is the role of a Yagi element
type ElementType string

const (
	ElementReflector ElementType = "reflector"
	ElementDriven    ElementType = "driven"
	ElementDirector  ElementType = "director"
)

// YagiElement is one element of a Yagi, positions measured from the reflector
type YagiElement struct {
	Type       ElementType `json:"type"`
	Name       string      `json:"name"` // R, F, D1..Dn
	LengthMM   float64     `json:"length_mm"`
	PositionMM float64     `json:"position_mm"`
	DistanceMM float64     `json:"distance_mm"`      // from the previous element
	GapMM      float64     `json:"gap_mm,omitempty"` // folded dipole feed gap
}

// YagiResult holds a DL6WU long-Yagi design
type YagiResult struct {
	Input          YagiInput     `json:"input"`
	WavelengthMM   float64       `json:"wavelength_mm"`
	BoomCorrection float64       `json:"boom_correction"` // fraction of a wavelength added to each element
	BoomLengthMM   float64       `json:"boom_length_mm"`
	GainDBi        float64       `json:"gain_dbi"` // rough estimate
	Elements       []YagiElement `json:"elements"`
}

// Kind implements Result
func (YagiResult) Kind() Kind { return KindYagi }

// Directors returns the number of director elements
func (r YagiResult) Directors() int {
	n := 0
	for _, e := range r.Elements {
		if e.Type == ElementDirector {
			n++
		}
	}
	return n
}

// KharchenkoResult holds a Kharchenko (BiQuad) design, all lengths in mm
type KharchenkoResult struct {
	FrequencyMHz        float64    `json:"frequency_mhz"`
	ImpedanceOhm        int        `json:"impedance_ohm"`
	WavelengthMM        float64    `json:"wavelength_mm"`
	WidthMM             float64    `json:"width_mm"`              // W
	HeightMM            float64    `json:"height_mm"`             // H
	ReflectorDistanceMM float64    `json:"reflector_distance_mm"` // D
	ReflectorWidthMM    float64    `json:"reflector_width_mm"`    // B
	ReflectorLengthMM   float64    `json:"reflector_length_mm"`   // A
	WireDiameterMM      float64    `json:"wire_diameter_mm"`      // snapped to a standard cross-section
	WireAWG             string     `json:"wire_awg,omitempty"`
	Side1MM             float64    `json:"side1_mm"` // qs1
	Side2MM             float64    `json:"side2_mm"` // qs2
	BendRadiusMM        float64    `json:"bend_radius_mm"`
	FeedGapMM           float64    `json:"feed_gap_mm"`
	TotalWireLengthMM   float64    `json:"total_wire_length_mm"`
	GuideDistancesMM    [4]float64 `json:"guide_distances_mm"` // G0..G3
	GuideDiameterMM     float64    `json:"guide_diameter_mm"`
}

// Kind implements Result
func (KharchenkoResult) Kind() Kind { return KindKharchenko }
