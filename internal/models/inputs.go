package models

import "fmt"

// FlowerPotInput holds flower-pot dipole parameters
type FlowerPotInput struct {
	FrequencyMHz          float64 `json:"frequency_mhz"`
	ResonanceShiftPercent float64 `json:"resonance_shift_percent"`
	VelocityFactor        float64 `json:"velocity_factor"` // of the coax used for the choke
}

// DefaultFlowerPotInput returns the form defaults
func DefaultFlowerPotInput() FlowerPotInput {
	return FlowerPotInput{FrequencyMHz: 145, ResonanceShiftPercent: 7.5, VelocityFactor: 0.66}
}

// GroundPlaneInput holds ground-plane parameters
type GroundPlaneInput struct {
	FrequencyMHz float64 `json:"frequency_mhz"`
}

// DefaultGroundPlaneInput returns the form defaults
func DefaultGroundPlaneInput() GroundPlaneInput {
	return GroundPlaneInput{FrequencyMHz: 145}
}

// JPoleInput holds J-pole parameters
type JPoleInput struct {
	FrequencyMHz   float64 `json:"frequency_mhz"`
	WireDiameterMM float64 `json:"wire_diameter_mm"`
}

// DefaultJPoleInput returns the form defaults
func DefaultJPoleInput() JPoleInput {
	return JPoleInput{FrequencyMHz: 145, WireDiameterMM: 4}
}

// MountingType describes how elements are fixed to the boom
type MountingType int

const (
	MountingBonded     MountingType = iota // through a metal boom, electrically connected
	MountingInsulated                      // insulated from the boom or on top of it
	MountingDielectric                     // dielectric boom, or spaced off a metal one
)

// Valid reports whether m is a known mounting type
func (m MountingType) Valid() bool {
	return m >= MountingBonded && m <= MountingDielectric
}

// Description returns the mounting explanation printed in reports
func (m MountingType) Description() string {
	switch m {
	case MountingBonded:
		return "Elements pass through the centre of a metal boom and are electrically bonded to it."
	case MountingInsulated:
		return "Elements are insulated from the boom or mounted on top of it."
	case MountingDielectric:
		return "Elements sit on a dielectric boom, or on a metal boom but spaced away from it."
	default:
		return fmt.Sprintf("Unknown mounting type %d.", int(m))
	}
}

// DipoleForm is the shape of the Yagi driven element
type DipoleForm string

const (
	DipoleSplit  DipoleForm = "split"
	DipoleFolded DipoleForm = "folded"
)

// BoomShape is the boom cross-section
type BoomShape string

const (
	BoomRound  BoomShape = "round"
	BoomSquare BoomShape = "square"
)

// ElementShape is the element cross-section
type ElementShape string

const (
	ElementRound ElementShape = "round"
	ElementFlat  ElementShape = "flat"
)

// YagiInput holds DL6WU Yagi parameters
type YagiInput struct {
	FrequencyMHz       float64      `json:"frequency_mhz"`
	Elements           int          `json:"elements"`
	BoomDiameterMM     float64      `json:"boom_diameter_mm"`
	ElementDiameterMM  float64      `json:"element_diameter_mm"`
	ElementThicknessMM float64      `json:"element_thickness_mm,omitempty"` // flat elements only
	Mounting           MountingType `json:"mounting"`
	DipoleForm         DipoleForm   `json:"dipole_form"`
	BoomShape          BoomShape    `json:"boom_shape"`
	ElementShape       ElementShape `json:"element_shape"`
}

// DefaultYagiInput returns the form defaults
func DefaultYagiInput() YagiInput {
	return YagiInput{
		FrequencyMHz:       144,
		Elements:           5,
		BoomDiameterMM:     15,
		ElementDiameterMM:  8,
		ElementThicknessMM: 2,
		Mounting:           MountingBonded,
		DipoleForm:         DipoleFolded,
		BoomShape:          BoomSquare,
		ElementShape:       ElementRound,
	}
}

// KharchenkoInput holds BiQuad parameters
type KharchenkoInput struct {
	FrequencyMHz float64 `json:"frequency_mhz"`
	ImpedanceOhm int     `json:"impedance_ohm"` // 50 or 75
}

// DefaultKharchenkoInput returns the form defaults
func DefaultKharchenkoInput() KharchenkoInput {
	return KharchenkoInput{FrequencyMHz: 2445, ImpedanceOhm: 50}
}

// CoaxNodeInput is one requested feed-line node
type CoaxNodeInput struct {
	ID          string  `json:"id,omitempty"`
	ComponentID string  `json:"component_id"`
	Quantity    float64 `json:"quantity"` // metres for cables, count otherwise
}

// CoaxInput holds a feed-line composition and transmitter power
type CoaxInput struct {
	PowerW float64         `json:"power_w"`
	Nodes  []CoaxNodeInput `json:"nodes"`
}
