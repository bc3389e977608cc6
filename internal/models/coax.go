package models

import "fmt"

// ComponentType classifies a feed-line component
type ComponentType string

const (
	ComponentCable      ComponentType = "cable"
	ComponentConnector  ComponentType = "connector"
	ComponentAttenuator ComponentType = "attenuator"
)

// QuantityUnit names what a node quantity counts
func (t ComponentType) QuantityUnit() string {
	if t == ComponentCable {
		return "m"
	}
	return "pcs"
}

// Conductor is the centre conductor construction of a cable
type Conductor string

const (
	ConductorSolid    Conductor = "solid"
	ConductorStranded Conductor = "stranded"
)

// LossPoint is one measured loss value: dB per 100 m for cables, dB per
// piece for connectors and attenuators
type LossPoint struct {
	FrequencyMHz float64 `json:"frequency_mhz"`
	Loss         float64 `json:"loss"`
}

// LossTable is a set of loss points in catalog order, unsorted
type LossTable []LossPoint

// Component is an immutable catalog entry
type Component struct {
	ID           string        `json:"id"`
	Type         ComponentType `json:"type"`
	Group        string        `json:"group"`
	Title        string        `json:"title"`
	Manufacturer string        `json:"manufacturer"`
	ImpedanceOhm int           `json:"impedance_ohm"`
	Conductor    Conductor     `json:"conductor,omitempty"`
	Losses       LossTable     `json:"losses"`
}

// Label returns the display name used in selectors and reports
func (c Component) Label() string {
	label := fmt.Sprintf("%s (%s)", c.Title, c.Manufacturer)
	if c.Conductor != "" {
		label += fmt.Sprintf(" [%s]", c.Conductor)
	}
	return label
}

// Node is a component placed in a feed line with a quantity
type Node struct {
	ID          string        `json:"id"`
	ComponentID string        `json:"component_id"`
	Label       string        `json:"label"`
	Type        ComponentType `json:"type"`
	Quantity    float64       `json:"quantity"`
}

// Tier is the colour class of a band loss percentage
type Tier string

const (
	TierGreen  Tier = "green"
	TierYellow Tier = "yellow"
	TierRed    Tier = "red"
)

// Color returns the background colour used for a tier
func (t Tier) Color() string {
	switch t {
	case TierRed:
		return "#ffacac"
	case TierYellow:
		return "#fffeac"
	default:
		return "#bfffac"
	}
}

// BandResult is the total feed-line loss at one amateur band
type BandResult struct {
	FrequencyMHz float64 `json:"frequency_mhz"`
	LossDB       float64 `json:"loss_db"`
	LossPercent  float64 `json:"loss_percent"`
	OutputPowerW float64 `json:"output_power_w"`
	Tier         Tier    `json:"tier"`
	Color        string  `json:"color"`
}

// CoaxResult holds the loss sweep of a feed line
type CoaxResult struct {
	PowerW float64      `json:"power_w"`
	Nodes  []Node       `json:"nodes"`
	Bands  []BandResult `json:"bands"`
}

// Kind implements Result
func (CoaxResult) Kind() Kind { return KindCoax }
