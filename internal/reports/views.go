package reports

import (
	"strconv"

	"antennacalc/internal/calc"
	"antennacalc/internal/models"
	"antennacalc/internal/units"
)

// YagiHeader describes the Yagi design choices
type YagiHeader struct {
	Title        string
	Subtitle     string
	DipoleForm   string
	ElementShape string
	BoomShape    string
}

// YagiBasic holds the headline Yagi figures
type YagiBasic struct {
	Frequency     string
	Wavelength    string
	TotalElements int
	BoomLength    string
	Gain          string
}

// ElementView is a display row of one Yagi element
type ElementView struct {
	Name     string
	Type     string
	Length   string
	Position string
	Distance string
	Gap      string
}

// YagiView is the structured display form of a Yagi result
type YagiView struct {
	Header   YagiHeader
	Basic    YagiBasic
	Elements []ElementView
	Mounting string
}

func dipoleFormText(f models.DipoleForm) string {
	if f == models.DipoleFolded {
		return "Folded dipole"
	}
	return "Split dipole"
}

func elementShapeText(s models.ElementShape) string {
	if s == models.ElementFlat {
		return "Flat"
	}
	return "Round"
}

func boomShapeText(s models.BoomShape) string {
	if s == models.BoomRound {
		return "Round"
	}
	return "Square"
}

// NewYagiView formats a Yagi result in unit u
func NewYagiView(r models.YagiResult, u units.Unit) YagiView {
	v := YagiView{
		Header: YagiHeader{
			Title:        "Long-Yagi DL6WU",
			Subtitle:     "Based on the DL6WU.BAS design procedure",
			DipoleForm:   dipoleFormText(r.Input.DipoleForm),
			ElementShape: elementShapeText(r.Input.ElementShape),
			BoomShape:    boomShapeText(r.Input.BoomShape),
		},
		Basic: YagiBasic{
			Frequency:     mhz(r.Input.FrequencyMHz),
			Wavelength:    lenMM(r.WavelengthMM, u),
			TotalElements: len(r.Elements),
			BoomLength:    lenMM(r.BoomLengthMM, u),
			Gain:          strconv.FormatFloat(r.GainDBi, 'f', 1, 64) + " dBi (approx.)",
		},
		Mounting: r.Input.Mounting.Description(),
	}

	for i, e := range r.Elements {
		ev := ElementView{
			Name:     e.Name,
			Type:     string(e.Type),
			Length:   lenMM(e.LengthMM, u),
			Position: lenMM(e.PositionMM, u),
			Distance: "0",
		}
		if i > 0 {
			ev.Distance = lenMM(e.DistanceMM, u)
		}
		if e.GapMM > 0 {
			ev.Gap = lenMM(e.GapMM, u)
		}
		v.Elements = append(v.Elements, ev)
	}
	return v
}

// KharchenkoHeader holds the Kharchenko input figures
type KharchenkoHeader struct {
	Title      string
	Subtitle   string
	Frequency  string
	Impedance  string
	Wavelength string
}

// KharchenkoFrames holds the driven frame dimensions
type KharchenkoFrames struct {
	Width             string
	Height            string
	TotalWireLength   string
	ReflectorDistance string
}

// KharchenkoReflector holds the reflector plate dimensions
type KharchenkoReflector struct {
	Width  string
	Length string
}

// KharchenkoConstruction holds wire and bending details
type KharchenkoConstruction struct {
	WireDiameter string
	AWG          string
	Side1        string
	Side2        string
	BendRadius   string
	FeedGap      string
}

// KharchenkoGuides holds the bending jig guide positions
type KharchenkoGuides struct {
	Distances [4]string
	Diameter  string
}

// KharchenkoView is the structured display form of a Kharchenko result
type KharchenkoView struct {
	Header       KharchenkoHeader
	Frames       KharchenkoFrames
	Reflector    KharchenkoReflector
	Construction KharchenkoConstruction
	Guides       KharchenkoGuides
}

// NewKharchenkoView formats a Kharchenko result in unit u
func NewKharchenkoView(r models.KharchenkoResult, u units.Unit) KharchenkoView {
	awg := r.WireAWG
	if awg == "" {
		awg = calc.AWG(r.WireDiameterMM)
	}

	v := KharchenkoView{
		Header: KharchenkoHeader{
			Title:      "Kharchenko antenna (zigzag)",
			Subtitle:   "Double-rhombus BiQuad with a flat reflector",
			Frequency:  mhz(r.FrequencyMHz),
			Impedance:  strconv.Itoa(r.ImpedanceOhm) + " Ω",
			Wavelength: lenMM(r.WavelengthMM, u),
		},
		Frames: KharchenkoFrames{
			Width:             lenMM(r.WidthMM, u),
			Height:            lenMM(r.HeightMM, u),
			TotalWireLength:   lenMM(r.TotalWireLengthMM, u),
			ReflectorDistance: lenMM(r.ReflectorDistanceMM, u),
		},
		Reflector: KharchenkoReflector{
			Width:  lenMM(r.ReflectorWidthMM, u),
			Length: lenMM(r.ReflectorLengthMM, u),
		},
		Construction: KharchenkoConstruction{
			WireDiameter: lenMM(r.WireDiameterMM, u),
			AWG:          awg,
			Side1:        lenMM(r.Side1MM, u),
			Side2:        lenMM(r.Side2MM, u),
			BendRadius:   lenMM(r.BendRadiusMM, u),
			FeedGap:      lenMM(r.FeedGapMM, u),
		},
		Guides: KharchenkoGuides{
			Diameter: lenMM(r.GuideDiameterMM, u),
		},
	}
	for i, g := range r.GuideDistancesMM {
		v.Guides.Distances[i] = lenMM(g, u)
	}
	return v
}
