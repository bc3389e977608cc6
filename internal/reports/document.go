// Package reports turns calculator results into copy-paste text, markdown
// and HTML documents, and bundles them for storage.
package reports

import (
	"fmt"
	"strconv"

	"antennacalc/internal/models"
	"antennacalc/internal/units"
)

// Row is one labelled value of a report section
type Row struct {
	Label string
	Value string
}

// Section is a group of rows, or a table when Columns is set
type Section struct {
	Title   string
	Rows    []Row
	Columns []string
	Table   [][]string
}

// Document is the unit-aware, format-neutral content of a report
type Document struct {
	Kind     models.Kind
	Title    string
	Subtitle string
	Unit     units.Unit
	Sections []Section
	Notes    []string
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mhz(f float64) string {
	return num(f) + " MHz"
}

// lenMM renders a millimetre length in u with its label
func lenMM(mm float64, u units.Unit) string {
	return units.WithLabel(mm, u)
}

// lenCM renders a centimetre length in u with its label
func lenCM(cm float64, u units.Unit) string {
	return units.FormatFromCm(cm, u) + " " + u.Label()
}

// Build assembles the report document of a calculator result
func Build(result models.Result, u units.Unit) (Document, error) {
	if !u.Valid() {
		u = units.Default
	}

	switch r := result.(type) {
	case models.FlowerPotResult:
		return flowerPotDocument(r, u), nil
	case models.GroundPlaneResult:
		return groundPlaneDocument(r, u), nil
	case models.JPoleResult:
		return jPoleDocument(r, u), nil
	case models.YagiResult:
		return yagiDocument(r, u), nil
	case models.KharchenkoResult:
		return kharchenkoDocument(r, u), nil
	case models.CoaxResult:
		return coaxDocument(r), nil
	default:
		return Document{}, fmt.Errorf("unsupported result type %T", result)
	}
}

func flowerPotDocument(r models.FlowerPotResult, u units.Unit) Document {
	return Document{
		Kind:  models.KindFlowerPot,
		Title: models.KindFlowerPot.Title(),
		Unit:  u,
		Sections: []Section{
			{
				Title: "Input",
				Rows: []Row{
					{"Frequency f", mhz(r.Input.FrequencyMHz)},
					{"Resonance shift", num(r.Input.ResonanceShiftPercent) + " %"},
					{"Cable velocity factor", num(r.Input.VelocityFactor)},
					{"Wavelength λ", lenCM(r.WavelengthCM, u)},
				},
			},
			{
				Title: "Dimensions",
				Rows: []Row{
					{"Resonant frequency", mhz(units.Round(r.ResonantFrequencyMHz, 3))},
					{"Resonant wavelength", lenCM(r.ResonantWavelengthCM, u)},
					{"Upper radiator", lenCM(r.UpperRadiatorCM, u)},
					{"Lower radiator", lenCM(r.LowerRadiatorCM, u)},
					{"Choke cable length", lenCM(r.ChokeLengthCM, u)},
				},
			},
		},
	}
}

func groundPlaneDocument(r models.GroundPlaneResult, u units.Unit) Document {
	return Document{
		Kind:  models.KindGroundPlane,
		Title: models.KindGroundPlane.Title(),
		Unit:  u,
		Sections: []Section{
			{
				Title: "Input",
				Rows: []Row{
					{"Frequency f", mhz(r.Input.FrequencyMHz)},
					{"Wavelength λ", lenCM(r.WavelengthCM, u)},
				},
			},
			{
				Title: "Dimensions",
				Rows: []Row{
					{"Radiator", lenCM(r.RadiatorCM, u)},
					{"Radials", lenCM(r.RadialCM, u)},
				},
			},
		},
	}
}

func jPoleDocument(r models.JPoleResult, u units.Unit) Document {
	return Document{
		Kind:  models.KindJPole,
		Title: models.KindJPole.Title(),
		Unit:  u,
		Sections: []Section{
			{
				Title: "Input",
				Rows: []Row{
					{"Frequency f", mhz(r.Input.FrequencyMHz)},
					{"Wire diameter", lenMM(r.Input.WireDiameterMM, u)},
					{"Wavelength λ", lenMM(r.WavelengthMM, u)},
					{"Velocity factor", num(r.VelocityFactor)},
				},
			},
			{
				Title: "Dimensions",
				Rows: []Row{
					{"A (radiator)", lenCM(r.RadiatorCM, u)},
					{"B (matching stub)", lenCM(r.StubCM, u)},
					{"C (spacing)", lenCM(r.SpacingCM, u)},
					{"D (feed point)", lenCM(r.FeedPointCM, u)},
				},
			},
		},
	}
}

func yagiDocument(r models.YagiResult, u units.Unit) Document {
	v := NewYagiView(r, u)

	doc := Document{
		Kind:     models.KindYagi,
		Title:    v.Header.Title,
		Subtitle: v.Header.Subtitle,
		Unit:     u,
		Sections: []Section{
			{
				Title: "Design",
				Rows: []Row{
					{"Driven element", v.Header.DipoleForm},
					{"Element shape", v.Header.ElementShape},
					{"Boom cross-section", v.Header.BoomShape},
				},
			},
			{
				Title: "Basic parameters",
				Rows: []Row{
					{"Frequency f", v.Basic.Frequency},
					{"Wavelength λ", v.Basic.Wavelength},
				},
			},
			{
				Title: "Boom",
				Rows: []Row{
					{"Total elements", strconv.Itoa(v.Basic.TotalElements)},
					{"Boom length", v.Basic.BoomLength},
					{"Gain", v.Basic.Gain},
				},
			},
		},
		Notes: []string{v.Mounting, "Element lengths include the boom correction."},
	}

	for i, e := range v.Elements {
		rows := []Row{
			{"Length " + e.Name, e.Length},
			{"Position " + e.Name, e.Position},
		}
		if e.Gap != "" {
			rows = append(rows, Row{"Feed gap g <=", e.Gap})
		}
		if i > 0 {
			rows = append(rows, Row{fmt.Sprintf("Distance %s-%s", v.Elements[i-1].Name, e.Name), e.Distance})
		}
		doc.Sections = append(doc.Sections, Section{Title: "Element " + e.Name, Rows: rows})
	}
	return doc
}

func kharchenkoDocument(r models.KharchenkoResult, u units.Unit) Document {
	v := NewKharchenkoView(r, u)

	awg := v.Construction.WireDiameter
	if v.Construction.AWG != "" {
		awg += " (" + v.Construction.AWG + " AWG#)"
	}

	guides := make([]Row, 0, len(v.Guides.Distances)+1)
	for i, g := range v.Guides.Distances {
		guides = append(guides, Row{fmt.Sprintf("Guide spacing G%d", i), g})
	}
	guides = append(guides, Row{"Guide diameter GD", v.Guides.Diameter})

	return Document{
		Kind:     models.KindKharchenko,
		Title:    v.Header.Title,
		Subtitle: v.Header.Subtitle,
		Unit:     u,
		Sections: []Section{
			{
				Title: "Input",
				Rows: []Row{
					{"Centre frequency f", v.Header.Frequency},
					{"Input impedance Zo", v.Header.Impedance},
					{"Wavelength λ", v.Header.Wavelength},
				},
			},
			{
				Title: "Frames",
				Rows: []Row{
					{"W (overall frame length)", v.Frames.Width},
					{"H (frame width)", v.Frames.Height},
					{"Total wire length (both frames)", v.Frames.TotalWireLength},
					{"D (reflector to driven plane)", v.Frames.ReflectorDistance},
				},
			},
			{
				Title: "Reflector",
				Rows: []Row{
					{"B (reflector width)", v.Reflector.Width},
					{"A (reflector length)", v.Reflector.Length},
				},
			},
			{
				Title: "Construction",
				Rows: []Row{
					{"Driven wire diameter", awg},
					{"Approximate frame side qs1", v.Construction.Side1},
					{"Approximate frame side qs2", v.Construction.Side2},
					{"Approximate bend radius R", v.Construction.BendRadius},
					{"Approximate feed gap", v.Construction.FeedGap},
				},
			},
			{Title: "Guides", Rows: guides},
		},
	}
}

func coaxDocument(r models.CoaxResult) Document {
	line := Section{
		Title:   "Feed line",
		Columns: []string{"Component", "Type", "Quantity"},
	}
	for _, n := range r.Nodes {
		line.Table = append(line.Table, []string{
			n.Label,
			string(n.Type),
			num(units.Round(n.Quantity, 2)) + " " + n.Type.QuantityUnit(),
		})
	}

	bands := Section{
		Title:   "Loss per band",
		Columns: []string{"Band", "Loss, dB", "Lost, %", "Output, W", "Tier"},
	}
	for _, b := range r.Bands {
		bands.Table = append(bands.Table, []string{
			mhz(b.FrequencyMHz),
			strconv.FormatFloat(b.LossDB, 'f', 2, 64),
			strconv.FormatFloat(b.LossPercent, 'f', 1, 64),
			strconv.FormatFloat(b.OutputPowerW, 'f', 2, 64),
			string(b.Tier),
		})
	}

	doc := Document{
		Kind:  models.KindCoax,
		Title: models.KindCoax.Title(),
		Unit:  units.Meter,
		Sections: []Section{
			{Title: "Transmitter", Rows: []Row{{"Power", num(r.PowerW) + " W"}}},
			line,
			bands,
		},
	}
	if len(r.Bands) == 0 {
		doc.Notes = append(doc.Notes, "No loss data for the selected components.")
	}
	return doc
}
