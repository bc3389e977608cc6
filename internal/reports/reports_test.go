package reports

import (
	"strings"
	"testing"

	"antennacalc/internal/calc"
	"antennacalc/internal/coax"
	"antennacalc/internal/models"
	"antennacalc/internal/units"
)

func yagiResult(t *testing.T) models.YagiResult {
	t.Helper()
	r, err := calc.Yagi(models.DefaultYagiInput())
	if err != nil {
		t.Fatalf("Yagi: %v", err)
	}
	return r
}

func kharchenkoResult(t *testing.T) models.KharchenkoResult {
	t.Helper()
	r, err := calc.Kharchenko(models.DefaultKharchenkoInput())
	if err != nil {
		t.Fatalf("Kharchenko: %v", err)
	}
	return r
}

func coaxResult(t *testing.T) models.CoaxResult {
	t.Helper()
	catalog := coax.Default()
	rg58, err := catalog.Find("generic/rg-58")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	r, err := coax.Calculate(catalog, models.CoaxInput{
		PowerW: 50,
		Nodes:  []models.CoaxNodeInput{{ComponentID: coax.ComponentID(rg58), Quantity: 100}},
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	return r
}

func TestTextReportYagi(t *testing.T) {
	text, err := TextReport(yagiResult(t), units.Millimeter)
	if err != nil {
		t.Fatalf("TextReport: %v", err)
	}

	expected := []string{
		"Long-Yagi DL6WU",
		"Driven element: Folded dipole",
		"Boom cross-section: Square",
		"Frequency f: 144 MHz",
		"Wavelength λ: 2081.9 мм",
		"Total elements: 5",
		"Gain: 10.5 dBi (approx.)",
		"Length R: 1061.3 мм",
		"Position F: 416.4 мм",
		"Feed gap g <= 25.0 мм",
		"Distance R-F: 416.4 мм",
		"Distance D2-D3:",
		models.MountingBonded.Description(),
		"Element lengths include the boom correction.",
		separator,
	}
	for _, want := range expected {
		if !strings.Contains(text, want) {
			t.Errorf("Expected report to contain %q\n%s", want, text)
		}
	}

	if strings.Contains(text, "Distance -R") {
		t.Error("Reflector must not have a distance line")
	}
}

func TestTextReportUnits(t *testing.T) {
	r := yagiResult(t)

	tests := []struct {
		unit units.Unit
		want string
	}{
		{units.Millimeter, "Length R: 1061.3 мм"},
		{units.Centimeter, "Length R: 106.13 см"},
		{units.Meter, "Length R: 1.0613 м"},
	}

	for _, tt := range tests {
		text, err := TextReport(r, tt.unit)
		if err != nil {
			t.Fatalf("TextReport(%s): %v", tt.unit, err)
		}
		if !strings.Contains(text, tt.want) {
			t.Errorf("Unit %s: expected %q", tt.unit, tt.want)
		}
	}
}

func TestTextReportKharchenko(t *testing.T) {
	text, err := TextReport(kharchenkoResult(t), units.Millimeter)
	if err != nil {
		t.Fatalf("TextReport: %v", err)
	}

	expected := []string{
		"Kharchenko antenna (zigzag)",
		"Centre frequency f: 2445 MHz",
		"Input impedance Zo: 50 Ω",
		"W (overall frame length): 96.0 мм",
		"H (frame width): 39.8 мм",
		"Total wire length (both frames): 254.9 мм",
		"Driven wire diameter: 1.1 мм (17 AWG#)",
		"Approximate frame side qs1: 34.2 мм",
		"Guide spacing G0:",
		"Guide spacing G3:",
		"Guide diameter GD: 13.6 мм",
	}
	for _, want := range expected {
		if !strings.Contains(text, want) {
			t.Errorf("Expected report to contain %q\n%s", want, text)
		}
	}
}

func TestTextReportCentimetreCalculators(t *testing.T) {
	fp, err := calc.FlowerPot(models.DefaultFlowerPotInput())
	if err != nil {
		t.Fatal(err)
	}
	gp, err := calc.GroundPlane(models.DefaultGroundPlaneInput())
	if err != nil {
		t.Fatal(err)
	}
	jp, err := calc.JPole(models.DefaultJPoleInput())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		result models.Result
		want   []string
	}{
		{"flower-pot", fp, []string{"Flower-Pot Dipole", "Frequency f: 145 MHz", "Choke cable length:", "см"}},
		{"ground-plane", gp, []string{"Ground-Plane", "Radiator:", "Radials:"}},
		{"j-pole", jp, []string{"J-Pole", "A (radiator):", "D (feed point):", "Velocity factor:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := TextReport(tt.result, units.Centimeter)
			if err != nil {
				t.Fatalf("TextReport: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("Expected %q in\n%s", want, text)
				}
			}
		})
	}
}

func TestTextReportCoax(t *testing.T) {
	text, err := TextReport(coaxResult(t), units.Millimeter)
	if err != nil {
		t.Fatalf("TextReport: %v", err)
	}

	for _, want := range []string{"Power: 50 W", "RG-58 (Generic)", "100 m", "145 MHz", "red"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in\n%s", want, text)
		}
	}
}

func TestTextReportEmptyCoax(t *testing.T) {
	text, err := TextReport(models.CoaxResult{PowerW: 10}, units.Millimeter)
	if err != nil {
		t.Fatalf("TextReport: %v", err)
	}
	if !strings.Contains(text, "(none)") || !strings.Contains(text, "No loss data") {
		t.Errorf("Expected empty feed-line markers in\n%s", text)
	}
}

func TestBuildUnsupported(t *testing.T) {
	if _, err := Build(nil, units.Millimeter); err == nil {
		t.Error("Expected an error for a nil result")
	}
}

func TestBuildInvalidUnitFallsBack(t *testing.T) {
	doc, err := Build(yagiResult(t), units.Unit("furlong"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Unit != units.Default {
		t.Errorf("Expected default unit, got %s", doc.Unit)
	}
}

func TestMarkdown(t *testing.T) {
	md, err := Markdown(coaxResult(t), units.Millimeter)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}

	for _, want := range []string{
		"# Coaxial Cable Loss",
		"## Loss per band",
		"| Band | Loss, dB | Lost, % | Output, W | Tier |",
		"| --- | --- | --- | --- | --- |",
		"| 145 MHz |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected %q in\n%s", want, md)
		}
	}

	md, err = Markdown(yagiResult(t), units.Centimeter)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(md, "| Parameter | Value |") || !strings.Contains(md, "Units: cm") {
		t.Errorf("Unexpected Yagi markdown\n%s", md)
	}
}

func TestYagiView(t *testing.T) {
	v := NewYagiView(yagiResult(t), units.Millimeter)

	if v.Basic.TotalElements != 5 {
		t.Errorf("Expected 5 elements, got %d", v.Basic.TotalElements)
	}
	if v.Elements[0].Distance != "0" {
		t.Errorf("Expected reflector distance 0, got %s", v.Elements[0].Distance)
	}
	if v.Elements[1].Gap == "" {
		t.Error("Expected a feed gap for the folded dipole")
	}
	if v.Elements[2].Gap != "" {
		t.Error("Directors have no feed gap")
	}
	if v.Header.ElementShape != "Round" {
		t.Errorf("Expected Round elements, got %s", v.Header.ElementShape)
	}
}

func TestKharchenkoView(t *testing.T) {
	v := NewKharchenkoView(kharchenkoResult(t), units.Centimeter)

	if v.Construction.AWG != "17" {
		t.Errorf("Expected AWG 17, got %s", v.Construction.AWG)
	}
	if v.Frames.Width != "9.60 см" {
		t.Errorf("Expected width 9.60 см, got %s", v.Frames.Width)
	}
	for i, g := range v.Guides.Distances {
		if g == "" {
			t.Errorf("Guide G%d is empty", i)
		}
	}
}
