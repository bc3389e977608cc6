package coax

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"antennacalc/internal/models"
)

func findComponent(t *testing.T, query string) models.Component {
	t.Helper()
	c, err := Default().Find(query)
	if err != nil {
		t.Fatalf("Find(%q): %v", query, err)
	}
	return c
}

func TestDefaultCatalog(t *testing.T) {
	catalog := Default()

	components := catalog.Components()
	if len(components) != 29 {
		t.Errorf("Expected 29 components, got %d", len(components))
	}

	for _, c := range components {
		if len(c.Losses) == 0 {
			t.Errorf("Component %s has an empty loss table", c.Label())
		}
		if c.ID != ComponentID(c) {
			t.Errorf("Component %s has an unstable ID", c.Label())
		}
		if got, ok := catalog.Lookup(c.ID); !ok || got.Title != c.Title {
			t.Errorf("Lookup(%s) failed for %s", c.ID, c.Label())
		}
	}

	groups := catalog.Groups()
	if groups[0].Key != GroupConnectors || groups[len(groups)-1].Key != GroupAttenuators {
		t.Errorf("Unexpected group order: first %s, last %s", groups[0].Key, groups[len(groups)-1].Key)
	}
}

func TestCatalogIDsAreDeterministic(t *testing.T) {
	again, err := NewCatalog(builtin)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if !reflect.DeepEqual(again.Components(), Default().Components()) {
		t.Error("Expected two catalogs built from the same data to be identical")
	}
}

func TestNewCatalogRejectsBadEntries(t *testing.T) {
	_, err := NewCatalog([]models.Component{{Title: "empty", Type: models.ComponentCable}})
	if err == nil {
		t.Error("Expected error for an empty loss table")
	}

	dup := connector("BNC", table(3000, 0.2))
	if _, err := NewCatalog([]models.Component{dup, dup}); err == nil {
		t.Error("Expected error for duplicate components")
	}
}

func TestFind(t *testing.T) {
	catalog := Default()

	if _, err := catalog.Find("LMR-400"); !errors.Is(err, ErrAmbiguous) {
		t.Errorf("Expected ambiguous LMR-400, got %v", err)
	}
	if c, err := catalog.Find("prosoft/lmr-400"); err != nil || c.Manufacturer != "ProSoft" {
		t.Errorf("Expected ProSoft LMR-400, got %+v, %v", c, err)
	}
	if c, err := catalog.Find("N Type"); err != nil || c.Type != models.ComponentConnector {
		t.Errorf("Expected N Type connector, got %+v, %v", c, err)
	}
	if _, err := catalog.Find("unobtainium"); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("Expected ErrUnknownComponent, got %v", err)
	}
	if _, err := catalog.Find(" "); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Expected ErrNoSelection, got %v", err)
	}
}

func TestInterpolate(t *testing.T) {
	rg58 := table(100, 14.8, 200, 22.3, 400, 32.8, 700, 48.9, 900, 52.8)

	tests := []struct {
		name     string
		table    models.LossTable
		band     float64
		expected float64
	}{
		{"between keys", rg58, 145, 18.175},
		{"exact key", rg58, 200, 22.3},
		{"below first key uses origin", rg58, 50, 7.4},
		{"above last key is zero", rg58, 1200, 0},
		{"unsorted keys", table(400, 32.8, 100, 14.8, 200, 22.3), 145, 18.175},
		{"single key", table(500, 0.15), 250, 0.075},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(tt.table, tt.band); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestComponentLoss(t *testing.T) {
	rg58 := findComponent(t, "Generic/RG-58")
	if got := ComponentLoss(rg58, 50, 145); math.Abs(got-9.0875) > 1e-9 {
		t.Errorf("Expected 50 m of RG-58 to lose 9.0875 dB, got %v", got)
	}

	n := findComponent(t, "N Type")
	if got := ComponentLoss(n, 2, 10000); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("Expected two N connectors to lose 0.3 dB, got %v", got)
	}

	att := findComponent(t, "3 dB")
	for _, band := range Bands {
		if got := ComponentLoss(att, 2, band); got != 6 {
			t.Errorf("Expected two 3 dB attenuators to lose 6 dB at %v MHz, got %v", band, got)
		}
	}

	if got := ComponentLoss(rg58, 0, 145); got != 0 {
		t.Errorf("Expected zero quantity to contribute nothing, got %v", got)
	}
	if got := ComponentLoss(rg58, -10, 145); got != 0 {
		t.Errorf("Expected negative quantity to contribute nothing, got %v", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		percent  float64
		expected models.Tier
	}{
		{0, models.TierGreen},
		{49.999, models.TierGreen},
		{50, models.TierYellow},
		{79.999, models.TierYellow},
		{80, models.TierRed},
		{100, models.TierRed},
	}

	for _, tt := range tests {
		if got := Classify(tt.percent); got != tt.expected {
			t.Errorf("Classify(%v) = %s, expected %s", tt.percent, got, tt.expected)
		}
	}
}

func TestSweepRG58Hundred(t *testing.T) {
	rg58 := findComponent(t, "Generic/RG-58")
	nodes := []models.Node{{ID: "n1", ComponentID: rg58.ID, Quantity: 100}}

	results, err := Sweep(Default(), nodes, 50)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(results) != len(Bands) {
		t.Fatalf("Expected %d bands, got %d", len(Bands), len(results))
	}

	expected := map[float64]struct {
		loss   float64
		output float64
		tier   models.Tier
	}{
		1.9:   {0.2812, 46.8651, models.TierGreen},
		14.15: {2.0942, 30.8710, models.TierGreen},
		27.5:  {4.07, 19.5871, models.TierYellow},
		52:    {7.696, 8.4990, models.TierRed},
		145:   {18.175, 0.7611, models.TierRed},
	}
	for _, r := range results {
		want, ok := expected[r.FrequencyMHz]
		if !ok {
			continue
		}
		if math.Abs(r.LossDB-want.loss) > 1e-4 {
			t.Errorf("%v MHz: expected loss %v dB, got %v", r.FrequencyMHz, want.loss, r.LossDB)
		}
		if math.Abs(r.OutputPowerW-want.output) > 1e-4 {
			t.Errorf("%v MHz: expected output %v W, got %v", r.FrequencyMHz, want.output, r.OutputPowerW)
		}
		if r.Tier != want.tier || r.Color != want.tier.Color() {
			t.Errorf("%v MHz: expected tier %s, got %s (%s)", r.FrequencyMHz, want.tier, r.Tier, r.Color)
		}
		if math.Abs(r.LossPercent+100*r.OutputPowerW/50-100) > 1e-9 {
			t.Errorf("%v MHz: loss percent and output power disagree", r.FrequencyMHz)
		}
	}
}

func TestSweepOmitsBandsWithoutData(t *testing.T) {
	short := findComponent(t, "RG-174 (8819034)")
	results, err := Sweep(Default(), []models.Node{{ComponentID: short.ID, Quantity: 10}}, 50)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(results) != len(Bands)-1 {
		t.Fatalf("Expected %d bands, got %d", len(Bands)-1, len(results))
	}
	for _, r := range results {
		if r.FrequencyMHz == 435 {
			t.Error("Expected 435 MHz to be omitted for a table ending at 150 MHz")
		}
	}

	empty, err := Sweep(Default(), nil, 50)
	if err != nil || len(empty) != 0 {
		t.Errorf("Expected no results for an empty line, got %v, %v", empty, err)
	}

	if _, err := Sweep(Default(), []models.Node{{ComponentID: "nope", Quantity: 1}}, 50); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("Expected ErrUnknownComponent, got %v", err)
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	rg58 := findComponent(t, "Generic/RG-58")
	n := findComponent(t, "N Type")
	nodes := []models.Node{
		{ComponentID: rg58.ID, Quantity: 25},
		{ComponentID: n.ID, Quantity: 2},
	}

	first, err := Sweep(Default(), nodes, 100)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	second, err := Sweep(Default(), nodes, 100)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical results for identical input")
	}
}
