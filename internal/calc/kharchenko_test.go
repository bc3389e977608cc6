package calc

import (
	"errors"
	"math"
	"testing"

	"antennacalc/internal/models"
)

func TestKharchenko2445(t *testing.T) {
	result, err := Kharchenko(models.KharchenkoInput{FrequencyMHz: 2445, ImpedanceOhm: 50})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"wavelength", result.WavelengthMM, 122.6145},
		{"width", result.WidthMM, 96.0311},
		{"height", result.HeightMM, 39.8151},
		{"reflector distance", result.ReflectorDistanceMM, 17.6839},
		{"wire diameter", result.WireDiameterMM, 1.1284},
		{"side 1", result.Side1MM, 34.1639},
		{"side 2", result.Side2MM, 29.5498},
		{"total wire", result.TotalWireLengthMM, 254.8546},
		{"feed gap", result.FeedGapMM, 1.1169},
		{"guide diameter", result.GuideDiameterMM, 13.6266},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.expected, 0.001) {
			t.Errorf("Expected %s ≈ %v, got %v", c.name, c.expected, c.got)
		}
	}

	if result.WireAWG != "17" {
		t.Errorf("Expected AWG 17, got %q", result.WireAWG)
	}
	if result.ReflectorWidthMM != result.ReflectorLengthMM {
		t.Errorf("Expected a square reflector, got %v x %v", result.ReflectorWidthMM, result.ReflectorLengthMM)
	}
	for i := 1; i < 4; i++ {
		if result.GuideDistancesMM[i] <= result.GuideDistancesMM[i-1] {
			t.Errorf("Guide distances not increasing at G%d", i)
		}
	}
}

func TestKharchenkoWireIsStandard(t *testing.T) {
	for f := 400.0; f <= 3000; f += 100 {
		for _, z := range []int{50, 75} {
			result, err := Kharchenko(models.KharchenkoInput{FrequencyMHz: f, ImpedanceOhm: z})
			if err != nil {
				t.Fatalf("%v MHz / %d Ω: unexpected error: %v", f, z, err)
			}

			area := math.Pi * result.WireDiameterMM * result.WireDiameterMM / 4
			matched := false
			for _, s := range StandardCrossSections {
				if almostEqual(area, s, 1e-9) {
					matched = true
				}
			}
			if !matched {
				t.Errorf("%v MHz: wire area %v is not a standard cross-section", f, area)
			}

			for name, v := range map[string]float64{
				"width": result.WidthMM, "height": result.HeightMM, "distance": result.ReflectorDistanceMM,
				"side1": result.Side1MM, "side2": result.Side2MM, "total": result.TotalWireLengthMM,
				"bend": result.BendRadiusMM, "guide": result.GuideDiameterMM,
			} {
				if v <= 0 {
					t.Errorf("%v MHz / %d Ω: expected positive %s, got %v", f, z, name, v)
				}
			}
		}
	}
}

func TestKharchenko75Differs(t *testing.T) {
	r50, err := Kharchenko(models.KharchenkoInput{FrequencyMHz: 1000, ImpedanceOhm: 50})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	r75, err := Kharchenko(models.KharchenkoInput{FrequencyMHz: 1000, ImpedanceOhm: 75})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if r75.WidthMM <= r50.WidthMM {
		t.Errorf("Expected 75 Ω frames to be wider, got %v vs %v", r75.WidthMM, r50.WidthMM)
	}
	if r75.ReflectorDistanceMM <= r50.ReflectorDistanceMM {
		t.Errorf("Expected 75 Ω reflector further away, got %v vs %v", r75.ReflectorDistanceMM, r50.ReflectorDistanceMM)
	}
}

func TestValidateKharchenko(t *testing.T) {
	tests := []struct {
		name     string
		input    models.KharchenkoInput
		messages int
	}{
		{"valid", models.KharchenkoInput{FrequencyMHz: 2445, ImpedanceOhm: 50}, 0},
		{"range edges", models.KharchenkoInput{FrequencyMHz: 400, ImpedanceOhm: 75}, 0},
		{"upper edge", models.KharchenkoInput{FrequencyMHz: 3000, ImpedanceOhm: 50}, 0},
		{"zero frequency", models.KharchenkoInput{FrequencyMHz: 0, ImpedanceOhm: 50}, 1},
		{"negative frequency", models.KharchenkoInput{FrequencyMHz: -5, ImpedanceOhm: 50}, 2},
		{"out of range", models.KharchenkoInput{FrequencyMHz: 5000, ImpedanceOhm: 50}, 1},
		{"out of range and bad impedance", models.KharchenkoInput{FrequencyMHz: 100, ImpedanceOhm: 60}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKharchenko(tt.input)
			if tt.messages == 0 {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if len(ve.Messages) != tt.messages {
				t.Errorf("Expected %d messages, got %v", tt.messages, ve.Messages)
			}
		})
	}
}
