package calc

import (
	"errors"
	"math"
	"strings"
	"testing"

	"antennacalc/internal/models"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestWavelengthDecreasesWithFrequency(t *testing.T) {
	previous := math.Inf(1)
	for _, f := range []float64{1.9, 14.15, 144, 433.9, 2445} {
		lambda := Wavelength(f)
		if lambda >= previous {
			t.Errorf("Expected wavelength at %v MHz to be below %v, got %v", f, previous, lambda)
		}
		previous = lambda
	}

	if !almostEqual(Wavelength(144), 2081.89, 0.01) {
		t.Errorf("Expected λ(144 MHz) ≈ 2081.89 mm, got %v", Wavelength(144))
	}
}

func TestFlowerPot(t *testing.T) {
	result, err := FlowerPot(models.DefaultFlowerPotInput())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"wavelength", result.WavelengthCM, 206.7},
		{"resonant wavelength", result.ResonantWavelengthCM, 223.4},
		{"upper radiator", result.UpperRadiatorCM, 46.28},
		{"lower radiator", result.LowerRadiatorCM, 45.24},
		{"choke", result.ChokeLengthCM, 73.72},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.expected, 1e-9) {
			t.Errorf("Expected %s %v, got %v", c.name, c.expected, c.got)
		}
	}
}

func TestFlowerPotValidation(t *testing.T) {
	_, err := FlowerPot(models.FlowerPotInput{FrequencyMHz: 0, ResonanceShiftPercent: 120, VelocityFactor: 1.5})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if len(ve.Messages) != 3 {
		t.Errorf("Expected 3 messages, got %d: %v", len(ve.Messages), ve.Messages)
	}
}

func TestGroundPlane(t *testing.T) {
	result, err := GroundPlane(models.GroundPlaneInput{FrequencyMHz: 145})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.WavelengthCM != 206.9 {
		t.Errorf("Expected wavelength 206.9 cm, got %v", result.WavelengthCM)
	}
	if !almostEqual(result.RadiatorCM, 49.14, 0.011) {
		t.Errorf("Expected radiator 49.14 cm, got %v", result.RadiatorCM)
	}
	if !almostEqual(result.RadialCM, 55.04, 1e-9) {
		t.Errorf("Expected radials 55.04 cm, got %v", result.RadialCM)
	}

	if _, err := GroundPlane(models.GroundPlaneInput{FrequencyMHz: -1}); !IsValidation(err) {
		t.Errorf("Expected validation error for negative frequency, got %v", err)
	}
}

func TestVelocityFactor(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected float64
	}{
		{1, 0.70},
		{2, 0.72},
		{3, 0.79},
		{4, 0.86},
		{8, 0.91},
		{100, 0.96},
		{10000, 0.98},
		{20000, 0.99},
	}

	for _, tt := range tests {
		if got := VelocityFactor(tt.ratio); !almostEqual(got, tt.expected, 1e-9) {
			t.Errorf("VelocityFactor(%v) = %v, expected %v", tt.ratio, got, tt.expected)
		}
	}
}

func TestJPole(t *testing.T) {
	result, err := JPole(models.JPoleInput{FrequencyMHz: 145, WireDiameterMM: 4})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.VelocityFactor != 0.96 {
		t.Errorf("Expected shortening factor 0.96, got %v", result.VelocityFactor)
	}
	if !almostEqual(result.RadiatorCM, 148.99, 0.02) {
		t.Errorf("Expected radiator ≈ 148.99 cm, got %v", result.RadiatorCM)
	}
	if !almostEqual(result.RadiatorCM, 3*result.StubCM, 0.02) {
		t.Errorf("Expected radiator to be three stubs long, got %v and %v", result.RadiatorCM, result.StubCM)
	}
	if result.SpacingCM <= 0 || result.FeedPointCM <= result.SpacingCM {
		t.Errorf("Unexpected spacing %v and feed point %v", result.SpacingCM, result.FeedPointCM)
	}
}

func TestJPoleErrors(t *testing.T) {
	_, err := JPole(models.JPoleInput{FrequencyMHz: 145, WireDiameterMM: 40})
	if !errors.Is(err, ErrWireTooThick) {
		t.Errorf("Expected ErrWireTooThick, got %v", err)
	}

	_, err = JPole(models.JPoleInput{FrequencyMHz: 0, WireDiameterMM: 4})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
	if !IsValidation(err) {
		t.Errorf("Expected invalid input to be a validation error")
	}
}

func TestWireSnapping(t *testing.T) {
	tests := []struct {
		name        string
		theoretical float64
		section     float64
	}{
		{"below midpoint snaps down", 1.2139, 1},
		{"above midpoint snaps up", 1.35, 1.5},
		{"large wire", 7.4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActualWireDiameter(tt.theoretical)
			want := 2 * math.Sqrt(tt.section/math.Pi)
			if !almostEqual(got, want, 1e-9) {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}

	if got := ActualWireDiameter(0.1); got != 0.1 {
		t.Errorf("Expected diameter below the table to be unchanged, got %v", got)
	}
}

func TestAWG(t *testing.T) {
	tests := []struct {
		diameter float64
		expected string
	}{
		{13, ""},
		{11.5, "0000"},
		{10.2, "000"},
		{9, "00"},
		{1.12838, "17"},
		{0.127, "36"},
		{0.001, ""},
	}

	for _, tt := range tests {
		if got := AWG(tt.diameter); got != tt.expected {
			t.Errorf("AWG(%v) = %q, expected %q", tt.diameter, got, tt.expected)
		}
	}
}

func TestRunWrapsFailures(t *testing.T) {
	_, err := Run(func() (int, error) { panic("boom") })
	var ce *CalculationError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected CalculationError from panic, got %v", err)
	}
	if err.Error() != "calculation error: boom" {
		t.Errorf("Unexpected message %q", err.Error())
	}

	_, err = Run(func() (int, error) { return 0, errors.New("disk on fire") })
	if !strings.HasPrefix(err.Error(), "calculation error: ") {
		t.Errorf("Expected calculation error prefix, got %q", err.Error())
	}

	_, err = Run(func() (models.GroundPlaneResult, error) {
		return GroundPlane(models.GroundPlaneInput{})
	})
	if !IsValidation(err) {
		t.Errorf("Expected validation errors to pass through, got %v", err)
	}

	v, err := Run(func() (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Errorf("Expected 7, nil; got %v, %v", v, err)
	}
}

func TestMessages(t *testing.T) {
	err := &ValidationError{Messages: []string{"a", "b"}}
	if err.Error() != "a; b" {
		t.Errorf("Expected messages joined with '; ', got %q", err.Error())
	}
	if got := Messages(err); len(got) != 2 {
		t.Errorf("Expected 2 messages, got %v", got)
	}
	if got := Messages(errors.New("x")); len(got) != 1 || got[0] != "x" {
		t.Errorf("Expected plain error text, got %v", got)
	}
	if Messages(nil) != nil {
		t.Error("Expected nil messages for nil error")
	}
}
