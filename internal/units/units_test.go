package units

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Unit
	}{
		{"mm", Millimeter},
		{"CM", Centimeter},
		{" m ", Meter},
		{"", Millimeter},
		{"inch", Millimeter},
	}

	for _, tt := range tests {
		if got := Parse(tt.input); got != tt.expected {
			t.Errorf("Parse(%q) = %s, expected %s", tt.input, got, tt.expected)
		}
	}

	if got := ParseOr("furlong", Centimeter); got != Centimeter {
		t.Errorf("Expected fallback unit cm, got %s", got)
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		name      string
		valueMM   float64
		unit      Unit
		precision int
		expected  string
	}{
		{"millimetres one decimal", 1040.06, Millimeter, 2, "1040.1"},
		{"centimetres default precision", 1040.06, Centimeter, 2, "104.01"},
		{"centimetres custom precision", 1040.06, Centimeter, 1, "104.0"},
		{"metres four decimals", 1040.06, Meter, 2, "1.0401"},
		{"unknown unit behaves as mm", 12.34, Unit("ft"), 2, "12.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLength(tt.valueMM, tt.unit, tt.precision); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestFormatFromCm(t *testing.T) {
	tests := []struct {
		valueCM  float64
		unit     Unit
		expected string
	}{
		{51.72, Centimeter, "51.72"},
		{51.72, Millimeter, "517.2"},
		{51.72, Meter, "0.5172"},
	}

	for _, tt := range tests {
		if got := FormatFromCm(tt.valueCM, tt.unit); got != tt.expected {
			t.Errorf("FormatFromCm(%v, %s) = %s, expected %s", tt.valueCM, tt.unit, got, tt.expected)
		}
	}
}

func TestLabel(t *testing.T) {
	expected := map[Unit]string{
		Millimeter: "мм",
		Centimeter: "см",
		Meter:      "м",
		Unit("x"):  "мм",
	}
	for u, want := range expected {
		if got := u.Label(); got != want {
			t.Errorf("Label(%s) = %s, expected %s", u, got, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	values := []float64{0.5, 12.25, 1040.06, 2081.89}

	for _, u := range All {
		for _, v := range values {
			back := ToMM(FromMM(v, u), u)
			if math.Abs(back-v) > 1e-9 {
				t.Errorf("Round trip through %s changed %v to %v", u, v, back)
			}
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(2.345678, 2); got != 2.35 {
		t.Errorf("Expected 2.35, got %v", got)
	}
	if got := Round(10.04, 1); got != 10.0 {
		t.Errorf("Expected 10.0, got %v", got)
	}
}
