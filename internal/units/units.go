// Package units converts and formats lengths for calculator output.
package units

import (
	"strconv"
	"strings"
)

// Unit is an output length unit.
type Unit string

const (
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Meter      Unit = "m"
)

// Default is used whenever a unit string is not recognised.
const Default = Millimeter

// DefaultPrecision is the number of decimals used for centimetres.
const DefaultPrecision = 2

// All lists the supported units in selector order.
var All = []Unit{Millimeter, Centimeter, Meter}

// Parse maps a unit name to a Unit, falling back to Default.
func Parse(s string) Unit {
	return ParseOr(s, Default)
}

// ParseOr maps a unit name to a Unit, falling back to fallback.
func ParseOr(s string, fallback Unit) Unit {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case Millimeter:
		return Millimeter
	case Centimeter:
		return Centimeter
	case Meter:
		return Meter
	}
	return fallback
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	return u == Millimeter || u == Centimeter || u == Meter
}

// Label returns the localized suffix shown next to values.
func (u Unit) Label() string {
	switch u {
	case Meter:
		return "м"
	case Centimeter:
		return "см"
	default:
		return "мм"
	}
}

// Name returns the English unit name.
func (u Unit) Name() string {
	switch u {
	case Meter:
		return "m"
	case Centimeter:
		return "cm"
	default:
		return "mm"
	}
}

// FromMM converts a millimetre value into u.
func FromMM(valueMM float64, u Unit) float64 {
	switch u {
	case Meter:
		return valueMM / 1000
	case Centimeter:
		return valueMM / 10
	default:
		return valueMM
	}
}

// FromCM converts a centimetre value into u.
func FromCM(valueCM float64, u Unit) float64 {
	return FromMM(valueCM*10, u)
}

// ToMM converts a value expressed in u back to millimetres.
func ToMM(value float64, u Unit) float64 {
	switch u {
	case Meter:
		return value * 1000
	case Centimeter:
		return value * 10
	default:
		return value
	}
}

// FormatLength renders a millimetre value in u: one decimal for mm,
// precision decimals for cm and four for m.
func FormatLength(valueMM float64, u Unit, precision int) string {
	switch u {
	case Meter:
		return fixed(valueMM/1000, 4)
	case Centimeter:
		return fixed(valueMM/10, precision)
	default:
		return fixed(valueMM, 1)
	}
}

// Format is FormatLength with the default centimetre precision.
func Format(valueMM float64, u Unit) string {
	return FormatLength(valueMM, u, DefaultPrecision)
}

// FormatFromCm renders a centimetre value in u (mm 1, cm 2, m 4 decimals).
func FormatFromCm(valueCM float64, u Unit) string {
	switch u {
	case Meter:
		return fixed(valueCM/100, 4)
	case Millimeter:
		return fixed(valueCM*10, 1)
	default:
		return fixed(valueCM, 2)
	}
}

// WithLabel renders a millimetre value followed by its unit label.
func WithLabel(valueMM float64, u Unit) string {
	return Format(valueMM, u) + " " + u.Label()
}

// Round rounds v to the given number of decimals.
func Round(v float64, decimals int) float64 {
	r, err := strconv.ParseFloat(fixed(v, decimals), 64)
	if err != nil {
		return v
	}
	return r
}

func fixed(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
