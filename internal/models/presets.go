package models

// Preset is a named frequency offered next to a frequency input
type Preset struct {
	FrequencyMHz float64 `json:"frequency_mhz"`
	Label        string  `json:"label"`
}

// StandardPresets are offered by the Yagi calculator
var StandardPresets = []Preset{
	{144, "144 MHz (2 m)"},
	{433.9, "433.9 MHz (LPD)"},
	{446, "446 MHz (PMR)"},
	{462.64, "462.64 MHz (GMRS)"},
	{465.135, "465.135 MHz (FRS)"},
	{925, "925 MHz (GSM 900)"},
}

// KharchenkoPresets cover the 400-3000 MHz range of the BiQuad calculator
var KharchenkoPresets = []Preset{
	{433.9, "433.9 MHz (LPD)"},
	{446, "446 MHz (PMR)"},
	{462.64, "462.64 MHz (GMRS)"},
	{465.135, "465.135 MHz (FRS)"},
	{811, "811 MHz (LTE 800, band 20)"},
	{925, "925 MHz (GSM 900)"},
	{1795, "1795 MHz (LTE 1800, band 3)"},
	{2045, "2045 MHz (LTE 2100, band 1)"},
	{2350, "2350 MHz (LTE 2300, band 40)"},
	{2445, "2445 MHz (Wi-Fi 2400)"},
	{2600, "2600 MHz (LTE 2600, band 7)"},
}

// JPolePresets are offered by the J-pole calculator
var JPolePresets = []Preset{
	{145, "145 MHz (2 m)"},
	{435, "435 MHz (70 cm)"},
	{433.9, "433.9 MHz (LPD)"},
	{446, "446 MHz (PMR)"},
	{462.64, "462.64 MHz (GMRS)"},
	{465.135, "465.135 MHz (FRS)"},
}

// PresetsFor returns the presets shown for a calculator, nil when it has none
func PresetsFor(k Kind) []Preset {
	switch k {
	case KindYagi, KindFlowerPot, KindGroundPlane:
		return StandardPresets
	case KindKharchenko:
		return KharchenkoPresets
	case KindJPole:
		return JPolePresets
	}
	return nil
}
