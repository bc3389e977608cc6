package coax

import "antennacalc/internal/models"

// Group keys used by the built-in catalog.
const (
	GroupConnectors  = "Connectors"
	GroupAttenuators = "Attenuators"
)

func table(points ...float64) models.LossTable {
	t := make(models.LossTable, 0, len(points)/2)
	for i := 0; i+1 < len(points); i += 2 {
		t = append(t, models.LossPoint{FrequencyMHz: points[i], Loss: points[i+1]})
	}
	return t
}

func connector(title string, losses models.LossTable) models.Component {
	return models.Component{
		Type: models.ComponentConnector, Group: GroupConnectors, Title: title,
		Manufacturer: "Generic", ImpedanceOhm: 50, Losses: losses,
	}
}

func cable(group, title, manufacturer string, conductor models.Conductor, losses models.LossTable) models.Component {
	return models.Component{
		Type: models.ComponentCable, Group: group, Title: title,
		Manufacturer: manufacturer, ImpedanceOhm: 50, Conductor: conductor, Losses: losses,
	}
}

func attenuator(title string, db float64) models.Component {
	return models.Component{
		Type: models.ComponentAttenuator, Group: GroupAttenuators, Title: title,
		Manufacturer: "Generic", ImpedanceOhm: 50, Losses: table(10000, db),
	}
}

const (
	solid    = models.ConductorSolid
	stranded = models.ConductorStranded
)

// builtin lists the stock components in selector order. Cable losses are
// dB per 100 m, connector and attenuator losses dB per piece.
var builtin = []models.Component{
	connector("PL-259 / SO-239", table(500, 0.15)),
	connector("BNC", table(3000, 0.2)),
	connector("N Type", table(10000, 0.15)),
	connector("SMA", table(12400, 0.04)),

	cable("RG-58", "RG-58", "Generic", stranded, table(100, 14.8, 200, 22.3, 400, 32.8, 700, 48.9, 900, 52.8)),
	cable("RG-58", "TAS-RG58CU", "Tasker", stranded, table(50, 9.7, 100, 13.9, 200, 20.4, 400, 30, 800, 45.1, 1000, 51.8)),
	cable("RG-58", "RG-58 C/U (4930)", "Odeskabel", stranded, table(10, 5, 100, 17.9, 1000, 75.1)),
	cable("RG-58", "RG-58TS90", "FinMark", stranded, table(1, 1.4, 10, 4.9, 50, 10.8, 100, 16.1, 200, 23.9, 400, 37.7, 700, 55.1, 1000, 66.2)),
	cable("RG-58", "RG-58U", "Eurosat", solid, table(150, 13.4, 450, 24.1, 800, 32.7, 900, 34.8, 1200, 40.6, 1800, 51.1, 1900, 52.6, 2450, 60.4)),

	cable("3D-FB", "3D-FB", "HONGSEN CABLE", solid, table(100, 10.4, 150, 13, 280, 17.5, 350, 19.5, 400, 21.5, 800, 30.5, 900, 31.8, 1200, 37.2, 1500, 41.5, 1800, 45.6, 1900, 46.8, 2000, 48.2, 2200, 50.6, 2500, 54)),

	cable("RK 50", "RK 50-3 (4693)", "Odeskabel", solid, table(200, 15.3, 1000, 33.5)),
	cable("RK 50", "RK 50-4,8-a90P (4622)", "Odeskabel", solid, table(200, 9.4, 1000, 24)),
	cable("RK 50", "RK 50-7-11 OKZ (4178)", "Odeskabel", solid, table(200, 14, 1000, 32.5)),
	cable("RK 50", "RK 50-7,2-a90P (4977)", "Odeskabel", solid, table(10, 1.5, 100, 4.5, 1000, 14.5, 2000, 20.5, 3000, 25.5)),

	cable("RG-8", "RG-8", "Pasternack", stranded, table(1, 0.66, 10, 1.97, 50, 4.27, 400, 13.45, 700, 21.33, 900, 24.93, 1000, 26.25)),
	cable("RG-8", "RG-8-49P (4932)", "Odeskabel", solid, table(10, 1.3, 100, 4.1, 1000, 15, 2000, 22.9, 3000, 29.7)),

	cable("LMR-400", "LMR-400", "Times Microwave", solid, table(30, 2.2, 50, 2.9, 150, 5, 220, 6.1, 450, 8.9, 900, 12.8, 1500, 16.8, 1800, 18.6, 2000, 19.6, 2500, 22.2, 5800, 35.5, 8000, 42.7)),
	cable("LMR-400", "LMR-400", "ProSoft", solid, table(900, 12.8, 2500, 22.2, 5800, 35.5)),

	cable("RG-213", "RG-213/U (4932)", "Odeskabel", stranded, table(200, 14, 1000, 32.5)),

	cable("RG-174", "RG-174", "Generic", stranded, table(100, 27.6, 200, 41, 400, 62.3, 700, 88.6, 900, 101.8)),
	cable("RG-174", "RG-174 (8819034)", "Odeskabel", stranded, table(50, 18.3, 150, 29.8)),
	cable("RG-174", "RG174A/U", "Pasternack", stranded, table(100, 27.56, 400, 62.34, 1000, 104.99)),

	cable("RG-178", "RG-178", "Generic", stranded, table(100, 52.49, 400, 108.27, 1000, 170.61)),

	attenuator("0.5 dB", 0.5),
	attenuator("0.8 dB", 0.8),
	attenuator("1 dB", 1),
	attenuator("2 dB", 2),
	attenuator("3 dB", 3),
	attenuator("5 dB", 5),
}
