package factors

// TransportFactors maps freight mode and vehicle to kg CO2e per
// tonne-kilometer. Used by upstream and downstream transportation and by the
// optional transport leg of waste disposal.
var TransportFactors = map[string]map[string]Factor{
	"road": {
		"truck_small":  single("Rigid truck <7.5t", UnitTonneKm, 0.2970),
		"truck_medium": single("Rigid truck 7.5-17t", UnitTonneKm, 0.1760),
		"truck_heavy":  single("Articulated truck >33t", UnitTonneKm, 0.0795),
		"van":          single("Delivery van <3.5t", UnitTonneKm, 0.5800),
	},
	"rail": {
		"freight_train": single("Freight train, diesel", UnitTonneKm, 0.0280),
	},
	"sea": {
		"container_ship": single("Container ship", UnitTonneKm, 0.0160),
		"bulk_carrier":   single("Bulk carrier", UnitTonneKm, 0.0080),
		"ro_ro_ferry":    single("Ro-ro ferry", UnitTonneKm, 0.0510),
	},
	"air": {
		"cargo_aircraft": single("Dedicated cargo aircraft", UnitTonneKm, 1.1300),
		"belly_freight":  single("Belly freight, long haul", UnitTonneKm, 0.6020),
	},
}

// TravelFactors maps passenger travel modes (with cabin class for air) to
// kg CO2e per passenger-kilometer. Used by business travel and employee
// commuting activity methods.
var TravelFactors = map[string]Factor{
	"air_short_economy":  single("Air, short haul, economy", UnitPassengerKm, 0.1519),
	"air_short_business": single("Air, short haul, business", UnitPassengerKm, 0.2279),
	"air_long_economy":   single("Air, long haul, economy", UnitPassengerKm, 0.1478),
	"air_long_business":  single("Air, long haul, business", UnitPassengerKm, 0.4287),
	"air_long_first":     single("Air, long haul, first", UnitPassengerKm, 0.5913),
	"rail_intercity":     single("Intercity rail", UnitPassengerKm, 0.0410),
	"subway":             single("Subway / metro", UnitPassengerKm, 0.0330),
	"bus_city":           single("City bus", UnitPassengerKm, 0.1050),
	"bus_coach":          single("Long-distance coach", UnitPassengerKm, 0.0270),
	"car_compact":        single("Passenger car, compact", UnitPassengerKm, 0.1420),
	"car_midsize":        single("Passenger car, midsize", UnitPassengerKm, 0.1920),
	"car_suv":            single("Passenger car, SUV", UnitPassengerKm, 0.2510),
	"motorcycle":         single("Motorcycle", UnitPassengerKm, 0.1140),
	"taxi":               single("Taxi", UnitPassengerKm, 0.2110),
}
