package factors

// FuelFactors maps stationary and mobile combustion fuels to kg CO2e per
// unit. Entries carry every unit the data-entry layer may declare for that
// fuel; energy-content units are derived from the volumetric value using the
// fuel's net calorific value, so any declared unit yields the same kg CO2e
// for the same physical quantity.
//
// Values combine CO2, CH4 and N2O as CO2e using 100-year GWPs.
var FuelFactors = map[string]Factor{
	"natural_gas": {
		Name: "Natural gas (city gas)",
		PerUnit: map[string]float64{
			UnitCubicMeter: 1.9019,              // kg CO2e per Nm3
			UnitMJ:         1.9019 / 39.0,       // NCV 39.0 MJ/Nm3
			UnitKWh:        1.9019 / 39.0 * 3.6, // 1 kWh = 3.6 MJ
		},
	},
	"lng": {
		Name: "Liquefied natural gas",
		PerUnit: map[string]float64{
			UnitKg:    2.744,          // kg CO2e per kg
			UnitTonne: 2744.0,         // per metric ton
			UnitMJ:    2.744 / 54.568, // NCV 54.568 MJ/kg
		},
	},
	"lpg": {
		Name: "Liquefied petroleum gas",
		PerUnit: map[string]float64{
			UnitKg:    2.985,  // kg CO2e per kg
			UnitLiter: 1.612,  // density 0.54 kg/l
			UnitTonne: 2985.0, // per metric ton
		},
	},
	"diesel": {
		Name: "Diesel oil",
		PerUnit: map[string]float64{
			UnitLiter: 2.676,   // kg CO2e per liter
			UnitKg:    3.186,   // density 0.84 kg/l
			UnitTonne: 3186.0,  // per metric ton
			UnitMJ:    0.07412, // NCV 36.1 MJ/l
		},
	},
	"gasoline": {
		Name: "Motor gasoline",
		PerUnit: map[string]float64{
			UnitLiter: 2.316,  // kg CO2e per liter
			UnitKg:    3.131,  // density 0.74 kg/l
			UnitTonne: 3131.0, // per metric ton
		},
	},
	"kerosene": {
		Name: "Kerosene",
		PerUnit: map[string]float64{
			UnitLiter: 2.521,  // kg CO2e per liter
			UnitKg:    3.150,  // density 0.80 kg/l
			UnitTonne: 3150.0, // per metric ton
		},
	},
	"heavy_fuel_oil": {
		Name: "Heavy fuel oil (bunker C)",
		PerUnit: map[string]float64{
			UnitLiter: 3.012,  // kg CO2e per liter
			UnitKg:    3.170,  // density 0.95 kg/l
			UnitTonne: 3170.0, // per metric ton
		},
	},
	"jet_kerosene": {
		Name: "Jet kerosene",
		PerUnit: map[string]float64{
			UnitLiter: 2.538, // kg CO2e per liter
			UnitKg:    3.173, // density 0.80 kg/l
		},
	},
	"anthracite_coal": {
		Name: "Anthracite coal",
		PerUnit: map[string]float64{
			UnitKg:    2.467,  // kg CO2e per kg
			UnitTonne: 2467.0, // per metric ton
		},
	},
	"bituminous_coal": {
		Name: "Bituminous coal",
		PerUnit: map[string]float64{
			UnitKg:    2.405,  // kg CO2e per kg
			UnitTonne: 2405.0, // per metric ton
		},
	},
	"propane": {
		Name: "Propane",
		PerUnit: map[string]float64{
			UnitKg:    2.997,  // kg CO2e per kg
			UnitTonne: 2997.0, // per metric ton
		},
	},
	"purchased_steam": {
		Name: "Purchased steam or heat",
		PerUnit: map[string]float64{
			UnitMJ:  0.0601,         // kg CO2e per MJ delivered
			UnitKWh: 0.0601 * 3.6,   // 1 kWh = 3.6 MJ
			UnitKg:  0.0601 * 2.775, // saturated steam enthalpy 2.775 MJ/kg
		},
	},
}
