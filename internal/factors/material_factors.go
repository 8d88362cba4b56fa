package factors

// MaterialFactors maps purchased material types to cradle-to-gate kg CO2e
// per unit. Used by the activity method of purchased goods, capital goods
// and fuel-and-energy-related categories.
var MaterialFactors = map[string]Factor{
	"steel": {
		Name: "Steel, market average",
		PerUnit: map[string]float64{
			UnitKg:    1.85,
			UnitTonne: 1850.0,
		},
	},
	"aluminum": {
		Name: "Aluminum, market average",
		PerUnit: map[string]float64{
			UnitKg:    11.50,
			UnitTonne: 11500.0,
		},
	},
	"cement": {
		Name: "Cement",
		PerUnit: map[string]float64{
			UnitKg:    0.93,
			UnitTonne: 930.0,
		},
	},
	"concrete": {
		Name: "Ready-mix concrete",
		PerUnit: map[string]float64{
			UnitKg:    0.13,
			UnitTonne: 130.0,
		},
	},
	"paper_virgin": {
		Name: "Paper, virgin fiber",
		PerUnit: map[string]float64{
			UnitKg:    0.94,
			UnitTonne: 940.0,
		},
	},
	"plastic_resin": {
		Name: "Plastic resin, market average",
		PerUnit: map[string]float64{
			UnitKg:    2.53,
			UnitTonne: 2530.0,
		},
	},
	"glass_container": {
		Name: "Container glass",
		PerUnit: map[string]float64{
			UnitKg:    0.85,
			UnitTonne: 850.0,
		},
	},
	"copper": {
		Name: "Copper, refined",
		PerUnit: map[string]float64{
			UnitKg:    4.10,
			UnitTonne: 4100.0,
		},
	},
	"textile_cotton": {
		Name: "Cotton textile",
		PerUnit: map[string]float64{
			UnitKg:    8.30,
			UnitTonne: 8300.0,
		},
	},
}
