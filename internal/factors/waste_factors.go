package factors

// WasteFactors maps waste type and treatment method to kg CO2e per metric
// ton of waste. Recycling entries are negative: they credit the avoided
// production of virgin material, so an end-of-life category total can
// legitimately go below zero. Landfill, incineration and composting entries
// are always non-negative.
var WasteFactors = map[string]map[Treatment]Factor{
	"plastics": {
		TreatmentIncineration: single("Plastics, incinerated", UnitTonne, 2700.0),
		TreatmentLandfill:     single("Plastics, landfilled", UnitTonne, 35.0), // inert in landfill
		TreatmentRecycling:    single("Plastics, recycled", UnitTonne, -1024.0),
	},
	"paper": {
		TreatmentIncineration: single("Paper, incinerated", UnitTonne, 21.0),
		TreatmentLandfill:     single("Paper, landfilled", UnitTonne, 1042.0), // methane from decomposition
		TreatmentRecycling:    single("Paper, recycled", UnitTonne, -459.0),
	},
	"metal": {
		TreatmentIncineration: single("Metal, incinerated", UnitTonne, 20.0),
		TreatmentLandfill:     single("Metal, landfilled", UnitTonne, 10.0),
		TreatmentRecycling:    single("Metal, recycled", UnitTonne, -5000.0), // avoided primary smelting
	},
	"glass": {
		TreatmentLandfill:  single("Glass, landfilled", UnitTonne, 9.0),
		TreatmentRecycling: single("Glass, recycled", UnitTonne, -314.0),
	},
	"wood": {
		TreatmentIncineration: single("Wood, incinerated", UnitTonne, 50.0),
		TreatmentLandfill:     single("Wood, landfilled", UnitTonne, 828.0),
		TreatmentRecycling:    single("Wood, recycled", UnitTonne, -444.0),
	},
	"food": {
		TreatmentLandfill:     single("Food waste, landfilled", UnitTonne, 587.0),
		TreatmentIncineration: single("Food waste, incinerated", UnitTonne, 78.0),
		TreatmentComposting:   single("Food waste, composted", UnitTonne, 10.0),
	},
	"mixed_municipal": {
		TreatmentLandfill:     single("Mixed municipal waste, landfilled", UnitTonne, 458.0),
		TreatmentIncineration: single("Mixed municipal waste, incinerated", UnitTonne, 700.0),
	},
}
