package factors

// FugitiveGWP maps refrigerant and industrial gases to their 100-year global
// warming potential, expressed as kg CO2e per kg of gas released. GWP values
// follow IPCC AR5.
var FugitiveGWP = map[string]Factor{
	"co2":      single("Carbon dioxide", UnitKg, 1.0),
	"ch4":      single("Methane", UnitKg, 28.0),
	"n2o":      single("Nitrous oxide", UnitKg, 265.0),
	"hfc_134a": single("HFC-134a", UnitKg, 1300.0),
	"hfc_125":  single("HFC-125", UnitKg, 3170.0),
	"r_410a":   single("R-410A blend", UnitKg, 1924.0),
	"r_404a":   single("R-404A blend", UnitKg, 3943.0),
	"r_22":     single("HCFC-22", UnitKg, 1760.0),
	"sf6":      single("Sulfur hexafluoride", UnitKg, 23500.0),
	"nf3":      single("Nitrogen trifluoride", UnitKg, 16100.0),
}

// ProcessFactors maps industrial process types to kg CO2e per metric ton of
// material processed. Covers process emissions distinct from fuel combustion,
// used by direct process sources and by processing of sold intermediates.
var ProcessFactors = map[string]Factor{
	"cement_clinker": single("Cement clinker calcination", UnitTonne, 510.0),
	"lime":           single("Lime production", UnitTonne, 751.0),
	"glass_melting":  single("Glass melting", UnitTonne, 201.0),
	"ammonia":        single("Ammonia synthesis", UnitTonne, 1694.0),
	"steel_bof":      single("Steel, basic oxygen furnace", UnitTonne, 1328.0),
	"steel_eaf":      single("Steel, electric arc furnace", UnitTonne, 83.0),
	"aluminum_smelt": single("Primary aluminum smelting", UnitTonne, 1514.0),
	"nitric_acid":    single("Nitric acid production", UnitTonne, 297.0),
	"petro_cracking": single("Petrochemical steam cracking", UnitTonne, 985.0),
	"semiconductor":  single("Semiconductor wafer processing", UnitTonne, 4120.0),
}
