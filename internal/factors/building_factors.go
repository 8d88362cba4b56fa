package factors

// BuildingIntensity maps building and franchise types to annual energy use
// intensity in kWh per square meter per year. The area-based formula
// multiplies this by floor area, the regional grid factor and the lease
// fraction of the year.
var BuildingIntensity = map[string]Factor{
	"office":            single("Office", UnitKWhSqmYear, 123.0),
	"retail":            single("Retail", UnitKWhSqmYear, 210.0),
	"warehouse":         single("Warehouse, unconditioned", UnitKWhSqmYear, 87.0),
	"warehouse_cold":    single("Warehouse, cold storage", UnitKWhSqmYear, 312.0),
	"restaurant":        single("Restaurant", UnitKWhSqmYear, 368.0),
	"hotel":             single("Hotel", UnitKWhSqmYear, 241.0),
	"hospital":          single("Hospital", UnitKWhSqmYear, 430.0),
	"data_center":       single("Data center", UnitKWhSqmYear, 1840.0),
	"convenience_store": single("Convenience store", UnitKWhSqmYear, 585.0), // refrigeration-heavy
	"fast_food":         single("Fast food outlet", UnitKWhSqmYear, 510.0),
	"cafe":              single("Cafe", UnitKWhSqmYear, 295.0),
}

// FranchiseAverages maps franchise types to average annual emissions per
// site in kg CO2e, for the franchises category's average-data method where
// only a site count is known.
var FranchiseAverages = map[string]Factor{
	"convenience_store": single("Convenience store", UnitSiteYear, 45200.0),
	"fast_food":         single("Fast food outlet", UnitSiteYear, 61800.0),
	"cafe":              single("Cafe", UnitSiteYear, 27300.0),
	"retail_small":      single("Small retail shop", UnitSiteYear, 18900.0),
	"restaurant":        single("Full-service restaurant", UnitSiteYear, 72400.0),
	"fitness":           single("Fitness studio", UnitSiteYear, 88100.0),
}
