package factors

// GridFactors maps region codes to electricity grid emission factors in
// kg CO2e per kWh. These are national or balancing-authority annual average
// factors used for Scope 2 location-based accounting; the market-based
// residual mix is derived from the same factor with a policy discount.
//
// There is deliberately no default entry: an unknown region is a lookup
// failure, never a silently substituted global average.
var GridFactors = map[string]Factor{
	"KR": single("South Korea", UnitKWh, 0.4541),
	"JP": single("Japan", UnitKWh, 0.4057),
	"CN": single("China", UnitKWh, 0.5703),
	"US": single("United States (average)", UnitKWh, 0.3712),
	"CA": single("Canada", UnitKWh, 0.1200),
	"DE": single("Germany", UnitKWh, 0.3659),
	"FR": single("France", UnitKWh, 0.0521), // nuclear-heavy grid
	"GB": single("United Kingdom", UnitKWh, 0.1933),
	"SE": single("Sweden", UnitKWh, 0.0088), // hydro and nuclear
	"IN": single("India", UnitKWh, 0.7132),  // coal-heavy grid
	"AU": single("Australia", UnitKWh, 0.6560),
	"SG": single("Singapore", UnitKWh, 0.4080),
	"VN": single("Vietnam", UnitKWh, 0.5764),
	"ID": single("Indonesia", UnitKWh, 0.7620),
	"BR": single("Brazil", UnitKWh, 0.0740), // hydro-heavy grid
	"MX": single("Mexico", UnitKWh, 0.4310),
}
