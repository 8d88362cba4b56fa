package factors

// EEIOFactors maps spend sectors to economic input-output emission factors
// in kg CO2e per currency unit spent. The KRW entries are derived from the
// USD intensities at 1,300 KRW per USD, so the same spend expressed in
// either currency yields the same kg CO2e.
var EEIOFactors = map[string]Factor{
	"food_beverage":         eeio("Food and beverage products", 0.48),
	"chemicals":             eeio("Chemical products", 0.62),
	"machinery":             eeio("Machinery and equipment", 0.27),
	"electronics":           eeio("Electronic components", 0.24),
	"construction":          eeio("Construction services", 0.41),
	"transport_services":    eeio("Transportation services", 0.71),
	"professional_services": eeio("Professional and business services", 0.08),
	"textiles":              eeio("Textiles and apparel", 0.55),
	"metals_fabricated":     eeio("Fabricated metal products", 0.53),
	"it_services":           eeio("Information technology services", 0.06),
	"accommodation":         eeio("Accommodation and food services", 0.21),
}

const krwPerUSD = 1300.0

func eeio(name string, perUSD float64) Factor {
	return Factor{
		Name: name,
		PerUnit: map[string]float64{
			UnitUSD:        perUSD,
			UnitKRWMillion: perUSD * 1_000_000 / krwPerUSD,
		},
	}
}

// InvestmentSectorFactors maps investee sectors to average economic
// intensity in kg CO2e per currency unit of investment, for the Scope 3
// category 15 average-data method.
var InvestmentSectorFactors = map[string]Factor{
	"utilities":     invest("Electric and gas utilities", 0.58),
	"manufacturing": invest("Manufacturing", 0.31),
	"materials":     invest("Basic materials and mining", 0.47),
	"real_estate":   invest("Real estate", 0.09),
	"technology":    invest("Technology", 0.05),
	"financials":    invest("Financial services", 0.02),
	"transport":     invest("Transportation", 0.44),
}

func invest(name string, perUSD float64) Factor {
	return Factor{
		Name: name,
		PerUnit: map[string]float64{
			UnitUSD:        perUSD,
			UnitKRWMillion: perUSD * 1_000_000 / krwPerUSD,
		},
	}
}
