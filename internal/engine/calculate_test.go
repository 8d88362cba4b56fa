package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonscope/carbonscope/internal/factors"
)

func ptr(v float64) *float64 { return &v }

func monthly(total float64) Months {
	// Spread an annual total evenly; the engine only reads the sum.
	var m Months
	for i := range m {
		m[i] = total / 12
	}
	return m
}

func TestCalculate_StationaryCombustion(t *testing.T) {
	t.Parallel()

	// 1000 m3 natural gas at 1.9019 kg/m3.
	res := Calculate(Source{
		ID:       "src-1",
		Category: CategoryScope1,
		Activity: &FuelCombustion{
			FuelType: "natural_gas",
			Unit:     factors.UnitCubicMeter,
			Monthly:  monthly(1000),
		},
	})

	assert.InDelta(t, 1901.9, res.Scope1, 1e-9)
	assert.Zero(t, res.Scope2Location)
	assert.Zero(t, res.Scope2Market)
	assert.Zero(t, res.Scope3)
	assert.Empty(t, res.Warnings)
}

func TestCalculate_WasteIncineration(t *testing.T) {
	t.Parallel()

	// 2 tons of plastics incinerated at 2700 kg/t.
	res := Calculate(Source{
		Category: CategoryWasteOperations,
		Activity: &WasteTreatmentSingle{
			WasteType: "plastics",
			Treatment: factors.TreatmentIncineration,
			Monthly:   monthly(2),
		},
	})

	assert.InDelta(t, 5400.0, res.Scope3, 1e-9)
	assert.Zero(t, res.Scope1)
}

func TestCalculate_RecyclingCredit(t *testing.T) {
	t.Parallel()

	// 3 tons of metal recycled at -5000 kg/t drives Scope 3 negative.
	res := Calculate(Source{
		Category: CategoryWasteOperations,
		Activity: &WasteTreatmentSingle{
			WasteType: "metal",
			Treatment: factors.TreatmentRecycling,
			Monthly:   monthly(3),
		},
	})

	assert.InDelta(t, -15000.0, res.Scope3, 1e-9)
}

func TestCalculate_PCAFAttribution(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryInvestments,
		Activity: &InvestmentSpecific{
			InvesteeEmissionsKg: 100_000,
			InvestmentValue:     2_000_000,
			CompanyValue:        10_000_000,
		},
	})

	// 20% financing share of the investee's emissions.
	assert.InDelta(t, 20_000.0, res.Scope3, 1e-9)
}

func TestCalculate_PCAFZeroCompanyValue(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryInvestments,
		Activity: &InvestmentSpecific{
			InvesteeEmissionsKg: 100_000,
			InvestmentValue:     2_000_000,
			CompanyValue:        0,
		},
	})

	// Attribution factor is zero, never Inf.
	assert.Zero(t, res.Scope3)
	assert.False(t, math.IsInf(res.Scope3, 0))
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarnInvalidNumeric, res.Warnings[0].Kind)
}

func TestCalculate_Idempotent(t *testing.T) {
	t.Parallel()

	src := Source{
		Category: CategoryUpstreamTransport,
		Activity: &FreightLeg{
			Mode:         "road",
			Vehicle:      "truck_heavy",
			DistanceKm:   420,
			WeightTonnes: 18,
			Adjustments:  Adjustments{Refrigerated: true, LoadFactorPct: ptr(75)},
		},
	}

	first := Calculate(src)
	second := Calculate(src)
	assert.Equal(t, first, second)
}

func TestCalculate_MonotonicInQuantity(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(nil, DefaultPolicy())
	prev := math.Inf(-1)
	for _, qty := range []float64{0, 1, 10, 500, 10_000} {
		res := calc.Calculate(Source{
			Category: CategoryScope1,
			Activity: &FuelCombustion{FuelType: "diesel", Unit: factors.UnitLiter, Monthly: monthly(qty)},
		})
		assert.GreaterOrEqual(t, res.Scope1, prev, "quantity %v", qty)
		prev = res.Scope1
	}
}

func TestCalculate_NaNCoercedToZero(t *testing.T) {
	t.Parallel()

	var m Months
	m[0] = math.NaN()
	m[1] = math.Inf(1)
	m[2] = -50 // negative quantities are disallowed
	m[3] = 100

	res := Calculate(Source{
		Category: CategoryScope1,
		Activity: &FuelCombustion{FuelType: "natural_gas", Unit: factors.UnitCubicMeter, Monthly: m},
	})

	// Only the valid 100 m3 contributes; nothing non-finite escapes.
	assert.InDelta(t, 190.19, res.Scope1, 1e-9)
	assert.False(t, math.IsNaN(res.Scope1))
}

func TestCalculate_UnknownFactorDegradesToZero(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		ID:       "src-9",
		Category: CategoryScope1,
		Activity: &FuelCombustion{FuelType: "whale_oil", Unit: factors.UnitLiter, Monthly: monthly(100)},
	})

	assert.Zero(t, res.Scope1)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarnMissingFactor, res.Warnings[0].Kind)
	assert.Equal(t, "fuel", res.Warnings[0].Table)
	assert.Equal(t, "whale_oil", res.Warnings[0].Key)
}

func TestCalculate_UnitMismatchIsRowFatal(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryScope1,
		Activity: &FuelCombustion{FuelType: "natural_gas", Unit: factors.UnitLiter, Monthly: monthly(100)},
	})

	assert.Zero(t, res.Scope1)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarnUnitMismatch, res.Warnings[0].Kind)
}

func TestCalculate_MethodMismatch(t *testing.T) {
	t.Parallel()

	// A freight leg is not a valid method for the Scope 1 category.
	res := Calculate(Source{
		Category: CategoryScope1,
		Activity: &FreightLeg{Mode: "road", Vehicle: "van", DistanceKm: 10, WeightTonnes: 1},
	})

	assert.Zero(t, res.Scope1)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarnMethodMismatch, res.Warnings[0].Kind)
}

func TestCalculate_SpendMethod(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryPurchasedGoods,
		Activity: &Spend{Sector: "chemicals", Currency: factors.UnitUSD, Monthly: monthly(120_000)},
	})

	assert.InDelta(t, 120_000*0.62, res.Scope3, 1e-6)
}

func TestCalculate_SpendMethodAllScopes(t *testing.T) {
	t.Parallel()

	spend := func() *Spend {
		return &Spend{Sector: "chemicals", Currency: factors.UnitUSD, Monthly: monthly(10_000)}
	}
	want := 10_000 * 0.62

	res := Calculate(Source{Category: CategoryScope1, Activity: spend()})
	assert.InDelta(t, want, res.Scope1, 1e-6)
	assert.Empty(t, res.Warnings)

	// A Scope 2 spend estimate bypasses the grid path and lands in both
	// accounting views.
	res = Calculate(Source{Category: CategoryScope2, Activity: spend()})
	assert.InDelta(t, want, res.Scope2Location, 1e-6)
	assert.InDelta(t, want, res.Scope2Market, 1e-6)
	assert.Empty(t, res.Warnings)
}

func TestCalculate_SupplierSpecificPassThrough(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryPurchasedGoods,
		Activity: &SupplierSpecific{CO2eKg: 4321.5},
	})
	assert.InDelta(t, 4321.5, res.Scope3, 1e-9)

	// For the Scope 2 category the figure applies to both accounting views.
	res = Calculate(Source{
		Category: CategoryScope2,
		Activity: &SupplierSpecific{CO2eKg: 900},
	})
	assert.InDelta(t, 900.0, res.Scope2Location, 1e-9)
	assert.InDelta(t, 900.0, res.Scope2Market, 1e-9)
	assert.Zero(t, res.Scope3)
}

func TestCalculate_FugitiveRelease(t *testing.T) {
	t.Parallel()

	var m Months
	m[5] = 12 // kg of refrigerant lost in June

	res := Calculate(Source{
		Category: CategoryScope1,
		Activity: &FugitiveRelease{Gas: "r_410a", Monthly: m},
	})

	assert.InDelta(t, 12*1924.0, res.Scope1, 1e-9)
}

func TestCalculate_BusinessTravel(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryBusinessTravel,
		Activity: &DirectActivity{
			SubType: "air_long_business",
			Unit:    factors.UnitPassengerKm,
			Monthly: monthly(24_000),
		},
	})

	assert.InDelta(t, 24_000*0.4287, res.Scope3, 1e-6)
}

func TestCalculate_CommutingWithCarpoolAndTelework(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryCommuting,
		Activity: &DirectActivity{
			SubType: "car_midsize",
			Unit:    factors.UnitPassengerKm,
			Monthly: monthly(10_000),
			Adjustments: Adjustments{
				CarpoolOccupancy: ptr(2),
				TeleworkPct:      ptr(20),
			},
		},
	})

	// 10000 km x 0.192, halved for two occupants, minus the 20% teleworked.
	assert.InDelta(t, 10_000*0.192/2*0.8, res.Scope3, 1e-6)
}

func TestCalculate_WasteBlend(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryEndOfLife,
		Activity: &WasteTreatmentBlend{
			WasteType: "paper",
			Monthly:   monthly(10),
			Ratios: []DisposalRatio{
				{Treatment: factors.TreatmentLandfill, Ratio: 0.5},
				{Treatment: factors.TreatmentRecycling, Ratio: 0.3},
				{Treatment: factors.TreatmentIncineration, Ratio: 0.2},
			},
		},
	})

	want := 10 * (0.5*1042.0 + 0.3*-459.0 + 0.2*21.0)
	assert.InDelta(t, want, res.Scope3, 1e-6)
	assert.Empty(t, res.Warnings)
}

func TestCalculate_WasteBlendOverOneFlagged(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryEndOfLife,
		Activity: &WasteTreatmentBlend{
			WasteType: "paper",
			Monthly:   monthly(10),
			Ratios: []DisposalRatio{
				{Treatment: factors.TreatmentLandfill, Ratio: 0.8},
				{Treatment: factors.TreatmentIncineration, Ratio: 0.6},
			},
		},
	})

	// Computed as supplied, but flagged.
	want := 10 * (0.8*1042.0 + 0.6*21.0)
	assert.InDelta(t, want, res.Scope3, 1e-6)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarnInvalidNumeric, res.Warnings[0].Kind)
}

func TestCalculate_WasteBlendSingleRatioOverOne(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryEndOfLife,
		Activity: &WasteTreatmentBlend{
			WasteType: "paper",
			Monthly:   monthly(10),
			Ratios: []DisposalRatio{
				{Treatment: factors.TreatmentLandfill, Ratio: 1.5},
			},
		},
	})

	// A lone over-one ratio gets the same treatment as an over-one sum:
	// computed as supplied, flagged, never clamped.
	want := 10 * 1.5 * 1042.0
	assert.InDelta(t, want, res.Scope3, 1e-6)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarnInvalidNumeric, res.Warnings[0].Kind)
}

func TestCalculate_WasteWithTransportLeg(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryWasteOperations,
		Activity: &WasteTreatmentSingle{
			WasteType: "food",
			Treatment: factors.TreatmentComposting,
			Monthly:   monthly(6),
			Transport: &WasteTransport{Mode: "road", Vehicle: "truck_small", DistanceKm: 35},
		},
	})

	// Treatment plus a collection leg at the full waste weight, added, not blended.
	want := 6*10.0 + 35*6*0.2970
	assert.InDelta(t, want, res.Scope3, 1e-6)
}

func TestCalculate_LeasedAreaProration(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryUpstreamLeased,
		Activity: &LeasedArea{
			BuildingType: "office",
			AreaSqm:      2_000,
			GridRegion:   "KR",
			LeaseMonths:  6,
		},
	})

	// Half a year of office intensity at the Korean grid factor.
	want := 2_000 * 123.0 * 0.4541 * 0.5
	assert.InDelta(t, want, res.Scope3, 1e-6)
}

func TestCalculate_LeasedAreaDefaultsToFullYear(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryDownstreamLeased,
		Activity: &LeasedArea{BuildingType: "warehouse", AreaSqm: 500, GridRegion: "DE"},
	})

	assert.InDelta(t, 500*87.0*0.3659, res.Scope3, 1e-6)
}

func TestCalculate_FranchiseAverageData(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryFranchises,
		Activity: &FranchiseAverage{FranchiseType: "cafe", Count: 14},
	})

	assert.InDelta(t, 14*27300.0, res.Scope3, 1e-6)
}

func TestCalculate_UseOfSoldProducts(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryUseOfSold,
		Activity: &SoldProductUse{
			UnitsSold:         50_000,
			LifetimeYears:     8,
			AnnualConsumption: 120, // kWh per unit per year
			GridRegion:        "KR",
		},
	})

	assert.InDelta(t, 50_000*8*120*0.4541, res.Scope3, 1e-3)
}

func TestCalculate_ProcessingOfSoldProducts(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryProcessingSold,
		Activity: &Processing{ProcessType: "steel_eaf", Unit: factors.UnitTonne, Monthly: monthly(1_200)},
	})

	assert.InDelta(t, 1_200*83.0, res.Scope3, 1e-6)
}

func TestCalculate_InvestmentAverageData(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryInvestments,
		Activity: &InvestmentAverage{Sector: "utilities", Currency: factors.UnitUSD, InvestmentValue: 5_000_000},
	})

	assert.InDelta(t, 5_000_000*0.58, res.Scope3, 1e-3)
}

// Expressing the same physical quantity in a different declared unit must
// yield the same kg CO2e within floating-point tolerance.
func TestCalculate_UnitEquivalence(t *testing.T) {
	t.Parallel()

	const cubicMeters = 1_000.0
	const ncvMJPerM3 = 39.0

	inM3 := Calculate(Source{
		Category: CategoryScope1,
		Activity: &FuelCombustion{FuelType: "natural_gas", Unit: factors.UnitCubicMeter, Monthly: monthly(cubicMeters)},
	})
	inMJ := Calculate(Source{
		Category: CategoryScope1,
		Activity: &FuelCombustion{FuelType: "natural_gas", Unit: factors.UnitMJ, Monthly: monthly(cubicMeters * ncvMJPerM3)},
	})

	assert.InDelta(t, inM3.Scope1, inMJ.Scope1, 1e-6)
}

func TestCategoryScopeRouting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Scope1, CategoryScope1.Scope())
	assert.Equal(t, Scope2, CategoryScope2.Scope())
	for _, c := range []Category{
		CategoryPurchasedGoods, CategoryCapitalGoods, CategoryFuelEnergy,
		CategoryUpstreamTransport, CategoryWasteOperations, CategoryBusinessTravel,
		CategoryCommuting, CategoryUpstreamLeased, CategoryDownstreamTransport,
		CategoryProcessingSold, CategoryUseOfSold, CategoryEndOfLife,
		CategoryDownstreamLeased, CategoryFranchises, CategoryInvestments,
	} {
		assert.Equal(t, Scope3, c.Scope(), string(c))
	}
	assert.False(t, Category("scope4_imaginary").Valid())
}
