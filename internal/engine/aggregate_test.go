package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonscope/carbonscope/internal/dqi"
	"github.com/carbonscope/carbonscope/internal/factors"
)

func TestAggregate_ScopeAndCategoryTotals(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(nil, DefaultPolicy())
	totals := calc.Aggregate([]Source{
		{
			ID: "a", Category: CategoryScope1,
			Activity: &FuelCombustion{FuelType: "natural_gas", Unit: factors.UnitCubicMeter, Monthly: monthly(1_000)},
		},
		{
			ID: "b", Category: CategoryScope2,
			Activity: &GridElectricity{Region: "KR", Monthly: monthly(12_000)},
		},
		{
			ID: "c", Category: CategoryWasteOperations,
			Activity: &WasteTreatmentSingle{WasteType: "plastics", Treatment: factors.TreatmentIncineration, Monthly: monthly(2)},
		},
	}, nil)

	assert.Equal(t, 3, totals.Sources)
	assert.InDelta(t, 1901.9, totals.Scope1, 1e-6)
	assert.InDelta(t, 5449.2, totals.Scope2Location, 1e-6)
	assert.InDelta(t, 5449.2*0.80, totals.Scope2Market, 1e-6)
	assert.InDelta(t, 5400.0, totals.Scope3, 1e-6)

	assert.InDelta(t, 1901.9, totals.ByCategory[CategoryScope1], 1e-6)
	assert.InDelta(t, 5400.0, totals.ByCategory[CategoryWasteOperations], 1e-6)
}

func TestAggregate_EquityShareWeighting(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(nil, DefaultPolicy())
	sources := []Source{
		{
			ID: "owned", FacilityID: "hq", Category: CategoryScope1,
			Activity: &FuelCombustion{FuelType: "diesel", Unit: factors.UnitLiter, Monthly: monthly(1_000)},
		},
		{
			ID: "jv", FacilityID: "joint-venture", Category: CategoryScope1,
			Activity: &FuelCombustion{FuelType: "diesel", Unit: factors.UnitLiter, Monthly: monthly(1_000)},
		},
	}
	facilities := map[string]Facility{
		"hq":            {ID: "hq", EquityShare: 1.0},
		"joint-venture": {ID: "joint-venture", EquityShare: 0.4},
	}

	totals := calc.Aggregate(sources, facilities)
	perSource := 1_000 * 2.676
	assert.InDelta(t, perSource*1.0+perSource*0.4, totals.Scope1, 1e-6)
}

func TestAggregate_UnknownFacilityCountsInFull(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(nil, DefaultPolicy())
	totals := calc.Aggregate([]Source{{
		FacilityID: "not-on-file",
		Category:   CategoryScope1,
		Activity:   &FuelCombustion{FuelType: "diesel", Unit: factors.UnitLiter, Monthly: monthly(100)},
	}}, map[string]Facility{})

	assert.InDelta(t, 100*2.676, totals.Scope1, 1e-6)
}

func TestAggregate_MissingFactorDeduplicated(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(nil, DefaultPolicy())
	bad := func(id string) Source {
		return Source{
			ID: id, Category: CategoryScope1,
			Activity: &FuelCombustion{FuelType: "whale_oil", Unit: factors.UnitLiter, Monthly: monthly(10)},
		}
	}

	totals := calc.Aggregate([]Source{bad("r1"), bad("r2"), bad("r3"), {
		ID: "other", Category: CategoryScope1,
		Activity: &FuelCombustion{FuelType: "peat", Unit: factors.UnitKg, Monthly: monthly(10)},
	}}, nil)

	// One warning per distinct (table, key, unit), not one per row.
	require.Len(t, totals.Warnings, 2)
	keys := []string{totals.Warnings[0].Key, totals.Warnings[1].Key}
	assert.Contains(t, keys, "whale_oil")
	assert.Contains(t, keys, "peat")
}

func TestAggregate_BadRowNeverAbortsOthers(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(nil, DefaultPolicy())
	totals := calc.Aggregate([]Source{
		{
			ID: "broken", Category: CategoryScope1,
			Activity: &FuelCombustion{FuelType: "natural_gas", Unit: factors.UnitLiter, Monthly: monthly(999)},
		},
		{
			ID: "fine", Category: CategoryScope1,
			Activity: &FuelCombustion{FuelType: "natural_gas", Unit: factors.UnitCubicMeter, Monthly: monthly(1_000)},
		},
	}, nil)

	assert.InDelta(t, 1901.9, totals.Scope1, 1e-6)
	require.Len(t, totals.Warnings, 1)
	assert.Equal(t, WarnUnitMismatch, totals.Warnings[0].Kind)
}

func TestAggregate_DQIAverage(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(nil, DefaultPolicy())
	totals := calc.Aggregate([]Source{
		{
			Category: CategoryScope1,
			Activity: &FuelCombustion{FuelType: "diesel", Unit: factors.UnitLiter, Monthly: monthly(10)},
			Quality:  &dqi.Indicator{Technological: 1, Temporal: 1, Geographical: 1, Completeness: 1, Reliability: 1},
		},
		{
			Category: CategoryScope1,
			Activity: &FuelCombustion{FuelType: "diesel", Unit: factors.UnitLiter, Monthly: monthly(10)},
			Quality:  &dqi.Indicator{Technological: 3, Temporal: 3, Geographical: 3, Completeness: 3, Reliability: 3},
		},
		{
			// No quality record: excluded from the average.
			Category: CategoryScope1,
			Activity: &FuelCombustion{FuelType: "diesel", Unit: factors.UnitLiter, Monthly: monthly(10)},
		},
	}, nil)

	assert.InDelta(t, 2.0, totals.DQIScore, 1e-9)
	assert.Equal(t, dqi.RatingMediumHigh, totals.DQIRating)
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	totals := NewCalculator(nil, DefaultPolicy()).Aggregate(nil, nil)
	assert.Zero(t, totals.Scope1)
	assert.Zero(t, totals.Sources)
	assert.Empty(t, totals.Warnings)
	assert.Zero(t, totals.DQIScore)
}
