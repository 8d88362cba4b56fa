// Package engine implements the emission calculation core: a pure,
// synchronous evaluator that maps one emission source record to a four-way
// kg CO2e split across Scope 1, Scope 2 location-based, Scope 2 market-based
// and Scope 3. The engine never mutates its input, never caches, and never
// lets a single source's failure abort another source's computation.
package engine

import (
	"github.com/carbonscope/carbonscope/internal/dqi"
)

// Category identifies which GHG Protocol bucket a source reports under. The
// set is closed: two direct categories (Scope 1 and 2) plus the fifteen
// Scope 3 value-chain categories.
type Category string

const (
	CategoryScope1 Category = "scope1_direct"
	CategoryScope2 Category = "scope2_purchased_energy"

	CategoryPurchasedGoods      Category = "cat1_purchased_goods"
	CategoryCapitalGoods        Category = "cat2_capital_goods"
	CategoryFuelEnergy          Category = "cat3_fuel_energy"
	CategoryUpstreamTransport   Category = "cat4_upstream_transport"
	CategoryWasteOperations     Category = "cat5_waste_operations"
	CategoryBusinessTravel      Category = "cat6_business_travel"
	CategoryCommuting           Category = "cat7_employee_commuting"
	CategoryUpstreamLeased      Category = "cat8_upstream_leased_assets"
	CategoryDownstreamTransport Category = "cat9_downstream_transport"
	CategoryProcessingSold      Category = "cat10_processing_sold_products"
	CategoryUseOfSold           Category = "cat11_use_of_sold_products"
	CategoryEndOfLife           Category = "cat12_end_of_life"
	CategoryDownstreamLeased    Category = "cat13_downstream_leased_assets"
	CategoryFranchises          Category = "cat14_franchises"
	CategoryInvestments         Category = "cat15_investments"
)

// Scope is the reporting scope a category routes its result into. A category
// contributes to exactly one scope, fixed by classification.
type Scope int

const (
	ScopeUnknown Scope = iota
	Scope1
	Scope2
	Scope3
)

// Scope returns the reporting scope this category routes to.
func (c Category) Scope() Scope {
	switch c {
	case CategoryScope1:
		return Scope1
	case CategoryScope2:
		return Scope2
	case CategoryPurchasedGoods, CategoryCapitalGoods, CategoryFuelEnergy,
		CategoryUpstreamTransport, CategoryWasteOperations, CategoryBusinessTravel,
		CategoryCommuting, CategoryUpstreamLeased, CategoryDownstreamTransport,
		CategoryProcessingSold, CategoryUseOfSold, CategoryEndOfLife,
		CategoryDownstreamLeased, CategoryFranchises, CategoryInvestments:
		return Scope3
	default:
		return ScopeUnknown
	}
}

// Valid reports whether the category is one of the closed set.
func (c Category) Valid() bool { return c.Scope() != ScopeUnknown }

// Months is an ordered sequence of twelve quantities, index 0 = January.
type Months [12]float64

// Total sums the monthly quantities. Non-finite and negative entries are
// coerced to zero at read time so NaN never propagates outward.
func (m Months) Total() float64 {
	var total float64
	for _, v := range m {
		total += quantity(v)
	}
	return total
}

// Source is one emission activity record. Category is fixed at creation;
// Activity is the tagged variant carrying exactly the fields the category's
// calculation method reads.
type Source struct {
	ID         string
	FacilityID string
	Category   Category
	Activity   Activity
	Quality    *dqi.Indicator
}

// Result is the four-way emissions split of one source in kg CO2e. Exactly
// one scope's field(s) are populated, determined by the source category.
// A Scope 3 total can be negative when recycling credits dominate.
type Result struct {
	Scope1         float64   `json:"scope1"`
	Scope2Location float64   `json:"scope2Location"`
	Scope2Market   float64   `json:"scope2Market"`
	Scope3         float64   `json:"scope3"`
	Warnings       []Warning `json:"warnings,omitempty"`
}

// Total is the sum of all scope buckets, counting Scope 2 market-based
// (the contractual-instrument view) rather than location-based.
func (r Result) Total() float64 {
	return r.Scope1 + r.Scope2Market + r.Scope3
}

func (r *Result) add(s Scope, v float64) {
	switch s {
	case Scope1:
		r.Scope1 += v
	case Scope2:
		// Scope 2 figures computed outside the grid path (supplier-specific,
		// spend-based) apply to both accounting views.
		r.Scope2Location += v
		r.Scope2Market += v
	case Scope3:
		r.Scope3 += v
	}
}

// Policy holds the overridable accounting constants that are regulatory
// judgment rather than physics. Defaults match common market-based Scope 2
// guidance; reporting schemes may override them via configuration.
type Policy struct {
	// ResidualMixDiscount scales the grid factor applied to consumption not
	// covered by contractual instruments.
	ResidualMixDiscount float64

	// DQIWeights weighs the five data quality dimensions.
	DQIWeights dqi.Weights

	// DQIThresholds partitions DQI scores into rating bands.
	DQIThresholds dqi.Thresholds
}

// DefaultPolicy returns the built-in policy constants.
func DefaultPolicy() Policy {
	return Policy{
		ResidualMixDiscount: 0.80,
		DQIWeights:          dqi.DefaultWeights(),
		DQIThresholds:       dqi.DefaultThresholds(),
	}
}
