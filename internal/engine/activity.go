package engine

import (
	"github.com/carbonscope/carbonscope/internal/factors"
)

// Method names a category's calculation method, the second half of the
// dispatch key. Method validity depends on the category; the closed table
// lives in categoryMethods.
type Method string

const (
	MethodActivity           Method = "activity"
	MethodSpend              Method = "spend"
	MethodSupplierSpecific   Method = "supplier_specific"
	MethodAverage            Method = "average"
	MethodAreaBased          Method = "area_based"
	MethodAverageData        Method = "average_data"
	MethodUsePhase           Method = "use_phase"
	MethodInvestmentSpecific Method = "investment_specific"
	MethodProcessSpecific    Method = "process_specific"
	MethodFugitive           Method = "fugitive"
)

// methodAliases maps accepted method spellings onto their canonical name.
var methodAliases = map[Method]Method{
	"waste_stream":      MethodActivity, // end-of-life single-stream treatment
	"disposal_blend":    MethodAverage,
	"customer_specific": MethodSupplierSpecific,
}

func canonicalMethod(m Method) Method {
	if c, ok := methodAliases[m]; ok {
		return c
	}
	return m
}

// variantKind discriminates the concrete activity variants.
type variantKind string

const (
	kindFuelCombustion     variantKind = "fuel_combustion"
	kindFugitiveRelease    variantKind = "fugitive_release"
	kindDirectActivity     variantKind = "direct_activity"
	kindSpend              variantKind = "spend"
	kindSupplierSpecific   variantKind = "supplier_specific"
	kindFreightLeg         variantKind = "freight_leg"
	kindWasteSingle        variantKind = "waste_single"
	kindWasteBlend         variantKind = "waste_blend"
	kindLeasedArea         variantKind = "leased_area"
	kindFranchiseAverage   variantKind = "franchise_average"
	kindSoldProductUse     variantKind = "sold_product_use"
	kindInvestmentSpecific variantKind = "investment_specific"
	kindInvestmentAverage  variantKind = "investment_average"
	kindProcessing         variantKind = "processing"
	kindGridElectricity    variantKind = "grid_electricity"
)

// Activity is the tagged variant of one source's calculation inputs. Each
// variant carries exactly the fields its formula family reads, so invalid
// field combinations cannot be constructed. The interface is sealed: only
// this package's variants implement it.
type Activity interface {
	// Method returns the canonical calculation method this variant realizes.
	Method() Method

	kind() variantKind
}

// FuelCombustion is Scope 1 stationary or mobile fuel burn: monthly fuel
// quantities priced against the fuel factor table.
type FuelCombustion struct {
	FuelType    string      `json:"fuelType"`
	Unit        string      `json:"unit"`
	Monthly     Months      `json:"monthlyQuantities"`
	Adjustments Adjustments `json:"adjustments"`
}

func (*FuelCombustion) Method() Method    { return MethodActivity }
func (*FuelCombustion) kind() variantKind { return kindFuelCombustion }

// FugitiveRelease is a Scope 1 refrigerant or process gas release in kg,
// converted to CO2e via the gas's global warming potential.
type FugitiveRelease struct {
	Gas     string `json:"gas"`
	Monthly Months `json:"monthlyQuantities"` // kg of gas
}

func (*FugitiveRelease) Method() Method    { return MethodFugitive }
func (*FugitiveRelease) kind() variantKind { return kindFugitiveRelease }

// DirectActivity is the generic quantity-times-factor method. The backing
// table depends on the category: materials for purchased and capital goods,
// fuels for fuel-and-energy-related, passenger travel for business travel
// and commuting.
type DirectActivity struct {
	SubType     string      `json:"subType"`
	Unit        string      `json:"unit"`
	Monthly     Months      `json:"monthlyQuantities"`
	Adjustments Adjustments `json:"adjustments"`
}

func (*DirectActivity) Method() Method    { return MethodActivity }
func (*DirectActivity) kind() variantKind { return kindDirectActivity }

// Spend is the spend-based method: monetary amounts priced against EEIO
// sector factors.
type Spend struct {
	Sector   string `json:"sector"`
	Currency string `json:"currency"`
	Monthly  Months `json:"monthlyQuantities"` // spend per month
}

func (*Spend) Method() Method    { return MethodSpend }
func (*Spend) kind() variantKind { return kindSpend }

// SupplierSpecific passes through a supplier- or customer-provided CO2e
// figure with no further transform.
type SupplierSpecific struct {
	CO2eKg float64 `json:"co2eKg"`
}

func (*SupplierSpecific) Method() Method    { return MethodSupplierSpecific }
func (*SupplierSpecific) kind() variantKind { return kindSupplierSpecific }

// FreightLeg is the distance-times-weight method for upstream and
// downstream transportation.
type FreightLeg struct {
	Mode         string      `json:"mode"`
	Vehicle      string      `json:"vehicle"`
	DistanceKm   float64     `json:"distanceKm"`
	WeightTonnes float64     `json:"weightTonnes"`
	Adjustments  Adjustments `json:"adjustments"`
}

func (*FreightLeg) Method() Method    { return MethodActivity }
func (*FreightLeg) kind() variantKind { return kindFreightLeg }

// WasteTransport is the optional collection leg of a waste source. The
// transported weight is assumed equal to the total waste weight.
type WasteTransport struct {
	Mode       string  `json:"mode"`
	Vehicle    string  `json:"vehicle"`
	DistanceKm float64 `json:"distanceKm"`
}

// WasteTreatmentSingle treats the full waste stream with one method. The
// factor may be negative for recycling.
type WasteTreatmentSingle struct {
	WasteType string            `json:"wasteType"`
	Treatment factors.Treatment `json:"treatment"`
	Monthly   Months            `json:"monthlyQuantities"` // metric tons
	Transport *WasteTransport   `json:"transport,omitempty"`
}

func (*WasteTreatmentSingle) Method() Method    { return MethodActivity }
func (*WasteTreatmentSingle) kind() variantKind { return kindWasteSingle }

// DisposalRatio is one treatment's share of a blended waste stream,
// expressed as a fraction.
type DisposalRatio struct {
	Treatment factors.Treatment `json:"treatment"`
	Ratio     float64           `json:"ratio"`
}

// WasteTreatmentBlend splits the waste stream across treatment methods by
// disposal ratios summing to at most one.
type WasteTreatmentBlend struct {
	WasteType string          `json:"wasteType"`
	Ratios    []DisposalRatio `json:"disposalRatios"`
	Monthly   Months          `json:"monthlyQuantities"` // metric tons
	Transport *WasteTransport `json:"transport,omitempty"`
}

func (*WasteTreatmentBlend) Method() Method    { return MethodAverage }
func (*WasteTreatmentBlend) kind() variantKind { return kindWasteBlend }

// LeasedArea is the area-based method for leased assets and franchises:
// floor area times building energy intensity times the regional grid factor,
// prorated by lease duration.
type LeasedArea struct {
	BuildingType string  `json:"buildingType"`
	AreaSqm      float64 `json:"areaSqm"`
	GridRegion   string  `json:"gridRegion"`
	LeaseMonths  float64 `json:"leaseMonths"` // 0 means a full year
}

func (*LeasedArea) Method() Method    { return MethodAreaBased }
func (*LeasedArea) kind() variantKind { return kindLeasedArea }

// FranchiseAverage is the average-data method for franchises: site count
// times the franchise type's average annual emissions.
type FranchiseAverage struct {
	FranchiseType string  `json:"franchiseType"`
	Count         float64 `json:"count"`
}

func (*FranchiseAverage) Method() Method    { return MethodAverageData }
func (*FranchiseAverage) kind() variantKind { return kindFranchiseAverage }

// SoldProductUse is the use-phase lifetime method: units sold times product
// lifetime times annual energy consumption, priced against either a fuel
// factor or a regional grid factor. Exactly one of FuelType or GridRegion
// is set.
type SoldProductUse struct {
	UnitsSold         float64 `json:"unitsSold"`
	LifetimeYears     float64 `json:"lifetimeYears"`
	AnnualConsumption float64 `json:"annualConsumption"` // per unit sold, per year
	Unit              string  `json:"unit"`
	FuelType          string  `json:"fuelType,omitempty"`
	GridRegion        string  `json:"gridRegion,omitempty"`
}

func (*SoldProductUse) Method() Method    { return MethodUsePhase }
func (*SoldProductUse) kind() variantKind { return kindSoldProductUse }

// InvestmentSpecific is the PCAF attribution method: investee emissions
// allocated by the financing share.
type InvestmentSpecific struct {
	InvesteeEmissionsKg float64 `json:"investeeEmissionsKg"`
	InvestmentValue     float64 `json:"investmentValue"`
	CompanyValue        float64 `json:"companyValue"`
}

func (*InvestmentSpecific) Method() Method    { return MethodInvestmentSpecific }
func (*InvestmentSpecific) kind() variantKind { return kindInvestmentSpecific }

// InvestmentAverage is the average-data method for investments: invested
// value times the investee sector's economic intensity.
type InvestmentAverage struct {
	Sector          string  `json:"sector"`
	Currency        string  `json:"currency"`
	InvestmentValue float64 `json:"investmentValue"`
}

func (*InvestmentAverage) Method() Method    { return MethodAverageData }
func (*InvestmentAverage) kind() variantKind { return kindInvestmentAverage }

// Processing is the process-specific method: quantity processed times the
// process factor. Used for Scope 1 process emissions and processing of sold
// intermediates.
type Processing struct {
	ProcessType string `json:"processType"`
	Unit        string `json:"unit"`
	Monthly     Months `json:"monthlyQuantities"`
}

func (*Processing) Method() Method    { return MethodProcessSpecific }
func (*Processing) kind() variantKind { return kindProcessing }

// categoryMethods is the closed dispatch table: which calculation methods a
// category admits and which variant realizes each. Spend applies to every
// Scope 3 category and supplier-specific to every category (see init).
var categoryMethods = map[Category]map[Method]variantKind{
	CategoryScope1: {
		MethodActivity:        kindFuelCombustion,
		MethodFugitive:        kindFugitiveRelease,
		MethodProcessSpecific: kindProcessing,
	},
	CategoryScope2: {
		MethodActivity: kindGridElectricity,
	},
	CategoryPurchasedGoods:      {MethodActivity: kindDirectActivity},
	CategoryCapitalGoods:        {MethodActivity: kindDirectActivity},
	CategoryFuelEnergy:          {MethodActivity: kindDirectActivity},
	CategoryUpstreamTransport:   {MethodActivity: kindFreightLeg},
	CategoryWasteOperations:     {MethodActivity: kindWasteSingle, MethodAverage: kindWasteBlend},
	CategoryBusinessTravel:      {MethodActivity: kindDirectActivity},
	CategoryCommuting:           {MethodActivity: kindDirectActivity},
	CategoryUpstreamLeased:      {MethodAreaBased: kindLeasedArea},
	CategoryDownstreamTransport: {MethodActivity: kindFreightLeg},
	CategoryProcessingSold:      {MethodProcessSpecific: kindProcessing},
	CategoryUseOfSold:           {MethodUsePhase: kindSoldProductUse},
	CategoryEndOfLife:           {MethodActivity: kindWasteSingle, MethodAverage: kindWasteBlend},
	CategoryDownstreamLeased:    {MethodAreaBased: kindLeasedArea},
	CategoryFranchises:          {MethodAreaBased: kindLeasedArea, MethodAverageData: kindFranchiseAverage},
	CategoryInvestments: {
		MethodInvestmentSpecific: kindInvestmentSpecific,
		MethodAverageData:        kindInvestmentAverage,
	},
}

func init() {
	// Supplier-specific figures and spend-based estimates are accepted for
	// every category.
	for _, methods := range categoryMethods {
		methods[MethodSupplierSpecific] = kindSupplierSpecific
		methods[MethodSpend] = kindSpend
	}
}

// Allowed reports whether the activity variant is a valid calculation method
// for the category.
func Allowed(c Category, a Activity) bool {
	methods, ok := categoryMethods[c]
	if !ok || a == nil {
		return false
	}
	for _, k := range methods {
		if k == a.kind() {
			return true
		}
	}
	return false
}

// Methods lists the calculation methods a category admits, for validation
// surfaces. The order is unspecified.
func Methods(c Category) []Method {
	methods := categoryMethods[c]
	out := make([]Method, 0, len(methods))
	for m := range methods {
		out = append(out, m)
	}
	return out
}

// newActivity returns an empty variant for the (category, method) pair, for
// JSON decoding. False means the pair is not in the closed dispatch table.
func newActivity(c Category, m Method) (Activity, bool) {
	methods, ok := categoryMethods[c]
	if !ok {
		return nil, false
	}
	k, ok := methods[canonicalMethod(m)]
	if !ok {
		return nil, false
	}
	switch k {
	case kindFuelCombustion:
		return &FuelCombustion{}, true
	case kindFugitiveRelease:
		return &FugitiveRelease{}, true
	case kindDirectActivity:
		return &DirectActivity{}, true
	case kindSpend:
		return &Spend{}, true
	case kindSupplierSpecific:
		return &SupplierSpecific{}, true
	case kindFreightLeg:
		return &FreightLeg{}, true
	case kindWasteSingle:
		return &WasteTreatmentSingle{}, true
	case kindWasteBlend:
		return &WasteTreatmentBlend{}, true
	case kindLeasedArea:
		return &LeasedArea{}, true
	case kindFranchiseAverage:
		return &FranchiseAverage{}, true
	case kindSoldProductUse:
		return &SoldProductUse{}, true
	case kindInvestmentSpecific:
		return &InvestmentSpecific{}, true
	case kindInvestmentAverage:
		return &InvestmentAverage{}, true
	case kindProcessing:
		return &Processing{}, true
	case kindGridElectricity:
		return &GridElectricity{}, true
	default:
		return nil, false
	}
}
