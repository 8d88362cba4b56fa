package engine

import (
	"fmt"

	"github.com/carbonscope/carbonscope/internal/factors"
)

const monthsPerYear = 12.0

// Calculator evaluates emission sources against a factor registry and an
// accounting policy. It holds no mutable state, so one Calculator may be
// shared across goroutines.
type Calculator struct {
	registry *factors.Registry
	policy   Policy
}

// NewCalculator builds a calculator over a registry and policy. A nil
// registry means the built-in tables.
func NewCalculator(registry *factors.Registry, policy Policy) *Calculator {
	if registry == nil {
		registry = factors.Default()
	}
	if policy.ResidualMixDiscount <= 0 {
		policy.ResidualMixDiscount = DefaultPolicy().ResidualMixDiscount
	}
	return &Calculator{registry: registry, policy: policy}
}

// Calculate is the convenience entry point over the default registry and
// policy.
func Calculate(src Source) Result {
	return NewCalculator(nil, DefaultPolicy()).Calculate(src)
}

// Calculate maps one source to its four-way emissions split. It never
// returns an error and never panics: data problems degrade the affected
// bucket to zero and surface as structured warnings. Identical input always
// yields identical output.
func (c *Calculator) Calculate(src Source) Result {
	var res Result

	scope := src.Category.Scope()
	if scope == ScopeUnknown || src.Activity == nil || !Allowed(src.Category, src.Activity) {
		res.Warnings = append(res.Warnings, Warning{
			Kind:     WarnMethodMismatch,
			SourceID: src.ID,
			Category: src.Category,
			Detail:   fmt.Sprintf("activity is not a valid method for category %q", src.Category),
		})
		return res
	}

	switch a := src.Activity.(type) {
	case *GridElectricity:
		location, market, warnings := c.scope2(src, a)
		res.Scope2Location += location
		res.Scope2Market += market
		res.Warnings = append(res.Warnings, warnings...)
		return res

	case *FuelCombustion:
		v, warnings := c.fuelCombustion(src, a)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)

	case *FugitiveRelease:
		v, warnings := c.fugitive(src, a)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)

	case *DirectActivity:
		v, warnings := c.directActivity(src, a)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)

	case *Spend:
		v, warnings := c.spend(src, a)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)

	case *SupplierSpecific:
		res.add(scope, quantity(a.CO2eKg))

	case *FreightLeg:
		v, warnings := c.freight(src, a.Mode, a.Vehicle, a.DistanceKm, a.WeightTonnes, a.Adjustments)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)

	case *WasteTreatmentSingle:
		v, warnings := c.wasteSingle(src, a)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)

	case *WasteTreatmentBlend:
		v, warnings := c.wasteBlend(src, a)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)

	case *LeasedArea:
		v, warnings := c.leasedArea(src, a)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)

	case *FranchiseAverage:
		v, warnings := c.franchiseAverage(src, a)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)

	case *SoldProductUse:
		v, warnings := c.soldProductUse(src, a)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)

	case *InvestmentSpecific:
		v, warnings := c.investmentSpecific(src, a)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)

	case *InvestmentAverage:
		v, warnings := c.investmentAverage(src, a)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)

	case *Processing:
		v, warnings := c.processing(src, a)
		res.add(scope, v)
		res.Warnings = append(res.Warnings, warnings...)
	}

	return res
}

// resolve wraps a registry lookup into the zero-and-warn degradation the
// per-row error policy requires.
func (c *Calculator) resolve(src Source, key factors.Key, unit string) (float64, []Warning) {
	f, err := c.registry.Resolve(key, unit)
	if err != nil {
		return 0, []Warning{lookupWarning(src, err)}
	}
	return f, nil
}

func (c *Calculator) fuelCombustion(src Source, a *FuelCombustion) (float64, []Warning) {
	f, warnings := c.resolve(src, factors.FuelKey(a.FuelType), a.Unit)
	return a.Adjustments.Apply(a.Monthly.Total() * f), warnings
}

func (c *Calculator) fugitive(src Source, a *FugitiveRelease) (float64, []Warning) {
	gwp, warnings := c.resolve(src, factors.GasKey(a.Gas), factors.UnitKg)
	return a.Monthly.Total() * gwp, warnings
}

// directActivity selects its backing table from the category: materials for
// purchased and capital goods, fuels for fuel-and-energy-related, passenger
// travel for business travel and commuting.
func (c *Calculator) directActivity(src Source, a *DirectActivity) (float64, []Warning) {
	var key factors.Key
	switch src.Category {
	case CategoryFuelEnergy:
		key = factors.FuelKey(a.SubType)
	case CategoryBusinessTravel, CategoryCommuting:
		key = factors.TravelKey(a.SubType)
	default:
		key = factors.MaterialKey(a.SubType)
	}
	f, warnings := c.resolve(src, key, a.Unit)
	return a.Adjustments.Apply(a.Monthly.Total() * f), warnings
}

func (c *Calculator) spend(src Source, a *Spend) (float64, []Warning) {
	f, warnings := c.resolve(src, factors.SpendKey(a.Sector), a.Currency)
	return a.Monthly.Total() * f, warnings
}

func (c *Calculator) freight(src Source, mode, vehicle string, distanceKm, weightTonnes float64, adj Adjustments) (float64, []Warning) {
	f, warnings := c.resolve(src, factors.TransportKey{Mode: mode, Vehicle: vehicle}, factors.UnitTonneKm)
	return adj.Apply(quantity(distanceKm) * quantity(weightTonnes) * f), warnings
}

// wasteTransportLeg prices the optional collection leg of a waste source,
// assuming the transported weight equals the treated weight. The leg adds to
// the treatment result, it is never blended into the ratios.
func (c *Calculator) wasteTransportLeg(src Source, leg *WasteTransport, weightTonnes float64) (float64, []Warning) {
	if leg == nil {
		return 0, nil
	}
	return c.freight(src, leg.Mode, leg.Vehicle, leg.DistanceKm, weightTonnes, Adjustments{})
}

func (c *Calculator) wasteSingle(src Source, a *WasteTreatmentSingle) (float64, []Warning) {
	weight := a.Monthly.Total()
	f, warnings := c.resolve(src, factors.WasteKey{WasteType: a.WasteType, Treatment: a.Treatment}, factors.UnitTonne)
	total := weight * f

	transport, transportWarnings := c.wasteTransportLeg(src, a.Transport, weight)
	return total + transport, append(warnings, transportWarnings...)
}

func (c *Calculator) wasteBlend(src Source, a *WasteTreatmentBlend) (float64, []Warning) {
	var warnings []Warning
	weight := a.Monthly.Total()

	// Ratios are computed as supplied; an over-one ratio pushes the sum over
	// one and is flagged below rather than silently clamped.
	var total, ratioSum float64
	for _, dr := range a.Ratios {
		ratio := quantity(dr.Ratio)
		ratioSum += ratio
		f, w := c.resolve(src, factors.WasteKey{WasteType: a.WasteType, Treatment: dr.Treatment}, factors.UnitTonne)
		warnings = append(warnings, w...)
		total += weight * ratio * f
	}

	if ratioSum > 1+1e-9 {
		warnings = append(warnings, Warning{
			Kind:     WarnInvalidNumeric,
			SourceID: src.ID,
			Category: src.Category,
			Detail:   fmt.Sprintf("disposal ratios sum to %.3f, expected at most 1", ratioSum),
		})
	}

	transport, transportWarnings := c.wasteTransportLeg(src, a.Transport, weight)
	return total + transport, append(warnings, transportWarnings...)
}

func (c *Calculator) leasedArea(src Source, a *LeasedArea) (float64, []Warning) {
	intensity, warnings := c.resolve(src, factors.BuildingKey(a.BuildingType), factors.UnitKWhSqmYear)
	grid, gridWarnings := c.resolve(src, factors.GridKey(a.GridRegion), factors.UnitKWh)
	warnings = append(warnings, gridWarnings...)

	months := quantity(a.LeaseMonths)
	if months == 0 {
		months = monthsPerYear
	}
	if months > monthsPerYear {
		months = monthsPerYear
	}
	return quantity(a.AreaSqm) * intensity * grid * (months / monthsPerYear), warnings
}

func (c *Calculator) franchiseAverage(src Source, a *FranchiseAverage) (float64, []Warning) {
	f, warnings := c.resolve(src, factors.FranchiseKey(a.FranchiseType), factors.UnitSiteYear)
	return quantity(a.Count) * f, warnings
}

func (c *Calculator) soldProductUse(src Source, a *SoldProductUse) (float64, []Warning) {
	var f float64
	var warnings []Warning
	if a.GridRegion != "" {
		f, warnings = c.resolve(src, factors.GridKey(a.GridRegion), factors.UnitKWh)
	} else {
		f, warnings = c.resolve(src, factors.FuelKey(a.FuelType), a.Unit)
	}
	lifetime := quantity(a.UnitsSold) * quantity(a.LifetimeYears) * quantity(a.AnnualConsumption)
	return lifetime * f, warnings
}

func (c *Calculator) investmentSpecific(src Source, a *InvestmentSpecific) (float64, []Warning) {
	companyValue := quantity(a.CompanyValue)
	if companyValue <= 0 {
		// Zero denominator: attribution share is zero, never Inf.
		return 0, []Warning{{
			Kind:     WarnInvalidNumeric,
			SourceID: src.ID,
			Category: src.Category,
			Detail:   "company value is zero, investment attribution skipped",
		}}
	}
	share := quantity(a.InvestmentValue) / companyValue
	return quantity(a.InvesteeEmissionsKg) * share, nil
}

func (c *Calculator) investmentAverage(src Source, a *InvestmentAverage) (float64, []Warning) {
	f, warnings := c.resolve(src, factors.InvestmentSectorKey(a.Sector), a.Currency)
	return quantity(a.InvestmentValue) * f, warnings
}

func (c *Calculator) processing(src Source, a *Processing) (float64, []Warning) {
	f, warnings := c.resolve(src, factors.ProcessKey(a.ProcessType), a.Unit)
	return a.Monthly.Total() * f, warnings
}
