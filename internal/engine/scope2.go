package engine

import (
	"github.com/carbonscope/carbonscope/internal/factors"
)

// GridElectricity is a Scope 2 purchased electricity source. Monthly holds
// the total metered consumption in kWh; Mix optionally breaks part of it
// into contractual instrument buckets for market-based accounting.
type GridElectricity struct {
	Region  string    `json:"region"`
	Monthly Months    `json:"monthlyQuantities"` // kWh
	Mix     *PowerMix `json:"powerMix,omitempty"`
}

func (*GridElectricity) Method() Method    { return MethodActivity }
func (*GridElectricity) kind() variantKind { return kindGridElectricity }

// PowerMix names the contractual instrument buckets of an electricity
// source. Bucket quantities per month must not exceed the month's total
// consumption; the remainder is the residual, accounted at the discounted
// grid factor.
type PowerMix struct {
	PPA          *PPABucket          `json:"ppa,omitempty"`
	REC          *RECBucket          `json:"rec,omitempty"`
	GreenPremium *GreenPremiumBucket `json:"greenPremium,omitempty"`
}

// PPABucket is power purchased under a power purchase agreement at a
// supplier-declared emission factor.
type PPABucket struct {
	Monthly Months  `json:"monthlyQuantities"` // kWh
	Factor  float64 `json:"factor"`            // kg CO2e per kWh
}

// RECBucket is consumption covered by renewable energy certificates. Only a
// qualifying certificate zeroes its share; otherwise the share is charged at
// the residual factor.
type RECBucket struct {
	Monthly           Months `json:"monthlyQuantities"` // kWh
	MeetsRequirements bool   `json:"meetsRequirements"`
}

// GreenPremiumBucket is consumption bought under a utility green tariff.
// When the tariff qualifies as renewable it is charged at the declared
// factor (or zero if none declared); otherwise it is treated as residual.
type GreenPremiumBucket struct {
	Monthly          Months   `json:"monthlyQuantities"` // kWh
	TreatAsRenewable bool     `json:"treatAsRenewable"`
	Factor           *float64 `json:"factor,omitempty"` // kg CO2e per kWh
}

// scope2 evaluates the dual accounting for one electricity source: one
// deterministic pass per month, summed to annual totals. Over-subscribed
// months are computed as supplied and flagged, favoring transparency over
// silent correction.
func (c *Calculator) scope2(src Source, a *GridElectricity) (location, market float64, warnings []Warning) {
	gridFactor, err := c.registry.Resolve(factors.GridKey(a.Region), factors.UnitKWh)
	if err != nil {
		return 0, 0, []Warning{lookupWarning(src, err)}
	}
	residualFactor := gridFactor * c.policy.ResidualMixDiscount

	for month := 0; month < 12; month++ {
		total := quantity(a.Monthly[month])
		location += total * gridFactor

		var named float64
		if mix := a.Mix; mix != nil {
			if mix.PPA != nil {
				q := quantity(mix.PPA.Monthly[month])
				named += q
				market += q * quantity(mix.PPA.Factor)
			}
			if mix.REC != nil {
				q := quantity(mix.REC.Monthly[month])
				named += q
				if !mix.REC.MeetsRequirements {
					market += q * residualFactor
				}
			}
			if gp := mix.GreenPremium; gp != nil {
				q := quantity(gp.Monthly[month])
				named += q
				switch {
				case gp.TreatAsRenewable && gp.Factor != nil:
					market += q * quantity(*gp.Factor)
				case gp.TreatAsRenewable:
					// qualifies with no declared factor: zero-rated
				default:
					market += q * residualFactor
				}
			}
		}

		if named > total {
			warnings = append(warnings, Warning{
				Kind:     WarnOverAllocatedMix,
				SourceID: src.ID,
				Category: src.Category,
				Month:    month + 1,
				Detail:   "power mix buckets exceed total consumption",
			})
		}

		residual := total - named
		if residual < 0 {
			residual = 0
		}
		market += residual * residualFactor
	}

	return location, market, warnings
}
