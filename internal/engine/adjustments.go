package engine

// Adjustment multipliers applied after the base formula product. The order
// is fixed: refrigerated, empty backhaul, load factor, carpool occupancy,
// teleworking exclusion. Each is independently optional; absent means
// identity.
const (
	refrigeratedMultiplier  = 1.2
	emptyBackhaulMultiplier = 2.0
)

// Adjustments are the optional multiplicative and divisive modifiers of an
// activity-based result. Pointer fields distinguish "absent" from an
// explicit zero: a load factor of exactly 0 zeroes the result rather than
// dividing by zero, while an absent load factor means 100%.
type Adjustments struct {
	// Refrigerated marks refrigerated transport (x1.2).
	Refrigerated bool `json:"refrigerated,omitempty"`

	// EmptyBackhaul marks an empty return leg (x2.0).
	EmptyBackhaul bool `json:"emptyBackhaul,omitempty"`

	// LoadFactorPct divides by loadFactor/100. Absent means fully loaded.
	LoadFactorPct *float64 `json:"loadFactorPct,omitempty"`

	// CarpoolOccupancy divides by the number of occupants, minimum 1.
	CarpoolOccupancy *float64 `json:"carpoolOccupancy,omitempty"`

	// TeleworkPct excludes the teleworked share of commuting (x(1 - pct/100)).
	TeleworkPct *float64 `json:"teleworkPct,omitempty"`
}

// Apply runs the adjustments over a base result in the fixed order. Zero
// divisors are guarded: they zero the result instead of producing Inf.
func (a Adjustments) Apply(base float64) float64 {
	v := base

	if a.Refrigerated {
		v *= refrigeratedMultiplier
	}
	if a.EmptyBackhaul {
		v *= emptyBackhaulMultiplier
	}
	if a.LoadFactorPct != nil {
		lf := quantity(*a.LoadFactorPct)
		if lf <= 0 {
			return 0
		}
		v /= lf / 100.0
	}
	if a.CarpoolOccupancy != nil {
		occ := quantity(*a.CarpoolOccupancy)
		if occ < 1 {
			occ = 1
		}
		v /= occ
	}
	if a.TeleworkPct != nil {
		pct := quantity(*a.TeleworkPct)
		if pct > 100 {
			pct = 100
		}
		v *= 1 - pct/100.0
	}
	return v
}
