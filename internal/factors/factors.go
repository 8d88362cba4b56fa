// Package factors provides the read-only emission factor registry used by the
// calculation engine. Tables map category-specific keys to kg CO2e per unit of
// activity. All tables are loaded once at process start and never mutated, so
// they are safe for unsynchronized concurrent reads.
package factors

import (
	"errors"
	"fmt"
	"sort"
)

// Common unit labels used across factor tables.
const (
	UnitKg          = "kg"
	UnitTonne       = "t"
	UnitLiter       = "l"
	UnitCubicMeter  = "m3"
	UnitKWh         = "kWh"
	UnitMJ          = "MJ"
	UnitTonneKm     = "t-km"
	UnitPassengerKm = "p-km"
	UnitUSD         = "USD"
	UnitKRWMillion  = "KRW-million"
	UnitKWhSqmYear  = "kWh/m2-year"
	UnitSiteYear    = "site-year"
)

// Sentinel errors for factor resolution failures. Callers match with
// errors.Is; no fallback or default factor is ever substituted.
var (
	// ErrUnknownFactorKey indicates the sub-type key is absent from the
	// category's table.
	ErrUnknownFactorKey = errors.New("unknown factor key")

	// ErrUnsupportedUnit indicates the declared unit is not present in the
	// resolved factor's unit set.
	ErrUnsupportedUnit = errors.New("unsupported unit")
)

// LookupError carries the table, key and unit of a failed resolution so that
// callers can deduplicate warnings per distinct combination.
type LookupError struct {
	Table string
	Key   string
	Unit  string
	cause error
}

func (e *LookupError) Error() string {
	if e.Unit != "" {
		return fmt.Sprintf("factor lookup %s[%s] unit %q: %v", e.Table, e.Key, e.Unit, e.cause)
	}
	return fmt.Sprintf("factor lookup %s[%s]: %v", e.Table, e.Key, e.cause)
}

func (e *LookupError) Unwrap() error { return e.cause }

// Factor is one emission factor entry. PerUnit maps every supported unit
// label to kg CO2e per that unit, so the supported unit set and the factor
// values cannot drift apart.
type Factor struct {
	Name    string
	PerUnit map[string]float64
}

// Units returns the sorted unit labels this factor supports.
func (f Factor) Units() []string {
	units := make([]string, 0, len(f.PerUnit))
	for u := range f.PerUnit {
		units = append(units, u)
	}
	sort.Strings(units)
	return units
}

// Resolve returns the kg CO2e per the given unit, or ErrUnsupportedUnit if
// the unit is not in this factor's unit set.
func (f Factor) Resolve(unit string) (float64, error) {
	v, ok := f.PerUnit[unit]
	if !ok {
		return 0, ErrUnsupportedUnit
	}
	return v, nil
}

// single builds a Factor with exactly one supported unit. Most non-fuel
// tables are expressed in a single canonical unit.
func single(name, unit string, value float64) Factor {
	return Factor{Name: name, PerUnit: map[string]float64{unit: value}}
}

// Key identifies one entry in one registry table. Each category uses its own
// typed key tuple; the interface is sealed so the key set stays closed.
type Key interface {
	// Table names the backing table, used in errors and warning dedup.
	Table() string

	// String renders the key for errors and warning dedup.
	String() string

	factor(r *Registry) (Factor, bool)
}

// FuelKey looks up stationary and mobile combustion fuels.
type FuelKey string

func (k FuelKey) Table() string  { return "fuel" }
func (k FuelKey) String() string { return string(k) }
func (k FuelKey) factor(r *Registry) (Factor, bool) {
	f, ok := r.fuels[string(k)]
	return f, ok
}

// MaterialKey looks up purchased goods and capital goods cradle-to-gate factors.
type MaterialKey string

func (k MaterialKey) Table() string  { return "material" }
func (k MaterialKey) String() string { return string(k) }
func (k MaterialKey) factor(r *Registry) (Factor, bool) {
	f, ok := r.materials[string(k)]
	return f, ok
}

// TravelKey looks up passenger travel and commuting factors by mode (and
// cabin class for air travel).
type TravelKey string

func (k TravelKey) Table() string  { return "travel" }
func (k TravelKey) String() string { return string(k) }
func (k TravelKey) factor(r *Registry) (Factor, bool) {
	f, ok := r.travel[string(k)]
	return f, ok
}

// GasKey looks up global warming potentials for fugitive gases.
type GasKey string

func (k GasKey) Table() string  { return "fugitive" }
func (k GasKey) String() string { return string(k) }
func (k GasKey) factor(r *Registry) (Factor, bool) {
	f, ok := r.fugitives[string(k)]
	return f, ok
}

// ProcessKey looks up industrial process factors.
type ProcessKey string

func (k ProcessKey) Table() string  { return "process" }
func (k ProcessKey) String() string { return string(k) }
func (k ProcessKey) factor(r *Registry) (Factor, bool) {
	f, ok := r.processes[string(k)]
	return f, ok
}

// Treatment enumerates waste treatment methods.
type Treatment string

const (
	TreatmentLandfill     Treatment = "landfill"
	TreatmentIncineration Treatment = "incineration"
	TreatmentRecycling    Treatment = "recycling"
	TreatmentComposting   Treatment = "composting"
)

// WasteKey looks up waste treatment factors by waste type and treatment
// method. Recycling factors may be negative (avoided-production credit).
type WasteKey struct {
	WasteType string
	Treatment Treatment
}

func (k WasteKey) Table() string  { return "waste" }
func (k WasteKey) String() string { return k.WasteType + "/" + string(k.Treatment) }
func (k WasteKey) factor(r *Registry) (Factor, bool) {
	byTreatment, ok := r.waste[k.WasteType]
	if !ok {
		return Factor{}, false
	}
	f, ok := byTreatment[k.Treatment]
	return f, ok
}

// TransportKey looks up freight factors by mode and vehicle.
type TransportKey struct {
	Mode    string
	Vehicle string
}

func (k TransportKey) Table() string  { return "transport" }
func (k TransportKey) String() string { return k.Mode + "/" + k.Vehicle }
func (k TransportKey) factor(r *Registry) (Factor, bool) {
	byVehicle, ok := r.transport[k.Mode]
	if !ok {
		return Factor{}, false
	}
	f, ok := byVehicle[k.Vehicle]
	return f, ok
}

// SpendKey looks up economic input-output (EEIO) factors by sector.
type SpendKey string

func (k SpendKey) Table() string  { return "eeio" }
func (k SpendKey) String() string { return string(k) }
func (k SpendKey) factor(r *Registry) (Factor, bool) {
	f, ok := r.eeio[string(k)]
	return f, ok
}

// BuildingKey looks up energy intensity by building or franchise type, in
// kWh per square meter per year.
type BuildingKey string

func (k BuildingKey) Table() string  { return "building" }
func (k BuildingKey) String() string { return string(k) }
func (k BuildingKey) factor(r *Registry) (Factor, bool) {
	f, ok := r.buildings[string(k)]
	return f, ok
}

// FranchiseKey looks up average annual emissions per franchise site.
type FranchiseKey string

func (k FranchiseKey) Table() string  { return "franchise" }
func (k FranchiseKey) String() string { return string(k) }
func (k FranchiseKey) factor(r *Registry) (Factor, bool) {
	f, ok := r.franchises[string(k)]
	return f, ok
}

// InvestmentSectorKey looks up average investment intensity by sector.
type InvestmentSectorKey string

func (k InvestmentSectorKey) Table() string  { return "investment" }
func (k InvestmentSectorKey) String() string { return string(k) }
func (k InvestmentSectorKey) factor(r *Registry) (Factor, bool) {
	f, ok := r.investments[string(k)]
	return f, ok
}

// GridKey looks up regional electricity grid factors in kg CO2e per kWh.
type GridKey string

func (k GridKey) Table() string  { return "grid" }
func (k GridKey) String() string { return string(k) }
func (k GridKey) factor(r *Registry) (Factor, bool) {
	f, ok := r.grid[string(k)]
	return f, ok
}
