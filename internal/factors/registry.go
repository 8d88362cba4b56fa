package factors

// Registry bundles the factor tables behind one polymorphic lookup. The
// default registry wraps the package-level tables; tests may construct a
// Registry with substitute tables.
type Registry struct {
	fuels       map[string]Factor
	materials   map[string]Factor
	travel      map[string]Factor
	fugitives   map[string]Factor
	processes   map[string]Factor
	waste       map[string]map[Treatment]Factor
	transport   map[string]map[string]Factor
	eeio        map[string]Factor
	buildings   map[string]Factor
	franchises  map[string]Factor
	investments map[string]Factor
	grid        map[string]Factor
}

// defaultRegistry is built once from the package tables. It is never mutated
// after init, so concurrent reads need no synchronization.
var defaultRegistry = &Registry{
	fuels:       FuelFactors,
	materials:   MaterialFactors,
	travel:      TravelFactors,
	fugitives:   FugitiveGWP,
	processes:   ProcessFactors,
	waste:       WasteFactors,
	transport:   TransportFactors,
	eeio:        EEIOFactors,
	buildings:   BuildingIntensity,
	franchises:  FranchiseAverages,
	investments: InvestmentSectorFactors,
	grid:        GridFactors,
}

// Default returns the registry backed by the built-in tables.
func Default() *Registry { return defaultRegistry }

// Lookup resolves a key to its Factor entry. It fails with
// ErrUnknownFactorKey (wrapped in a LookupError) if the key is absent.
func (r *Registry) Lookup(k Key) (Factor, error) {
	f, ok := k.factor(r)
	if !ok {
		return Factor{}, &LookupError{Table: k.Table(), Key: k.String(), cause: ErrUnknownFactorKey}
	}
	return f, nil
}

// Resolve resolves a key and unit to a kg CO2e per-unit value. It fails with
// ErrUnknownFactorKey if the key is absent and ErrUnsupportedUnit if the unit
// is not in the resolved entry's unit set. No default is ever substituted.
func (r *Registry) Resolve(k Key, unit string) (float64, error) {
	f, err := r.Lookup(k)
	if err != nil {
		return 0, err
	}
	v, err := f.Resolve(unit)
	if err != nil {
		return 0, &LookupError{Table: k.Table(), Key: k.String(), Unit: unit, cause: err}
	}
	return v, nil
}

// Table returns a flat name -> Factor view of one table for listing
// surfaces (CLI, HTTP). Nested tables are flattened with "type/sub" keys.
// The second return is false for an unknown table name.
func (r *Registry) Table(name string) (map[string]Factor, bool) {
	switch name {
	case "fuel":
		return copyTable(r.fuels), true
	case "material":
		return copyTable(r.materials), true
	case "travel":
		return copyTable(r.travel), true
	case "fugitive":
		return copyTable(r.fugitives), true
	case "process":
		return copyTable(r.processes), true
	case "eeio":
		return copyTable(r.eeio), true
	case "building":
		return copyTable(r.buildings), true
	case "franchise":
		return copyTable(r.franchises), true
	case "investment":
		return copyTable(r.investments), true
	case "grid":
		return copyTable(r.grid), true
	case "waste":
		out := make(map[string]Factor)
		for wasteType, byTreatment := range r.waste {
			for treatment, f := range byTreatment {
				out[wasteType+"/"+string(treatment)] = f
			}
		}
		return out, true
	case "transport":
		out := make(map[string]Factor)
		for mode, byVehicle := range r.transport {
			for vehicle, f := range byVehicle {
				out[mode+"/"+vehicle] = f
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// TableNames lists the registry's table names in stable order.
func TableNames() []string {
	return []string{
		"fuel", "material", "travel", "fugitive", "process",
		"waste", "transport", "eeio", "building", "franchise",
		"investment", "grid",
	}
}

func copyTable(src map[string]Factor) map[string]Factor {
	out := make(map[string]Factor, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
