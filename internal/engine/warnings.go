package engine

import (
	"errors"

	"github.com/carbonscope/carbonscope/internal/factors"
)

// WarningKind classifies a per-source data problem. Warnings never abort a
// computation; the engine degrades per row and reports what it skipped or
// computed through.
type WarningKind string

const (
	// WarnMissingFactor: a lookup key was absent from the registry. The
	// affected contribution is zero. Deduplicated per distinct
	// (table, key, unit) during aggregation.
	WarnMissingFactor WarningKind = "missing_factor"

	// WarnUnitMismatch: the declared unit is not in the resolved factor's
	// unit set. Fatal for the row's affected bucket (zero), never for the
	// aggregation of other rows.
	WarnUnitMismatch WarningKind = "unit_mismatch"

	// WarnInvalidNumeric: a non-finite or negative-where-disallowed value
	// was coerced to zero.
	WarnInvalidNumeric WarningKind = "invalid_numeric"

	// WarnOverAllocatedMix: named power-mix buckets exceed total consumption
	// in a month. The engine computes with the supplied figures anyway and
	// flags the month for correction.
	WarnOverAllocatedMix WarningKind = "over_allocated_mix"

	// WarnMethodMismatch: the activity variant is not a valid calculation
	// method for the source's category. The row contributes zero.
	WarnMethodMismatch WarningKind = "method_mismatch"
)

// Warning is one structured data-entry problem attached to a result.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	SourceID string      `json:"sourceId,omitempty"`
	Category Category    `json:"category,omitempty"`
	Table    string      `json:"table,omitempty"`
	Key      string      `json:"key,omitempty"`
	Unit     string      `json:"unit,omitempty"`
	Month    int         `json:"month,omitempty"` // 1-12, for per-month mix findings
	Detail   string      `json:"detail,omitempty"`
}

// dedupKey identifies a warning for once-per-combination reporting.
func (w Warning) dedupKey() string {
	return string(w.Kind) + "|" + w.Table + "|" + w.Key + "|" + w.Unit
}

// lookupWarning converts a registry resolution error into its warning,
// distinguishing unknown keys from unit mismatches.
func lookupWarning(src Source, err error) Warning {
	w := Warning{Kind: WarnMissingFactor, SourceID: src.ID, Category: src.Category, Detail: err.Error()}

	var lookupErr *factors.LookupError
	if errors.As(err, &lookupErr) {
		w.Table = lookupErr.Table
		w.Key = lookupErr.Key
		w.Unit = lookupErr.Unit
	}
	if errors.Is(err, factors.ErrUnsupportedUnit) {
		w.Kind = WarnUnitMismatch
	}
	return w
}
