package engine

import (
	"github.com/carbonscope/carbonscope/internal/dqi"
)

// Facility is the collaborator record the aggregator consults for
// equity-share weighting. A facility absent from the map, or one with a
// zero share, counts at full share.
type Facility struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	EquityShare float64 `json:"equityShare"` // fraction in (0,1]
}

func (f Facility) share() float64 {
	s := fraction(f.EquityShare)
	if s == 0 {
		return 1
	}
	return s
}

// Totals is the aggregate of many per-source results for the reporting
// layer: scope totals, per-category totals and deduplicated warnings.
type Totals struct {
	Scope1         float64              `json:"scope1"`
	Scope2Location float64              `json:"scope2Location"`
	Scope2Market   float64              `json:"scope2Market"`
	Scope3         float64              `json:"scope3"`
	ByCategory     map[Category]float64 `json:"byCategory"`
	Sources        int                  `json:"sources"`

	// DQIScore is the mean quality score over sources carrying an
	// indicator; zero when none do. DQIRating buckets it.
	DQIScore  float64    `json:"dqiScore,omitempty"`
	DQIRating dqi.Rating `json:"dqiRating,omitempty"`

	Warnings []Warning `json:"warnings,omitempty"`
}

// Aggregate computes every source independently and sums the results into
// scope and category totals, weighting each source by its facility's equity
// share. Missing-factor warnings are surfaced once per distinct
// (table, key, unit) combination rather than once per row; all other
// warnings pass through untouched. One bad row never aborts the rest.
func (c *Calculator) Aggregate(sources []Source, facilities map[string]Facility) Totals {
	totals := Totals{
		ByCategory: make(map[Category]float64),
		Sources:    len(sources),
	}

	seenFactorKeys := make(map[string]bool)
	var dqiSum float64
	var dqiCount int

	for _, src := range sources {
		res := c.Calculate(src)

		share := 1.0
		if f, ok := facilities[src.FacilityID]; ok {
			share = f.share()
		}

		totals.Scope1 += res.Scope1 * share
		totals.Scope2Location += res.Scope2Location * share
		totals.Scope2Market += res.Scope2Market * share
		totals.Scope3 += res.Scope3 * share
		totals.ByCategory[src.Category] += res.Total() * share

		for _, w := range res.Warnings {
			if w.Kind == WarnMissingFactor || w.Kind == WarnUnitMismatch {
				key := w.dedupKey()
				if seenFactorKeys[key] {
					continue
				}
				seenFactorKeys[key] = true
			}
			totals.Warnings = append(totals.Warnings, w)
		}

		if src.Quality != nil {
			dqiSum += dqi.Score(*src.Quality, c.policy.DQIWeights)
			dqiCount++
		}
	}

	if dqiCount > 0 {
		totals.DQIScore = dqiSum / float64(dqiCount)
		totals.DQIRating = dqi.Rate(totals.DQIScore, c.policy.DQIThresholds)
	}

	return totals
}
