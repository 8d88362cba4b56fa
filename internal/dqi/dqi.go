// Package dqi implements the data quality indicator scorer: a weighted
// average over five 1-5 pedigree dimensions (1 = best) mapped into four
// ordered rating bands.
package dqi

// Indicator holds the five quality dimensions of one activity record. Each
// dimension is an integer in [1,5] where 1 is the best quality; out-of-range
// values are clamped at scoring time.
type Indicator struct {
	Technological int `json:"technologicalRep" yaml:"technological"`
	Temporal      int `json:"temporalRep" yaml:"temporal"`
	Geographical  int `json:"geographicalRep" yaml:"geographical"`
	Completeness  int `json:"completeness" yaml:"completeness"`
	Reliability   int `json:"reliability" yaml:"reliability"`
}

// Weights assigns a relative weight to each dimension. A zero-sum weight
// vector falls back to the equal-weight default.
type Weights struct {
	Technological float64 `json:"technologicalRep" yaml:"technological"`
	Temporal      float64 `json:"temporalRep" yaml:"temporal"`
	Geographical  float64 `json:"geographicalRep" yaml:"geographical"`
	Completeness  float64 `json:"completeness" yaml:"completeness"`
	Reliability   float64 `json:"reliability" yaml:"reliability"`
}

// DefaultWeights weighs all five dimensions equally.
func DefaultWeights() Weights {
	return Weights{
		Technological: 1,
		Temporal:      1,
		Geographical:  1,
		Completeness:  1,
		Reliability:   1,
	}
}

func (w Weights) sum() float64 {
	return w.Technological + w.Temporal + w.Geographical + w.Completeness + w.Reliability
}

// Rating is the bucketed quality band of a score.
type Rating string

const (
	RatingHigh       Rating = "high"
	RatingMediumHigh Rating = "medium-high"
	RatingMedium     Rating = "medium"
	RatingLow        Rating = "low"
)

// Thresholds are the upper bounds of the first three rating bands. They must
// be strictly increasing within (1,5) so the four bands partition [1,5] into
// ordered, contiguous, non-overlapping intervals.
type Thresholds struct {
	High       float64 `json:"high" yaml:"high"`
	MediumHigh float64 `json:"mediumHigh" yaml:"medium_high"`
	Medium     float64 `json:"medium" yaml:"medium"`
}

// DefaultThresholds returns the standard 1.5 / 2.5 / 3.5 band boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{High: 1.5, MediumHigh: 2.5, Medium: 3.5}
}

// Valid reports whether the thresholds are strictly increasing inside (1,5).
func (t Thresholds) Valid() bool {
	return 1 < t.High && t.High < t.MediumHigh && t.MediumHigh < t.Medium && t.Medium < 5
}

// Score computes the weighted average of the indicator's dimensions. The
// result is always within [1,5]. All-best input scores exactly 1 and
// all-worst exactly 5.
func Score(ind Indicator, w Weights) float64 {
	if w.sum() <= 0 {
		w = DefaultWeights()
	}
	total := w.Technological*clampDim(ind.Technological) +
		w.Temporal*clampDim(ind.Temporal) +
		w.Geographical*clampDim(ind.Geographical) +
		w.Completeness*clampDim(ind.Completeness) +
		w.Reliability*clampDim(ind.Reliability)
	return total / w.sum()
}

// Rate maps a score into its rating band. Invalid thresholds fall back to
// the defaults rather than producing overlapping bands.
func Rate(score float64, t Thresholds) Rating {
	if !t.Valid() {
		t = DefaultThresholds()
	}
	switch {
	case score <= t.High:
		return RatingHigh
	case score <= t.MediumHigh:
		return RatingMediumHigh
	case score <= t.Medium:
		return RatingMedium
	default:
		return RatingLow
	}
}

func clampDim(d int) float64 {
	if d < 1 {
		return 1
	}
	if d > 5 {
		return 5
	}
	return float64(d)
}
