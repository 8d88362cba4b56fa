package engine

import "math"

// sanitize coerces non-finite values to zero. Every numeric field is passed
// through here at read time so NaN and Inf never reach a result.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// quantity coerces a value that must be a non-negative amount of activity.
func quantity(v float64) float64 {
	v = sanitize(v)
	if v < 0 {
		return 0
	}
	return v
}

// fraction coerces a value expected in [0,1].
func fraction(v float64) float64 {
	v = quantity(v)
	if v > 1 {
		return 1
	}
	return v
}
