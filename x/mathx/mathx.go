package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. Swapped bounds are tolerated.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	return min(max(v, lo), hi)
}

// Grow returns v increased by pct percent, truncated.
// Used for safety margins on measured timings.
func Grow[T constraints.Integer](v T, pct T) T {
	return v + v*pct/100
}

// Halve returns v minus half of v, rounded so it never reaches zero
// from a positive value.
func Halve[T constraints.Integer](v T) T {
	r := v - v/2
	if v > 0 && r == 0 {
		return 1
	}
	return r
}
