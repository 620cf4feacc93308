package core

import "math"

const defaultEpsilon = 1e-12

// Float is the set of sample types handled by the engine.
type Float interface {
	~float32 | ~float64
}

// Clamp limits value to the inclusive range [min, max].
func Clamp[T Float](value, min, max T) T {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Pow32 raises a binary32 value to p using float64 arithmetic and returns
// the float64 result, matching C's promotion of float arguments to pow.
func Pow32(x float32, p float64) float64 {
	return math.Pow(float64(x), p)
}
