//go:build !fastmath

package sfxinfo

import "math"

// minDB floors the level of silence.
const minDB = -200.0

func amplitudeDB(x float64) float64 {
	if x <= 0 {
		return minDB
	}
	return max(20*math.Log10(x), minDB)
}

func mathSqrt(x float64) float64 {
	return math.Sqrt(x)
}
