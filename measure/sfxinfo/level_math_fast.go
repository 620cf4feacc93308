//go:build fastmath

package sfxinfo

import (
	"github.com/meko-christian/algo-approx"
)

// minDB floors the level of silence.
const minDB = -200.0

// ln10 converts natural logarithms to base 10.
const ln10 = 2.302585092994045684017991454684

// amplitudeDB computes 20*log10(x) using fast approximation.
func amplitudeDB(x float64) float64 {
	if x <= 0 {
		return minDB
	}
	return max(20*approx.FastLog(x)/ln10, minDB)
}

// mathSqrt computes sqrt(x) using fast approximation.
func mathSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
