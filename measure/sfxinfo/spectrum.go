package sfxinfo

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-sfxr/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

const (
	// maxFFTSize caps the analysis transform; longer effects are analysed
	// over their first maxFFTSize frames.
	maxFFTSize = 1 << 16
	minFFTSize = 64

	rolloffFraction = 0.85
)

type spectral struct {
	size        int
	dominantHz  float64
	dominantAmp float64
	centroidHz  float64
	rolloffHz   float64
}

// scratch holds the transform buffers reused between analyses.
type scratch struct {
	signal []float64
	win    []float64
	in     []complex128
	out    []complex128
	re     []float64
	im     []float64
	mag    []float64
}

// spectrum windows the start of samples, zero-pads it to a power of two and
// summarises the single-sided amplitude spectrum.
func (s *scratch) spectrum(samples []float32, sampleRate float64) (spectral, error) {
	n := min(len(samples), maxFFTSize)
	size := fftSize(n)

	s.signal = core.EnsureLen(s.signal, n)
	core.Widen(s.signal, samples[:n])

	if len(s.win) != n {
		s.win = hann(n)
	}
	vecmath.MulBlockInPlace(s.signal, s.win)

	s.in = core.EnsureLen(s.in, size)
	for i, v := range s.signal {
		s.in[i] = complex(v, 0)
	}
	clear(s.in[n:])

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return spectral{}, fmt.Errorf("sfxinfo: fft plan: %w", err)
	}

	s.out = core.EnsureLen(s.out, size)
	if err := plan.Forward(s.out, s.in); err != nil {
		return spectral{}, fmt.Errorf("sfxinfo: fft: %w", err)
	}

	bins := size/2 + 1
	s.re = core.EnsureLen(s.re, bins)
	s.im = core.EnsureLen(s.im, bins)
	for i := range bins {
		s.re[i] = real(s.out[i])
		s.im[i] = imag(s.out[i])
	}

	s.mag = core.EnsureLen(s.mag, bins)
	mag := s.mag
	vecmath.Magnitude(mag, s.re, s.im)

	var winSum float64
	for _, w := range s.win {
		winSum += w
	}
	if winSum > 0 {
		vecmath.ScaleBlock(mag, mag, 2/winSum)
	}

	binHz := sampleRate / float64(size)

	peak := 1
	for k := 2; k < bins; k++ {
		if mag[k] > mag[peak] {
			peak = k
		}
	}

	offset := 0.0
	if peak > 1 && peak < bins-1 {
		offset = parabolicOffset(mag[peak-1], mag[peak], mag[peak+1])
	}

	return spectral{
		size:        size,
		dominantHz:  (float64(peak) + offset) * binHz,
		dominantAmp: mag[peak],
		centroidHz:  centroid(mag, binHz),
		rolloffHz:   rolloff(mag, binHz, rolloffFraction),
	}, nil
}

// fftSize returns the power of two at or above n, within the analysis limits.
func fftSize(n int) int {
	size := minFFTSize
	for size < n && size < maxFFTSize {
		size <<= 1
	}
	return size
}

func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

// parabolicOffset returns the vertex offset in bins of the parabola through
// three neighbouring magnitudes.
func parabolicOffset(left, center, right float64) float64 {
	den := left - 2*center + right
	if den == 0 {
		return 0
	}
	return core.Clamp(0.5*(left-right)/den, -0.5, 0.5)
}

// centroid returns sum(f*|X|) / sum(|X|) over the non-DC bins.
func centroid(mag []float64, binHz float64) float64 {
	var num, den float64
	for k := 1; k < len(mag); k++ {
		num += float64(k) * binHz * mag[k]
		den += mag[k]
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// rolloff returns the lowest frequency below which fraction of the non-DC
// energy lies.
func rolloff(mag []float64, binHz, fraction float64) float64 {
	var total float64
	for k := 1; k < len(mag); k++ {
		total += mag[k] * mag[k]
	}
	if total == 0 {
		return 0
	}

	threshold := fraction * total
	var acc float64
	for k := 1; k < len(mag); k++ {
		acc += mag[k] * mag[k]
		if acc >= threshold {
			return float64(k) * binHz
		}
	}
	return float64(len(mag)-1) * binHz
}
