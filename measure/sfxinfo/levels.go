package sfxinfo

import "math"

// Levels holds time-domain statistics of a mono sample stream.
type Levels struct {
	Frames int
	DC     float64 // mean
	Peak   float64 // max |x|
	// PeakPos is the frame index of the first sample reaching Peak.
	PeakPos       int
	RMS           float64
	CrestFactor   float64 // Peak / RMS, 0 for silence
	ZeroCrossings int
	// Clipped counts frames at or beyond full scale.
	Clipped int
}

// LevelMeter accumulates Levels block by block, so a note can be measured
// while it is being produced. The zero value is ready to use.
type LevelMeter struct {
	n       int
	mean    float64
	sumSq   float64
	peak    float64
	peakPos int
	zc      int
	clipped int
	last    float32
}

// Update adds a block of samples.
func (m *LevelMeter) Update(block []float32) {
	for _, s := range block {
		x := float64(s)

		m.n++
		m.mean += (x - m.mean) / float64(m.n)
		m.sumSq += x * x

		a := math.Abs(x)
		if a > m.peak {
			m.peak = a
			m.peakPos = m.n - 1
		}
		if a >= 1 {
			m.clipped++
		}

		if m.n > 1 && s != 0 && m.last != 0 && (m.last < 0) != (s < 0) {
			m.zc++
		}
		m.last = s
	}
}

// Levels returns the statistics of everything added so far.
func (m *LevelMeter) Levels() Levels {
	if m.n == 0 {
		return Levels{}
	}

	l := Levels{
		Frames:        m.n,
		DC:            m.mean,
		Peak:          m.peak,
		PeakPos:       m.peakPos,
		RMS:           mathSqrt(m.sumSq / float64(m.n)),
		ZeroCrossings: m.zc,
		Clipped:       m.clipped,
	}
	if l.RMS > 0 {
		l.CrestFactor = l.Peak / l.RMS
	}

	return l
}

// Reset clears the meter for reuse.
func (m *LevelMeter) Reset() {
	*m = LevelMeter{}
}
