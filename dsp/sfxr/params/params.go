// Package params defines the sfxr parameter model: a wave type, 22 normalized
// shape parameters and a volume.
package params

import (
	"fmt"

	"github.com/cwbudde/algo-sfxr/dsp/core"
)

// Wave selects the oscillator waveform.
type Wave int32

const (
	Square Wave = iota
	Sawtooth
	Sine
	Noise
)

var waveNames = [...]string{"square", "sawtooth", "sine", "noise"}

// String returns the lower-case waveform name.
func (w Wave) String() string {
	if w >= 0 && int(w) < len(waveNames) {
		return waveNames[w]
	}
	return fmt.Sprintf("wave(%d)", int32(w))
}

// Params describes one sound effect. Unipolar fields live in [0, 1], bipolar
// fields in [-1, 1]; see Fields for the domain of each.
type Params struct {
	WaveType Wave

	BaseFreq  float32
	FreqLimit float32
	FreqRamp  float32
	FreqDRamp float32
	Duty      float32
	DutyRamp  float32

	VibStrength float32
	VibSpeed    float32

	EnvAttack  float32
	EnvSustain float32
	EnvDecay   float32
	EnvPunch   float32

	LPFResonance float32
	LPFFreq      float32
	LPFRamp      float32
	HPFFreq      float32
	HPFRamp      float32

	PhaOffset float32
	PhaRamp   float32

	RepeatSpeed float32

	ArpSpeed float32
	ArpMod   float32

	SoundVol float32
}

// Default returns the canonical baseline: a square wave at base frequency
// 0.3 with a short sustain/decay envelope, the low-pass filter fully open and
// half volume.
func Default() Params {
	return Params{
		WaveType:   Square,
		BaseFreq:   0.3,
		EnvSustain: 0.3,
		EnvDecay:   0.4,
		LPFFreq:    1,
		SoundVol:   0.5,
	}
}

// Clamp forces every numeric field into its domain.
func (p *Params) Clamp() {
	for _, f := range fields {
		v := f.ptr(p)
		*v = core.Clamp(*v, f.Min(), 1)
	}
}

// InRange reports whether every numeric field lies within its domain.
func (p Params) InRange() bool {
	for _, f := range fields {
		v := *f.ptr(&p)
		if v < f.Min() || v > 1 {
			return false
		}
	}
	return true
}
