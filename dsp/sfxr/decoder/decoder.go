package decoder

import (
	"math"

	"github.com/cwbudde/algo-sfxr/dsp/core"
	"github.com/cwbudde/algo-sfxr/dsp/prng"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/params"
)

// QuickSeed is the noise seed used by StartQuick.
const QuickSeed uint64 = 0x89866ae81aa30a2b

const (
	phaserLen  = 1024
	phaserMask = phaserLen - 1
	noiseLen   = 32

	oversample = 8
	minPeriod  = 8

	// envEpsilon stands in for a zero-length envelope stage as a divisor.
	envEpsilon = 1e-6
)

// Binary32 scale factors applied in double precision.
const (
	tenth     = float64(float32(0.1))
	hundredth = float64(float32(0.01))
)

type envStage int

const (
	stageAttack envStage = iota
	stageSustain
	stageDecay
	stageDone
)

// Decoder is one playing sfxr voice. The zero value is idle.
type Decoder struct {
	params  params.Params
	seed    uint64
	rng     prng.LCG
	playing bool

	phase      int
	period     int
	fperiod    float64
	fmaxperiod float64
	fslide     float64
	fdslide    float64

	squareDuty  float32
	squareSlide float32

	envStage  envStage
	envTime   int
	envLength [3]int
	envVol    float32

	fphase  float32
	fdphase float32
	iphase  int
	ipp     int
	phaser  [phaserLen]float32
	noise   [noiseLen]float32

	fltp   float32
	fltdp  float32
	fltw   float32
	fltwD  float32
	fltdmp float32
	fltphp float32
	flthp  float32
	flthpD float32

	vibPhase float32
	vibSpeed float32
	vibAmp   float32

	repTime  int
	repLimit int
	arpTime  int
	arpLimit int
	arpMod   float64
}

// New returns a decoder already playing p with the given noise seed.
func New(p params.Params, seed uint64) *Decoder {
	d := &Decoder{}
	d.Start(p, seed)
	return d
}

// Start copies p, seeds the noise generator and begins playing from the
// first sample.
func (d *Decoder) Start(p params.Params, seed uint64) {
	d.params = p
	d.seed = seed
	d.Restart()
}

// StartQuick starts p with QuickSeed.
func (d *Decoder) StartQuick(p params.Params) {
	d.Start(p, QuickSeed)
}

// Restart replays the stored parameters from the beginning with the stored
// seed, so the restarted stream repeats the first run sample for sample.
func (d *Decoder) Restart() {
	d.rng.Seed(d.seed)
	d.reset(false)
	d.playing = true
}

// Playing reports whether the voice is still producing sound.
func (d *Decoder) Playing() bool {
	return d.playing
}

// Params returns the decoder's copy of its parameters.
func (d *Decoder) Params() params.Params {
	return d.params
}

// Seed returns the noise seed passed to Start.
func (d *Decoder) Seed() uint64 {
	return d.seed
}

// reset derives the synthesis constants from the parameters. A soft reset,
// triggered by the repeat timer, keeps the oscillator phase and only
// re-derives pitch, slide, duty and arpeggio; envelope, filters, phaser and
// noise carry on.
func (d *Decoder) reset(soft bool) {
	p := &d.params

	if !soft {
		d.phase = 0
	}

	d.fperiod = 100.0 / (float64(p.BaseFreq*p.BaseFreq) + 0.001)
	d.period = int(d.fperiod)
	d.fmaxperiod = 100.0 / (float64(p.FreqLimit*p.FreqLimit) + 0.001)
	d.fslide = 1.0 - float64(core.Pow32(p.FreqRamp, 3)*0.01)
	d.fdslide = -core.Pow32(p.FreqDRamp, 3) * 0.000001
	d.squareDuty = 0.5 - float32(p.Duty*0.5)
	d.squareSlide = -p.DutyRamp * 0.00005

	if p.ArpMod >= 0 {
		d.arpMod = 1.0 - float64(core.Pow32(p.ArpMod, 2)*0.9)
	} else {
		d.arpMod = 1.0 + float64(core.Pow32(p.ArpMod, 2)*10.0)
	}

	d.arpTime = 0
	d.arpLimit = timerLimit(p.ArpSpeed)
	if p.ArpSpeed == 1 {
		d.arpLimit = 0
	}

	if soft {
		return
	}

	d.fltp = 0
	d.fltdp = 0
	d.fltw = float32(core.Pow32(p.LPFFreq, 3) * tenth)
	d.fltwD = 1 + float32(p.LPFRamp*0.0001)
	d.fltdmp = float32(5.0 / (1.0 + float64(core.Pow32(p.LPFResonance, 2)*20.0)) * float64(0.01+d.fltw))
	if d.fltdmp > 0.8 {
		d.fltdmp = 0.8
	}

	d.fltphp = 0
	d.flthp = float32(core.Pow32(p.HPFFreq, 2) * tenth)
	d.flthpD = float32(1.0 + float64(p.HPFRamp*0.0003))

	d.vibPhase = 0
	d.vibSpeed = float32(core.Pow32(p.VibSpeed, 2) * hundredth)
	d.vibAmp = p.VibStrength * 0.5

	d.envVol = 0
	d.envStage = stageAttack
	d.envTime = 0
	d.envLength[stageAttack] = int(float32(p.EnvAttack*p.EnvAttack) * 100000)
	d.envLength[stageSustain] = int(float32(p.EnvSustain*p.EnvSustain) * 100000)
	d.envLength[stageDecay] = int(float32(p.EnvDecay*p.EnvDecay) * 100000)

	d.fphase = float32(core.Pow32(p.PhaOffset, 2) * 1020)
	if p.PhaOffset < 0 {
		d.fphase = -d.fphase
	}
	d.fdphase = float32(core.Pow32(p.PhaRamp, 2))
	if p.PhaRamp < 0 {
		d.fdphase = -d.fdphase
	}
	d.iphase = phaserTap(d.fphase)
	d.ipp = 0

	d.phaser = [phaserLen]float32{}
	d.refillNoise()

	d.repTime = 0
	d.repLimit = timerLimit(p.RepeatSpeed)
	if p.RepeatSpeed == 0 {
		d.repLimit = 0
	}
}

// timerLimit maps a speed in [0, 1] onto a sample count in [32, 20032].
func timerLimit(speed float32) int {
	return int(float64(core.Pow32(1-speed, 2)*20000) + 32)
}

// phaserTap converts the phaser offset into a delay in [0, 1023].
func phaserTap(fphase float32) int {
	f := math.Abs(float64(fphase))
	if !(f < phaserMask) {
		return phaserMask
	}
	return int(f)
}

func (d *Decoder) refillNoise() {
	for i := range d.noise {
		d.noise[i] = d.rng.Float(2) - 1
	}
}

func envDivisor(length int) float32 {
	if length <= 0 {
		return envEpsilon
	}
	return float32(length)
}
