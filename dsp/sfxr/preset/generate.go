package preset

import (
	"github.com/cwbudde/algo-sfxr/dsp/core"
	"github.com/cwbudde/algo-sfxr/dsp/prng"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/params"
)

var waveTypes = [...]params.Wave{params.Square, params.Sawtooth, params.Sine, params.Noise}

// mutationOrder lists the fields visited by one Mutate round. FreqLimit and
// SoundVol are never mutated.
var mutationOrder = [...]params.Field{
	params.BaseFreq,
	params.FreqRamp,
	params.FreqDRamp,
	params.Duty,
	params.DutyRamp,
	params.VibStrength,
	params.VibSpeed,
	params.EnvAttack,
	params.EnvSustain,
	params.EnvDecay,
	params.EnvPunch,
	params.LPFResonance,
	params.LPFFreq,
	params.LPFRamp,
	params.HPFFreq,
	params.HPFRamp,
	params.PhaOffset,
	params.PhaRamp,
	params.RepeatSpeed,
	params.ArpSpeed,
	params.ArpMod,
}

// pow evaluates in float64 and rounds once to binary32.
func pow(x float32, p float64) float32 {
	return float32(core.Pow32(x, p))
}

// Generate builds the parameters for preset, then applies mutations rounds of
// Mutate, all driven by one generator seeded with seed.
func Generate(preset Preset, mutations uint, seed uint64) params.Params {
	rng := prng.New(seed)
	p := params.Default()

	switch preset {
	case Random:
		random(&p, &rng)
	case Pickup:
		pickup(&p, &rng)
	case Laser:
		laser(&p, &rng)
	case Explosion:
		explosion(&p, &rng)
	case Powerup:
		powerup(&p, &rng)
	case Hit:
		hit(&p, &rng)
	case Jump:
		jump(&p, &rng)
	case Blip:
		blip(&p, &rng)
	}

	p.Clamp()

	for i := uint(0); i < mutations; i++ {
		Mutate(&p, &rng)
	}

	return p
}

// Mutate runs one mutation round: each field in a fixed order gets a coin
// flip, and on heads a perturbation in [-0.05, 0.05]. The result is clamped
// once at the end of the round.
func Mutate(p *params.Params, rng *prng.LCG) {
	for _, f := range mutationOrder {
		if rng.Bool() {
			v := p.Ptr(f)
			*v += rng.Float(0.1) - 0.05
		}
	}
	p.Clamp()
}

func random(p *params.Params, rng *prng.LCG) {
	p.WaveType = waveTypes[rng.Uint(3)]
	p.BaseFreq = pow(rng.Float(2)-1, 2)

	if rng.Bool() {
		p.BaseFreq = float32(core.Pow32(rng.Float(2)-1, 3) + 0.5)
	}

	p.FreqLimit = 0
	p.FreqRamp = pow(rng.Float(2)-1, 5)

	if p.BaseFreq > 0.7 && p.FreqRamp > 0.2 {
		p.FreqRamp = -p.FreqRamp
	}

	if p.BaseFreq < 0.2 && p.FreqRamp < -0.05 {
		p.FreqRamp = -p.FreqRamp
	}

	p.FreqDRamp = pow(rng.Float(2)-1, 3)
	p.Duty = rng.Float(2) - 1
	p.DutyRamp = pow(rng.Float(2)-1, 3)
	p.VibStrength = pow(rng.Float(2)-1, 3)
	p.VibSpeed = rng.Float(2) - 1
	p.EnvAttack = pow(rng.Float(2)-1, 3)
	p.EnvSustain = pow(rng.Float(2)-1, 2)
	p.EnvDecay = rng.Float(2) - 1
	p.EnvPunch = pow(rng.Float(0.8), 2)

	if p.EnvAttack+p.EnvSustain+p.EnvDecay < 0.2 {
		p.EnvSustain += 0.2 + rng.Float(0.3)
		p.EnvDecay += 0.2 + rng.Float(0.3)
	}

	p.LPFResonance = rng.Float(2) - 1
	p.LPFFreq = float32(1 - core.Pow32(rng.Float(1), 3))
	p.LPFRamp = pow(rng.Float(2)-1, 3)

	if p.LPFFreq < 0.1 && p.LPFRamp < -0.05 {
		p.LPFRamp = -p.LPFRamp
	}

	p.HPFFreq = pow(rng.Float(1), 5)
	p.HPFRamp = pow(rng.Float(2)-1, 5)
	p.PhaOffset = pow(rng.Float(2)-1, 3)
	p.PhaRamp = pow(rng.Float(2)-1, 3)
	p.RepeatSpeed = rng.Float(2) - 1
	p.ArpSpeed = rng.Float(2) - 1
	p.ArpMod = rng.Float(2) - 1
}

func pickup(p *params.Params, rng *prng.LCG) {
	p.BaseFreq = 0.4 + rng.Float(0.5)
	p.EnvAttack = 0
	p.EnvSustain = rng.Float(0.1)
	p.EnvDecay = 0.1 + rng.Float(0.4)
	p.EnvPunch = 0.3 + rng.Float(0.3)

	if rng.Bool() {
		p.ArpSpeed = 0.5 + rng.Float(0.2)
		p.ArpMod = 0.2 + rng.Float(0.4)
	}
}

func laser(p *params.Params, rng *prng.LCG) {
	p.WaveType = waveTypes[rng.Uint(2)]

	if p.WaveType == params.Sine && rng.Bool() {
		p.WaveType = waveTypes[rng.Uint(1)]
	}

	p.BaseFreq = 0.5 + rng.Float(0.5)
	p.FreqLimit = p.BaseFreq - 0.2 - rng.Float(0.6)

	if p.FreqLimit < 0.2 {
		p.FreqLimit = 0.2
	}

	p.FreqRamp = -0.15 - rng.Float(0.2)

	if rng.Uint(2) == 0 {
		p.BaseFreq = 0.3 + rng.Float(0.6)
		p.FreqLimit = rng.Float(0.1)
		p.FreqRamp = -0.35 - rng.Float(0.3)
	}

	if rng.Bool() {
		p.Duty = rng.Float(0.5)
		p.DutyRamp = rng.Float(0.2)
	} else {
		p.Duty = 0.4 + rng.Float(0.5)
		p.DutyRamp = -rng.Float(0.7)
	}

	p.EnvAttack = 0
	p.EnvSustain = 0.1 + rng.Float(0.2)
	p.EnvDecay = rng.Float(0.4)

	if rng.Bool() {
		p.EnvPunch = rng.Float(0.3)
	}

	if rng.Uint(2) == 0 {
		p.PhaOffset = rng.Float(0.2)
		p.PhaRamp = -rng.Float(0.2)
	}

	if rng.Bool() {
		p.HPFFreq = rng.Float(0.3)
	}
}

func explosion(p *params.Params, rng *prng.LCG) {
	p.WaveType = params.Noise

	if rng.Bool() {
		p.BaseFreq = 0.1 + rng.Float(0.4)
		p.FreqRamp = -0.1 + rng.Float(0.4)
	} else {
		p.BaseFreq = 0.2 + rng.Float(0.7)
		p.FreqRamp = -0.2 - rng.Float(0.2)
	}

	p.BaseFreq *= p.BaseFreq

	if rng.Uint(4) == 0 {
		p.FreqRamp = 0
	}

	if rng.Uint(2) == 0 {
		p.RepeatSpeed = 0.3 + rng.Float(0.5)
	}

	p.EnvAttack = 0
	p.EnvSustain = 0.1 + rng.Float(0.3)
	p.EnvDecay = rng.Float(0.5)

	if !rng.Bool() {
		p.PhaOffset = -0.3 + rng.Float(0.9)
		p.PhaRamp = -rng.Float(0.3)
	}

	p.EnvPunch = 0.2 + rng.Float(0.6)

	if rng.Bool() {
		p.VibStrength = rng.Float(0.7)
		p.VibSpeed = rng.Float(0.6)
	}

	if rng.Uint(2) == 0 {
		p.ArpSpeed = 0.6 + rng.Float(0.3)
		p.ArpMod = 0.8 - rng.Float(1.6)
	}
}

func powerup(p *params.Params, rng *prng.LCG) {
	if rng.Bool() {
		p.WaveType = params.Sawtooth
	} else {
		p.Duty = rng.Float(0.6)
	}

	if rng.Bool() {
		p.BaseFreq = 0.2 + rng.Float(0.3)
		p.FreqRamp = 0.1 + rng.Float(0.4)
		p.RepeatSpeed = 0.4 + rng.Float(0.4)
	} else {
		p.BaseFreq = 0.2 + rng.Float(0.3)
		p.FreqRamp = 0.05 + rng.Float(0.2)

		if rng.Bool() {
			p.VibStrength = rng.Float(0.7)
			p.VibSpeed = rng.Float(0.6)
		}
	}

	p.EnvAttack = 0
	p.EnvSustain = rng.Float(0.4)
	p.EnvDecay = 0.1 + rng.Float(0.4)
}

func hit(p *params.Params, rng *prng.LCG) {
	p.WaveType = waveTypes[rng.Uint(2)]

	if p.WaveType == params.Sine {
		p.WaveType = params.Noise
	}

	if p.WaveType == params.Square {
		p.Duty = rng.Float(0.6)
	}

	p.BaseFreq = 0.2 + rng.Float(0.6)
	p.FreqRamp = -0.3 - rng.Float(0.4)
	p.EnvAttack = 0
	p.EnvSustain = rng.Float(0.1)
	p.EnvDecay = 0.1 + rng.Float(0.2)

	if rng.Bool() {
		p.HPFFreq = rng.Float(0.3)
	}
}

func jump(p *params.Params, rng *prng.LCG) {
	p.WaveType = params.Square
	p.Duty = rng.Float(0.6)
	p.BaseFreq = 0.3 + rng.Float(0.3)
	p.FreqRamp = 0.1 + rng.Float(0.2)
	p.EnvAttack = 0
	p.EnvSustain = 0.1 + rng.Float(0.3)
	p.EnvDecay = 0.1 + rng.Float(0.2)

	if rng.Bool() {
		p.HPFFreq = rng.Float(0.3)
	}

	if rng.Bool() {
		p.LPFFreq = 1 - rng.Float(0.6)
	}
}

func blip(p *params.Params, rng *prng.LCG) {
	p.WaveType = waveTypes[rng.Uint(1)]

	if p.WaveType == params.Square {
		p.Duty = rng.Float(0.6)
	}

	p.BaseFreq = 0.2 + rng.Float(0.4)
	p.EnvAttack = 0
	p.EnvSustain = 0.1 + rng.Float(0.1)
	p.EnvDecay = rng.Float(0.2)
	p.HPFFreq = 0.1
}
