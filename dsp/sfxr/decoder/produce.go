package decoder

import (
	"math"

	"github.com/cwbudde/algo-sfxr/dsp/core"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/params"
)

// Next produces one sample in [-1, 1]. When the note ends, by envelope or by
// sliding below the frequency limit, Next returns 0 and Playing turns false;
// further calls keep returning 0.
func (d *Decoder) Next() float32 {
	if !d.playing {
		return 0
	}

	d.repTime++
	if d.repLimit != 0 && d.repTime >= d.repLimit {
		d.repTime = 0
		d.reset(true)
	}

	d.arpTime++
	if d.arpLimit != 0 && d.arpTime >= d.arpLimit {
		d.arpLimit = 0
		d.fperiod *= d.arpMod
	}

	d.fslide += d.fdslide
	d.fperiod *= d.fslide

	if d.fperiod > d.fmaxperiod {
		d.fperiod = d.fmaxperiod
		if d.params.FreqLimit > 0 {
			d.playing = false
			return 0
		}
	}

	rfperiod := float32(d.fperiod)
	if d.vibAmp > 0 {
		d.vibPhase += d.vibSpeed
		rfperiod = float32(d.fperiod * (1.0 + float64(math.Sin(float64(d.vibPhase))*float64(d.vibAmp))))
	}

	if rfperiod >= minPeriod {
		d.period = int(rfperiod)
	} else {
		d.period = minPeriod
	}

	d.squareDuty = core.Clamp(d.squareDuty+d.squareSlide, 0, 0.5)

	if !d.stepEnvelope() {
		d.playing = false
		return 0
	}

	d.fphase += d.fdphase
	d.iphase = phaserTap(d.fphase)

	if d.flthpD != 0 {
		d.flthp = core.Clamp(d.flthp*d.flthpD, 0.00001, 0.1)
	}

	var ssample float32
	for si := 0; si < oversample; si++ {
		sample := d.oscillate()

		// Low-pass.
		pp := d.fltp
		d.fltw = core.Clamp(d.fltw*d.fltwD, 0, 0.1)
		if d.params.LPFFreq != 1 {
			d.fltdp += float32((sample - d.fltp) * d.fltw)
			d.fltdp -= float32(d.fltdp * d.fltdmp)
		} else {
			d.fltp = sample
			d.fltdp = 0
		}
		d.fltp += d.fltdp

		// High-pass.
		d.fltphp += d.fltp - pp
		d.fltphp -= float32(d.fltphp * d.flthp)
		sample = d.fltphp

		// Phaser.
		d.phaser[d.ipp&phaserMask] = sample
		sample += d.phaser[(d.ipp-d.iphase+phaserLen)&phaserMask]
		d.ipp = (d.ipp + 1) & phaserMask

		ssample += float32(sample * d.envVol)
	}

	ssample /= oversample
	ssample *= 2 * d.params.SoundVol

	return clip(ssample)
}

// clip limits s to [-1, 1]. NaN, which only out-of-domain parameters can
// produce, becomes silence.
func clip(s float32) float32 {
	switch {
	case s >= -1 && s <= 1:
		return s
	case s > 1:
		return 1
	case s < -1:
		return -1
	}
	return 0
}

// stepEnvelope advances the volume envelope and reports false once the
// decay stage has run out.
func (d *Decoder) stepEnvelope() bool {
	d.envTime++
	if d.envTime > d.envLength[d.envStage] {
		d.envTime = 0
		d.envStage++
		if d.envStage == stageDone {
			return false
		}
	}

	t := float32(d.envTime) / envDivisor(d.envLength[d.envStage])

	switch d.envStage {
	case stageAttack:
		d.envVol = t
	case stageSustain:
		d.envVol = float32(1 + float64(float64(1-t)*2*float64(d.params.EnvPunch)))
	case stageDecay:
		d.envVol = 1 - t
	}

	return true
}

// oscillate advances the phase by one oversampled step and returns the raw
// waveform value.
func (d *Decoder) oscillate() float32 {
	d.phase++
	if d.phase >= d.period {
		d.phase %= d.period
		if d.params.WaveType == params.Noise {
			d.refillNoise()
		}
	}

	fp := float32(d.phase) / float32(d.period)

	switch d.params.WaveType {
	case params.Square:
		if fp < d.squareDuty {
			return 0.5
		}
		return -0.5
	case params.Sawtooth:
		return 1 - float32(fp*2)
	case params.Sine:
		return float32(math.Sin(float64(fp * 2 * math.Pi)))
	case params.Noise:
		return d.noise[d.phase*noiseLen/d.period]
	}

	return 0
}
