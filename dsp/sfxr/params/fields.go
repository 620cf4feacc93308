package params

import "fmt"

// Field identifies one numeric parameter.
type Field int

const (
	BaseFreq Field = iota
	FreqLimit
	FreqRamp
	FreqDRamp
	Duty
	DutyRamp
	VibStrength
	VibSpeed
	EnvAttack
	EnvSustain
	EnvDecay
	EnvPunch
	LPFResonance
	LPFFreq
	LPFRamp
	HPFFreq
	HPFRamp
	PhaOffset
	PhaRamp
	RepeatSpeed
	ArpSpeed
	ArpMod
	SoundVol

	numFields
)

type fieldInfo struct {
	name    string
	bipolar bool
	ptr     func(*Params) *float32
}

func (f fieldInfo) Min() float32 {
	if f.bipolar {
		return -1
	}
	return 0
}

var fields = [numFields]fieldInfo{
	BaseFreq:     {"base_freq", false, func(p *Params) *float32 { return &p.BaseFreq }},
	FreqLimit:    {"freq_limit", false, func(p *Params) *float32 { return &p.FreqLimit }},
	FreqRamp:     {"freq_ramp", true, func(p *Params) *float32 { return &p.FreqRamp }},
	FreqDRamp:    {"freq_dramp", true, func(p *Params) *float32 { return &p.FreqDRamp }},
	Duty:         {"duty", false, func(p *Params) *float32 { return &p.Duty }},
	DutyRamp:     {"duty_ramp", true, func(p *Params) *float32 { return &p.DutyRamp }},
	VibStrength:  {"vib_strength", false, func(p *Params) *float32 { return &p.VibStrength }},
	VibSpeed:     {"vib_speed", false, func(p *Params) *float32 { return &p.VibSpeed }},
	EnvAttack:    {"env_attack", false, func(p *Params) *float32 { return &p.EnvAttack }},
	EnvSustain:   {"env_sustain", false, func(p *Params) *float32 { return &p.EnvSustain }},
	EnvDecay:     {"env_decay", false, func(p *Params) *float32 { return &p.EnvDecay }},
	EnvPunch:     {"env_punch", false, func(p *Params) *float32 { return &p.EnvPunch }},
	LPFResonance: {"lpf_resonance", false, func(p *Params) *float32 { return &p.LPFResonance }},
	LPFFreq:      {"lpf_freq", false, func(p *Params) *float32 { return &p.LPFFreq }},
	LPFRamp:      {"lpf_ramp", true, func(p *Params) *float32 { return &p.LPFRamp }},
	HPFFreq:      {"hpf_freq", false, func(p *Params) *float32 { return &p.HPFFreq }},
	HPFRamp:      {"hpf_ramp", true, func(p *Params) *float32 { return &p.HPFRamp }},
	PhaOffset:    {"pha_offset", true, func(p *Params) *float32 { return &p.PhaOffset }},
	PhaRamp:      {"pha_ramp", true, func(p *Params) *float32 { return &p.PhaRamp }},
	RepeatSpeed:  {"repeat_speed", false, func(p *Params) *float32 { return &p.RepeatSpeed }},
	ArpSpeed:     {"arp_speed", false, func(p *Params) *float32 { return &p.ArpSpeed }},
	ArpMod:       {"arp_mod", true, func(p *Params) *float32 { return &p.ArpMod }},
	SoundVol:     {"sound_vol", false, func(p *Params) *float32 { return &p.SoundVol }},
}

// Fields returns every numeric field in declaration order.
func Fields() []Field {
	out := make([]Field, numFields)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

func (f Field) valid() bool {
	return f >= 0 && f < numFields
}

// String returns the wire-style field name, e.g. "base_freq".
func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fields[f].name
}

// Bipolar reports whether the field's domain is [-1, 1].
func (f Field) Bipolar() bool {
	return f.valid() && fields[f].bipolar
}

// Get returns the value of field f in p. Unknown fields read as 0.
func (p *Params) Get(f Field) float32 {
	if !f.valid() {
		return 0
	}
	return *fields[f].ptr(p)
}

// Set assigns v to field f without clamping. Unknown fields are ignored.
func (p *Params) Set(f Field, v float32) {
	if f.valid() {
		*fields[f].ptr(p) = v
	}
}

// Ptr returns a pointer to field f inside p, or nil for unknown fields.
func (p *Params) Ptr(f Field) *float32 {
	if !f.valid() {
		return nil
	}
	return fields[f].ptr(p)
}
