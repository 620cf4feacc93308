package codec

import "github.com/cwbudde/algo-sfxr/dsp/sfxr/params"

// Supported format versions.
const (
	Version100 int32 = 100
	Version101 int32 = 101
	Version102 int32 = 102

	// CurrentVersion is the version written by Save.
	CurrentVersion = Version102
)

type slotKind int

const (
	kindFloat slotKind = iota
	kindReservedFloat
	kindReservedByte
)

// slot is one record entry following version and wave_type.
type slot struct {
	name  string
	kind  slotKind
	field params.Field
	since int32
}

var layout = []slot{
	{name: "sound_vol", field: params.SoundVol, since: Version102},
	{name: "base_freq", field: params.BaseFreq},
	{name: "freq_limit", field: params.FreqLimit},
	{name: "freq_ramp", field: params.FreqRamp},
	{name: "freq_dramp", field: params.FreqDRamp, since: Version101},
	{name: "duty", field: params.Duty},
	{name: "duty_ramp", field: params.DutyRamp},
	{name: "vib_strength", field: params.VibStrength},
	{name: "vib_speed", field: params.VibSpeed},
	{name: "vib_delay", kind: kindReservedFloat},
	{name: "env_attack", field: params.EnvAttack},
	{name: "env_sustain", field: params.EnvSustain},
	{name: "env_decay", field: params.EnvDecay},
	{name: "env_punch", field: params.EnvPunch},
	{name: "filter_on", kind: kindReservedByte},
	{name: "lpf_resonance", field: params.LPFResonance},
	{name: "lpf_freq", field: params.LPFFreq},
	{name: "lpf_ramp", field: params.LPFRamp},
	{name: "hpf_freq", field: params.HPFFreq},
	{name: "hpf_ramp", field: params.HPFRamp},
	{name: "pha_offset", field: params.PhaOffset},
	{name: "pha_ramp", field: params.PhaRamp},
	{name: "repeat_speed", field: params.RepeatSpeed},
	{name: "arp_speed", field: params.ArpSpeed, since: Version101},
	{name: "arp_mod", field: params.ArpMod, since: Version101},
}

func (s slot) present(version int32) bool {
	return version >= s.since
}

func (s slot) size() int {
	if s.kind == kindReservedByte {
		return 1
	}
	return 4
}

// Supported reports whether version can be loaded.
func Supported(version int32) bool {
	return version == Version100 || version == Version101 || version == Version102
}

// Size returns the encoded length in bytes of a record of the given version,
// or 0 for unsupported versions.
func Size(version int32) int {
	if !Supported(version) {
		return 0
	}
	n := 8
	for _, s := range layout {
		if s.present(version) {
			n += s.size()
		}
	}
	return n
}
