// Package codec reads and writes sfxr parameter files.
//
// The format is a little-endian record with no magic number and no checksum.
// A leading int32 version (100, 101 or 102) selects which fields are present:
//
//	version      int32   all
//	wave_type    int32   all
//	sound_vol    float32 102
//	base_freq    float32 all
//	freq_limit   float32 all
//	freq_ramp    float32 all
//	freq_dramp   float32 101+
//	duty         float32 all
//	duty_ramp    float32 all
//	vib_strength float32 all
//	vib_speed    float32 all
//	vib_delay    float32 all (reserved)
//	env_attack   float32 all
//	env_sustain  float32 all
//	env_decay    float32 all
//	env_punch    float32 all
//	filter_on    byte    all (reserved)
//	lpf_resonance, lpf_freq, lpf_ramp, hpf_freq, hpf_ramp  float32 all
//	pha_offset, pha_ramp                                    float32 all
//	repeat_speed float32 all
//	arp_speed    float32 101+
//	arp_mod      float32 101+
//
// Fields missing from older versions keep the values of params.Default.
// Save always writes version 102 and zeroes the reserved slots. Floats are
// IEEE 754 binary32, so files are portable between platforms.
//
// Bytes move through io.ByteReader and io.ByteWriter one at a time. The
// first error reported by the source or sink aborts the transfer and is
// returned wrapped; nothing is retried.
package codec
