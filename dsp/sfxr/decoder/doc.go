// Package decoder turns sfxr parameters into a 44100 Hz mono sample stream.
//
// A Decoder is a single voice. It owns a copy of its Params, an embedded
// generator for noise, and fixed-size phaser (1024) and noise (32) rings, so
// it never allocates after construction and is safe to keep by value. Each
// call to Next advances the voice by one output sample: repeat and arpeggio
// timers, frequency slide, vibrato, duty slide, the three-stage volume
// envelope, the phaser, and eight oversampled oscillator steps run through a
// resonant low-pass and a high-pass filter.
//
// When the repeat timer fires, only pitch, slide, duty and arpeggio are
// re-derived. The envelope, the filter state, the phaser and the noise
// buffer keep running, so a repeating note still ends with its envelope.
//
// The stream is a pure function of the Params and the seed passed to Start.
// Binary32 intermediates are converted explicitly wherever a multiply feeds
// an add, which keeps the compiler from fusing them and keeps the output
// identical across architectures.
//
// A Decoder is not safe for concurrent use; run one per voice.
package decoder
