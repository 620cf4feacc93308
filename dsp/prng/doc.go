// Package prng implements the 64-bit linear congruential generator used by
// the sfxr engine for preset generation and noise.
//
// Identical seeds and identical call sequences always reproduce identical
// outputs, which is what makes generated presets and noise reproducible
// across runs and platforms.
package prng
