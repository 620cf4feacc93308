// Package sfxinfo summarises a rendered sound effect: length, peak and RMS
// level, and the dominant frequency of its Hann-windowed spectrum.
//
// Levels are reported both as linear amplitudes and in dBFS. Builds with the
// fastmath tag use algo-approx for the logarithm and square root; the default
// build uses the standard library.
package sfxinfo
