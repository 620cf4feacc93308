package frames

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for a Format outside the defined set.
var ErrUnknownFormat = errors.New("frames: unknown format")

// Format selects a PCM frame layout.
type Format int

const (
	FormatMonoInt16 Format = iota
	FormatStereoInt16
	FormatMonoFloat32
	FormatStereoFloat32
)

var formatNames = [...]string{
	FormatMonoInt16:     "s16",
	FormatStereoInt16:   "s16x2",
	FormatMonoFloat32:   "f32",
	FormatStereoFloat32: "f32x2",
}

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatMonoInt16, FormatStereoInt16, FormatMonoFloat32, FormatStereoFloat32}
}

func (f Format) valid() bool {
	return f >= FormatMonoInt16 && f <= FormatStereoFloat32
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Channels returns 1 for mono and 2 for stereo layouts.
func (f Format) Channels() int {
	if f == FormatStereoInt16 || f == FormatStereoFloat32 {
		return 2
	}
	return 1
}

// SampleBytes returns the size of one channel sample.
func (f Format) SampleBytes() int {
	if f == FormatMonoFloat32 || f == FormatStereoFloat32 {
		return 4
	}
	return 2
}

// FrameBytes returns the size of one interleaved frame: 2, 4, 4 or 8.
func (f Format) FrameBytes() int {
	return f.Channels() * f.SampleBytes()
}

// ParseFormat resolves a name such as "s16" or "f32x2".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range Formats() {
		if formatNames[f] == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
