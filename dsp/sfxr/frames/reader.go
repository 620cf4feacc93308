package frames

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const readerFrames = 256

// Reader streams a Source as little-endian PCM bytes in a fixed Format.
// Read returns io.EOF once the source goes idle and all buffered bytes have
// been delivered.
type Reader struct {
	src    Source
	format Format

	i16 []int16
	f32 []float32

	pending []byte
	off     int
	done    bool
}

// NewReader returns a Reader over src.
func NewReader(src Source, format Format) (*Reader, error) {
	if !format.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}

	r := &Reader{
		src:     src,
		format:  format,
		pending: make([]byte, 0, readerFrames*format.FrameBytes()),
	}

	samples := readerFrames * format.Channels()
	if format.SampleBytes() == 2 {
		r.i16 = make([]int16, samples)
	} else {
		r.f32 = make([]float32, samples)
	}

	return r, nil
}

// Format returns the reader's frame layout.
func (r *Reader) Format() Format {
	return r.format
}

func (r *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.off == len(r.pending) {
			if r.done || !r.fill() {
				break
			}
		}

		c := copy(p[n:], r.pending[r.off:])
		r.off += c
		n += c
	}

	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}

	return n, nil
}

// fill encodes the next block of frames into pending and reports whether any
// bytes were produced.
func (r *Reader) fill() bool {
	var frames int
	switch r.format {
	case FormatMonoInt16:
		frames = MonoInt16(r.src, r.i16)
	case FormatStereoInt16:
		frames = StereoInt16(r.src, r.i16)
	case FormatMonoFloat32:
		frames = MonoFloat32(r.src, r.f32)
	case FormatStereoFloat32:
		frames = StereoFloat32(r.src, r.f32)
	}

	if frames < readerFrames {
		r.done = true
	}

	samples := frames * r.format.Channels()
	buf := r.pending[:0]
	if r.i16 != nil {
		for _, v := range r.i16[:samples] {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		}
	} else {
		for _, v := range r.f32[:samples] {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
		}
	}

	r.pending = buf
	r.off = 0

	return len(buf) > 0
}
