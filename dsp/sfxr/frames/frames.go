package frames

// Source is a mono sample stream that eventually goes idle.
type Source interface {
	Next() float32
	Playing() bool
}

const int16Scale = 32767

func toInt16(s float32) int16 {
	return int16(s * int16Scale)
}

// MonoInt16 fills dst with one int16 sample per frame and returns the number
// of frames written.
func MonoInt16(src Source, dst []int16) int {
	for i := range dst {
		s := src.Next()
		if !src.Playing() {
			return i
		}
		dst[i] = toInt16(s)
	}
	return len(dst)
}

// StereoInt16 fills dst with interleaved left/right int16 pairs. The frame
// count is len(dst)/2; a trailing odd element is never written.
func StereoInt16(src Source, dst []int16) int {
	frames := len(dst) / 2
	for i := 0; i < frames; i++ {
		s := src.Next()
		if !src.Playing() {
			return i
		}
		v := toInt16(s)
		dst[2*i] = v
		dst[2*i+1] = v
	}
	return frames
}

// MonoFloat32 fills dst with one sample in [-1, 1] per frame.
func MonoFloat32(src Source, dst []float32) int {
	for i := range dst {
		s := src.Next()
		if !src.Playing() {
			return i
		}
		dst[i] = s
	}
	return len(dst)
}

// StereoFloat32 fills dst with interleaved left/right float32 pairs.
func StereoFloat32(src Source, dst []float32) int {
	frames := len(dst) / 2
	for i := 0; i < frames; i++ {
		s := src.Next()
		if !src.Playing() {
			return i
		}
		dst[2*i] = s
		dst[2*i+1] = s
	}
	return frames
}
