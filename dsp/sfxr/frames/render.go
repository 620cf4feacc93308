package frames

import "github.com/cwbudde/algo-sfxr/dsp/core"

// Render plays src to the end and returns the mono float32 samples. Frames
// are pulled in blocks of the configured BlockSize; a non-zero MaxFrames
// truncates notes that would run longer.
func Render(src Source, opts ...core.ProcessorOption) []float32 {
	cfg := core.ApplyProcessorOptions(opts...)

	var out []float32
	block := make([]float32, cfg.BlockSize)

	for src.Playing() {
		want := len(block)
		if cfg.MaxFrames > 0 {
			want = min(want, cfg.MaxFrames-len(out))
			if want <= 0 {
				break
			}
		}

		n := MonoFloat32(src, block[:want])
		out = append(out, block[:n]...)
		if n < want {
			break
		}
	}

	return out
}
