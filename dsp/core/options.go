package core

// SampleRate is the fixed output rate of the sfxr synthesis engine.
const SampleRate = 44100

// ProcessorConfig defines common rendering and analysis settings.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
	// MaxFrames bounds offline rendering. Zero means unbounded.
	MaxFrames int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the engine rate, the 256-frame export block
// and a ten second render bound.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: SampleRate,
		BlockSize:  256,
		MaxFrames:  10 * SampleRate,
	}
}

// WithSampleRate sets the sample rate used to interpret rendered frames.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the number of frames pulled per produce call.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithMaxFrames bounds offline rendering. Zero removes the bound.
func WithMaxFrames(maxFrames int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if maxFrames >= 0 {
			cfg.MaxFrames = maxFrames
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
