package sfxinfo

import (
	"errors"
	"time"

	"github.com/cwbudde/algo-sfxr/dsp/core"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/decoder"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/frames"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/params"
)

// ErrNoSamples is returned when there is nothing to analyse.
var ErrNoSamples = errors.New("sfxinfo: no samples")

// Result holds the measurements of one rendered effect.
type Result struct {
	Levels

	Duration time.Duration
	PeakDB   float64
	RMSDB    float64

	// FFTSize is the transform length the spectral fields were taken from.
	FFTSize    int
	DominantHz float64
	DominantDB float64
	CentroidHz float64
	// RolloffHz is the frequency below which 85% of the spectral energy lies.
	RolloffHz float64
}

// Analyzer measures rendered effects. It keeps its transform buffers between
// calls, so batch analysis reuses memory. An Analyzer is not safe for
// concurrent use.
type Analyzer struct {
	cfg     core.ProcessorConfig
	scratch scratch
}

// NewAnalyzer returns an Analyzer for the configured sample rate.
func NewAnalyzer(opts ...core.ProcessorOption) *Analyzer {
	return &Analyzer{cfg: core.ApplyProcessorOptions(opts...)}
}

// Analyze measures a mono float32 stream.
func (a *Analyzer) Analyze(samples []float32) (Result, error) {
	if len(samples) == 0 {
		return Result{}, ErrNoSamples
	}

	var meter LevelMeter
	meter.Update(samples)

	res := Result{
		Levels:   meter.Levels(),
		Duration: time.Duration(float64(len(samples)) / a.cfg.SampleRate * float64(time.Second)),
	}
	res.PeakDB = amplitudeDB(res.Peak)
	res.RMSDB = amplitudeDB(res.RMS)

	sp, err := a.scratch.spectrum(samples, a.cfg.SampleRate)
	if err != nil {
		return Result{}, err
	}

	res.FFTSize = sp.size
	res.DominantHz = sp.dominantHz
	res.DominantDB = amplitudeDB(sp.dominantAmp)
	res.CentroidHz = sp.centroidHz
	res.RolloffHz = sp.rolloffHz

	return res, nil
}

// AnalyzeParams renders p with the given noise seed and analyses the result
// with the Analyzer's configuration.
func (a *Analyzer) AnalyzeParams(p params.Params, seed uint64) (Result, error) {
	samples := frames.Render(decoder.New(p, seed),
		core.WithSampleRate(a.cfg.SampleRate),
		core.WithBlockSize(a.cfg.BlockSize),
		core.WithMaxFrames(a.cfg.MaxFrames),
	)
	return a.Analyze(samples)
}

// Analyze measures a mono float32 stream at the configured sample rate.
func Analyze(samples []float32, opts ...core.ProcessorOption) (Result, error) {
	return NewAnalyzer(opts...).Analyze(samples)
}

// AnalyzeParams renders p with the given noise seed and analyses the result.
func AnalyzeParams(p params.Params, seed uint64, opts ...core.ProcessorOption) (Result, error) {
	return NewAnalyzer(opts...).AnalyzeParams(p, seed)
}
