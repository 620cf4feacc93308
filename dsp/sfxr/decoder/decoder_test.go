package decoder_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sfxr/dsp/sfxr/decoder"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/params"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/preset"
	"github.com/cwbudde/algo-sfxr/internal/testutil"
)

const maxSamples = 10 * 44100

// drain plays d to the end and returns every sample produced while playing.
func drain(t testing.TB, d *decoder.Decoder) []float32 {
	t.Helper()

	var out []float32
	for d.Playing() {
		s := d.Next()
		if !d.Playing() {
			break
		}

		out = append(out, s)
		if len(out) > maxSamples {
			t.Fatalf("voice still playing after %d samples", maxSamples)
		}
	}

	return out
}

func envelopeOnly(attack, sustain, decay float32) params.Params {
	p := params.Default()
	p.EnvAttack = attack
	p.EnvSustain = sustain
	p.EnvDecay = decay
	p.FreqLimit = 0
	return p
}

func TestZeroValueIsIdle(t *testing.T) {
	var d decoder.Decoder
	if d.Playing() {
		t.Fatal("zero Decoder reports playing")
	}
	if s := d.Next(); s != 0 {
		t.Fatalf("zero Decoder produced %v", s)
	}
}

func TestEnvelopeLength(t *testing.T) {
	tests := []struct {
		name                   string
		attack, sustain, decay float32
		want                   int
	}{
		{name: "all zero", want: 2},
		{name: "sustain only", sustain: 0.5, want: 25002},
		{name: "full", attack: 0.25, sustain: 0.5, decay: 0.5, want: 6250 + 25001 + 25001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decoder.New(envelopeOnly(tt.attack, tt.sustain, tt.decay), 1)
			got := drain(t, d)
			if len(got) != tt.want {
				t.Fatalf("played %d samples, want %d", len(got), tt.want)
			}
			if s := d.Next(); s != 0 || d.Playing() {
				t.Fatalf("idle decoder produced %v playing=%v", s, d.Playing())
			}
		})
	}
}

func TestSamplesBounded(t *testing.T) {
	for _, pr := range preset.All() {
		for seed := uint64(1); seed <= 8; seed++ {
			p := preset.Generate(pr, uint(seed%3), seed)
			got := drain(t, decoder.New(p, seed))
			testutil.RequireFinite(t, got)
			testutil.RequireBounded(t, got, 1)
		}
	}
}

func TestDeterministic(t *testing.T) {
	p := preset.Generate(preset.Explosion, 1, 5)

	a := drain(t, decoder.New(p, 99))
	b := drain(t, decoder.New(p, 99))

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			t.Fatalf("sample %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestNoiseDependsOnSeed(t *testing.T) {
	p := params.Default()
	p.WaveType = params.Noise
	p.FreqLimit = 0

	a := drain(t, decoder.New(p, 1))
	b := drain(t, decoder.New(p, 2))

	if diff, err := testutil.MaxAbsDiff(a, b); err == nil && diff == 0 {
		t.Fatal("noise voices with different seeds are identical")
	}
}

func TestRestartReplays(t *testing.T) {
	p := preset.Generate(preset.Hit, 2, 31)
	d := decoder.New(p, 7)

	first := make([]float32, 2000)
	for i := range first {
		first[i] = d.Next()
	}

	d.Restart()
	if !d.Playing() {
		t.Fatal("Restart did not resume playing")
	}

	for i := range first {
		if got := d.Next(); math.Float32bits(got) != math.Float32bits(first[i]) {
			t.Fatalf("sample %d after restart: got %v, want %v", i, got, first[i])
		}
	}
}

func TestRestartAfterIdle(t *testing.T) {
	d := decoder.New(envelopeOnly(0, 0, 0), 3)
	drain(t, d)

	d.Restart()
	if got := drain(t, d); len(got) != 2 {
		t.Fatalf("restarted voice played %d samples, want 2", len(got))
	}
}

func TestFreqLimitEndsNote(t *testing.T) {
	p := envelopeOnly(0, 0.5, 0.5)
	p.BaseFreq = 0.5
	p.FreqLimit = 0.3
	p.FreqRamp = -0.5

	got := drain(t, decoder.New(p, 1))
	if len(got) == 0 || len(got) >= 50002 {
		t.Fatalf("note played %d samples, want it cut short by the frequency limit", len(got))
	}
}

func TestStartQuick(t *testing.T) {
	p := params.Default()
	p.WaveType = params.Noise

	var quick decoder.Decoder
	quick.StartQuick(p)

	if quick.Seed() != decoder.QuickSeed {
		t.Fatalf("Seed() = %#x, want %#x", quick.Seed(), decoder.QuickSeed)
	}
	if quick.Params() != p {
		t.Fatal("Params() does not return the started parameters")
	}

	a := drain(t, &quick)
	b := drain(t, decoder.New(p, decoder.QuickSeed))
	if diff, err := testutil.MaxAbsDiff(a, b); err != nil || diff != 0 {
		t.Fatalf("StartQuick differs from Start with QuickSeed: diff %v, err %v", diff, err)
	}
}

func TestParamsAreCopied(t *testing.T) {
	p := params.Default()
	d := decoder.New(p, 1)
	p.BaseFreq = 0.9

	if d.Params().BaseFreq == 0.9 {
		t.Fatal("decoder shares parameter storage with the caller")
	}
}

func TestLaserScenario(t *testing.T) {
	p := preset.Generate(preset.Laser, 0, 17)
	got := drain(t, decoder.New(p, 17))

	if len(got) == 0 {
		t.Fatal("laser produced no samples")
	}

	var peak float32
	for _, s := range got {
		peak = max(peak, float32(math.Abs(float64(s))))
	}
	if peak < 0.01 {
		t.Fatalf("laser peak %v is near silent", peak)
	}
}

func TestLaserGoldenSamples(t *testing.T) {
	var d decoder.Decoder
	d.StartQuick(preset.Generate(preset.Laser, 0, 17))

	got := drain(t, &d)
	if len(got) != 6370 {
		t.Fatalf("played %d samples, want 6370", len(got))
	}

	want := map[int]int16{0: 32767, 100: 32207, 1000: 24641, 5000: -4270}
	for i, w := range want {
		if s := int16(got[i] * 32767); s != w {
			t.Errorf("sample %d = %d (%v), want %d", i, s, got[i], w)
		}
	}
}

func TestOutOfDomainParamsStayBounded(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name string
		set  func(p *params.Params)
	}{
		{"nan volume", func(p *params.Params) { p.SoundVol = nan }},
		{"infinite volume", func(p *params.Params) { p.SoundVol = inf }},
		{"nan duty", func(p *params.Params) { p.Duty = nan }},
		{"infinite resonance", func(p *params.Params) { p.LPFResonance = inf }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := envelopeOnly(0, 0.3, 0.3)
			tt.set(&p)

			got := drain(t, decoder.New(p, 5))
			testutil.RequireFinite(t, got)
			testutil.RequireBounded(t, got, 1)
		})
	}
}

func TestUnknownWaveIsSilent(t *testing.T) {
	p := envelopeOnly(0, 0.1, 0)
	p.WaveType = 7

	for i, s := range drain(t, decoder.New(p, 1)) {
		if s != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
}

func BenchmarkNext(b *testing.B) {
	p := preset.Generate(preset.Powerup, 0, 3)
	p.EnvSustain = 1
	p.EnvDecay = 1
	d := decoder.New(p, 3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !d.Playing() {
			d.Restart()
		}
		d.Next()
	}
}
