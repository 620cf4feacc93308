package sfxinfo_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sfxr/measure/sfxinfo"
)

func TestLevelMeterSquare(t *testing.T) {
	sig := make([]float32, 100)
	for i := range sig {
		sig[i] = 0.5
		if i%2 == 1 {
			sig[i] = -0.5
		}
	}

	var m sfxinfo.LevelMeter
	m.Update(sig)
	l := m.Levels()

	if l.Frames != 100 {
		t.Errorf("Frames = %d", l.Frames)
	}
	if math.Abs(l.DC) > 1e-12 {
		t.Errorf("DC = %v, want 0", l.DC)
	}
	if l.Peak != 0.5 || l.PeakPos != 0 {
		t.Errorf("Peak = %v at %d, want 0.5 at 0", l.Peak, l.PeakPos)
	}
	if math.Abs(l.RMS-0.5) > 1e-12 {
		t.Errorf("RMS = %v, want 0.5", l.RMS)
	}
	if math.Abs(l.CrestFactor-1) > 1e-9 {
		t.Errorf("CrestFactor = %v, want 1", l.CrestFactor)
	}
	if l.ZeroCrossings != 99 {
		t.Errorf("ZeroCrossings = %d, want 99", l.ZeroCrossings)
	}
}

func TestLevelMeterDC(t *testing.T) {
	var m sfxinfo.LevelMeter
	m.Update([]float32{0.25, 0.25, 0.25, 1, 0.25})
	l := m.Levels()

	if math.Abs(l.DC-0.4) > 1e-9 {
		t.Errorf("DC = %v, want 0.4", l.DC)
	}
	if l.PeakPos != 3 || l.Clipped != 1 {
		t.Errorf("PeakPos = %d, Clipped = %d; want 3, 1", l.PeakPos, l.Clipped)
	}
	if l.ZeroCrossings != 0 {
		t.Errorf("ZeroCrossings = %d, want 0", l.ZeroCrossings)
	}
}

func TestLevelMeterTinyCrossings(t *testing.T) {
	var m sfxinfo.LevelMeter
	m.Update([]float32{1e-30, -1e-30, 0, 1e-30, 2e-30})

	if got := m.Levels().ZeroCrossings; got != 1 {
		t.Fatalf("ZeroCrossings = %d, want 1", got)
	}
}

func TestLevelMeterBlocksMatchWhole(t *testing.T) {
	sig := sine(330, 0.7, 5000)

	var whole sfxinfo.LevelMeter
	whole.Update(sig)

	var blocks sfxinfo.LevelMeter
	for off := 0; off < len(sig); off += 77 {
		blocks.Update(sig[off:min(off+77, len(sig))])
	}

	if whole.Levels() != blocks.Levels() {
		t.Fatalf("block-wise levels %+v differ from whole %+v", blocks.Levels(), whole.Levels())
	}
}

func TestLevelMeterEmptyAndReset(t *testing.T) {
	var m sfxinfo.LevelMeter
	if l := m.Levels(); l != (sfxinfo.Levels{}) {
		t.Fatalf("empty meter = %+v", l)
	}

	m.Update([]float32{0.1, -0.2})
	m.Reset()
	if l := m.Levels(); l != (sfxinfo.Levels{}) {
		t.Fatalf("reset meter = %+v", l)
	}

	m.Update(make([]float32, 8))
	if l := m.Levels(); l.Frames != 8 || l.CrestFactor != 0 {
		t.Fatalf("silent meter = %+v", l)
	}
}
