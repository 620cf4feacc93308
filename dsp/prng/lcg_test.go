package prng

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestSeedZeroRemapped(t *testing.T) {
	zero := New(0)
	one := New(1)

	if zero.State() != 1 {
		t.Fatalf("state = %d, want 1", zero.State())
	}

	for i := 0; i < 8; i++ {
		if a, b := zero.Uint(math.MaxUint32), one.Uint(math.MaxUint32); a != b {
			t.Fatalf("draw %d: seed 0 gave %d, seed 1 gave %d", i, a, b)
		}
	}
}

func TestKnownSequence(t *testing.T) {
	g := New(1)
	want := []uint32{1481765933, 3232861391, 3417699910}

	for i, w := range want {
		if got := g.Uint(math.MaxUint32); got != w {
			t.Fatalf("draw %d = %d, want %d", i, got, w)
		}
	}
}

func TestUint64JoinsDraws(t *testing.T) {
	g := New(1)
	if got, want := g.Uint64(), uint64(1481765933)<<32|3232861391; got != want {
		t.Fatalf("Uint64() = %#x, want %#x", got, want)
	}
}

func TestRandSource(t *testing.T) {
	a, b := New(9), New(9)
	ra, rb := rand.New(&a), rand.New(&b)

	for i := 0; i < 16; i++ {
		if x, y := ra.IntN(1000), rb.IntN(1000); x != y {
			t.Fatalf("draw %d: %d vs %d", i, x, y)
		}
	}
}

func TestKnownBoundedSequence(t *testing.T) {
	tests := []struct {
		name string
		seed uint64
		max  uint32
		want []uint32
	}{
		{name: "digit", seed: 17, max: 9, want: []uint32{6, 7, 7, 8, 7}},
		{name: "bit", seed: 42, max: 1, want: []uint32{0, 1, 1, 0, 1, 1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.seed)
			for i, w := range tt.want {
				if got := g.Uint(tt.max); got != w {
					t.Fatalf("draw %d = %d, want %d", i, got, w)
				}
			}
		})
	}
}

func TestKnownFloatSequence(t *testing.T) {
	g := New(17)

	if got := g.Float(1); got != 0.8650087714195251 {
		t.Fatalf("first = %v, want 0.8650087714195251", got)
	}
	if got := g.Float(1); got != 0.27604812383651733 {
		t.Fatalf("second = %v, want 0.27604812383651733", got)
	}
}

func TestDeterministic(t *testing.T) {
	a := New(0x89866ae81aa30a2b)
	b := New(0x89866ae81aa30a2b)

	for i := 0; i < 1000; i++ {
		if x, y := a.Uint(uint32(i)), b.Uint(uint32(i)); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if a.State() != b.State() {
		t.Fatal("states diverged")
	}
}

func TestFullRangeNeverRejects(t *testing.T) {
	g := New(99)

	for i := 0; i < 1000; i++ {
		before := g.State()
		g.Uint(math.MaxUint32)
		if want := multiplier*before + increment; g.State() != want {
			t.Fatalf("draw %d advanced state more than once", i)
		}
	}
}

func TestUintInRange(t *testing.T) {
	g := New(5)

	for _, max := range []uint32{0, 1, 2, 3, 4, 6, 1000, math.MaxUint32 - 1} {
		for i := 0; i < 200; i++ {
			if v := g.Uint(max); v > max {
				t.Fatalf("Uint(%d) = %d out of range", max, v)
			}
		}
	}
}

func TestUintUniform(t *testing.T) {
	const (
		buckets = 7
		draws   = 70000
	)

	g := New(12345)
	var counts [buckets]int
	for i := 0; i < draws; i++ {
		counts[g.Uint(buckets-1)]++
	}

	// Chi-squared with 6 degrees of freedom; 22.46 is the 0.999 quantile.
	expected := float64(draws) / buckets
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	if chi2 > 22.46 {
		t.Fatalf("chi2 = %.2f, counts = %v", chi2, counts)
	}
}

func TestFloatRange(t *testing.T) {
	g := New(3)

	for i := 0; i < 10000; i++ {
		v := g.Float(2)
		if v < 0 || v > 2 {
			t.Fatalf("Float(2) = %v out of range", v)
		}
	}
}

func BenchmarkUint(b *testing.B) {
	g := New(1)
	for i := 0; i < b.N; i++ {
		g.Uint(2)
	}
}
