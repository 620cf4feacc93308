package preset

import (
	"errors"
	"fmt"
	"testing"
)

func TestRecipeString(t *testing.T) {
	r := Recipe{Preset: Laser, Mutations: 2, Seed: 17}

	if got, want := r.String(), "preset.Generate(preset.Laser, 2, 17)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestRecipeParams(t *testing.T) {
	r := Recipe{Preset: Hit, Mutations: 1, Seed: 3}

	if r.Params() != Generate(Hit, 1, 3) {
		t.Fatal("Params() differs from Generate")
	}
	if m := r.Mutated(); m.Mutations != 2 || r.Mutations != 1 {
		t.Fatalf("Mutated() = %+v, receiver %+v", m, r)
	}
}

func TestParseRecipe(t *testing.T) {
	tests := []struct {
		in   string
		want Recipe
	}{
		{"laser:0:17", Recipe{Preset: Laser, Seed: 17}},
		{"blip", Recipe{Preset: Blip, Seed: 1}},
		{"coin:4", Recipe{Preset: Pickup, Mutations: 4, Seed: 1}},
		{"jump::0x10", Recipe{Preset: Jump, Seed: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRecipe(tt.in)
			if err != nil {
				t.Fatalf("ParseRecipe(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseRecipe(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRecipeErrors(t *testing.T) {
	if _, err := ParseRecipe("nope:1:2"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("err = %v, want ErrUnknownPreset", err)
	}
	for _, in := range []string{"laser:x", "laser:1:-3", "laser:1:2:3"} {
		if _, err := ParseRecipe(in); err == nil {
			t.Fatalf("ParseRecipe(%q) succeeded", in)
		}
	}
}

func ExampleRecipe() {
	r, _ := ParseRecipe("laser:0:17")
	p := r.Params()

	fmt.Println(r)
	fmt.Println(p.WaveType, p.FreqLimit)

	// Output:
	// preset.Generate(preset.Laser, 0, 17)
	// sawtooth 0.2
}
