package preset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-sfxr/dsp/sfxr/params"
)

// Recipe is the reproducible description of a generated sound: the preset,
// the mutation count and the seed. Storing a Recipe instead of Params keeps
// a sound to three numbers.
type Recipe struct {
	Preset    Preset
	Mutations uint
	Seed      uint64
}

// Params regenerates the parameters described by r.
func (r Recipe) Params() params.Params {
	return Generate(r.Preset, r.Mutations, r.Seed)
}

// Mutated returns r with one more mutation round.
func (r Recipe) Mutated() Recipe {
	r.Mutations++
	return r
}

// String formats r as the Go call that reproduces it.
func (r Recipe) String() string {
	name := r.Preset.String()
	if r.Preset >= 0 && int(r.Preset) < len(presetNames) {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("preset.Generate(preset.%s, %d, %d)", name, r.Mutations, r.Seed)
}

// ParseRecipe parses "preset:mutations:seed", e.g. "laser:0:17". Mutations
// and seed may be omitted and default to 0 and 1.
func ParseRecipe(s string) (Recipe, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Recipe{}, fmt.Errorf("recipe %q: want preset[:mutations[:seed]]", s)
	}

	p, err := Parse(parts[0])
	if err != nil {
		return Recipe{}, err
	}

	r := Recipe{Preset: p, Seed: 1}

	if len(parts) > 1 && parts[1] != "" {
		m, err := strconv.ParseUint(parts[1], 10, 0)
		if err != nil {
			return Recipe{}, fmt.Errorf("recipe %q: mutations: %w", s, err)
		}
		r.Mutations = uint(m)
	}

	if len(parts) > 2 && parts[2] != "" {
		seed, err := strconv.ParseUint(parts[2], 0, 64)
		if err != nil {
			return Recipe{}, fmt.Errorf("recipe %q: seed: %w", s, err)
		}
		r.Seed = seed
	}

	return r, nil
}
