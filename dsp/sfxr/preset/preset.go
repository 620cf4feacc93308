package preset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned when a preset name cannot be parsed.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// Preset is a sound archetype that biases generation toward a category.
type Preset int

const (
	Random Preset = iota
	Pickup
	Laser
	Explosion
	Powerup
	Hit
	Jump
	Blip
)

var presetNames = [...]string{"random", "pickup", "laser", "explosion", "powerup", "hit", "jump", "blip"}

// aliases maps the editor's category labels onto presets.
var aliases = map[string]Preset{
	"coin":   Pickup,
	"shoot":  Laser,
	"hurt":   Hit,
	"select": Blip,
}

// All returns every preset in declaration order.
func All() []Preset {
	out := make([]Preset, len(presetNames))
	for i := range out {
		out[i] = Preset(i)
	}
	return out
}

// String returns the lower-case preset name.
func (p Preset) String() string {
	if p >= 0 && int(p) < len(presetNames) {
		return presetNames[p]
	}
	return fmt.Sprintf("preset(%d)", int(p))
}

// Parse resolves a preset by name. Matching ignores case and accepts the
// editor labels "pickup/coin", "laser/shoot", "hit/hurt", "blip/select" and
// "power up" as well as either half of them.
func Parse(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "")

	for _, part := range strings.Split(key, "/") {
		for i, n := range presetNames {
			if part == n {
				return Preset(i), nil
			}
		}
		if p, ok := aliases[part]; ok {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
