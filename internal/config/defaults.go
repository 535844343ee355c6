package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in tuning, used when no YAML can be loaded.
// Values mirror defaults/flappy.yaml.
func Default() Config {
	return Config{
		World: World{
			Width:  1280,
			Height: 720,
		},
		Physics: Physics{
			Gravity:       1600,
			FlapImpulse:   400,
			RotationRatio: 7.2,
		},
		Obstacles: Obstacles{
			Width:          144,
			Height:         648,
			Gap:            72,
			VerticalOffset: 135,
			Spacing:        288,
			PairCount:      8,
			ScrollSpeed:    120,
			MercyZone:      22.5,
		},
	}
}
