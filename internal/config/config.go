// Package config provides YAML-based tuning for the game.
// Values are loaded once at startup and never change during a run.
package config

// Config contains all tuning for the simulation, in world units.
// The world is a y-up coordinate system with the origin at its center.
type Config struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
}

// World defines the fixed simulation dimensions. Read-only after startup;
// the renderer maps these onto whatever terminal size is available.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the actor's motion parameters.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`        // Downward acceleration, units/sec^2
	FlapImpulse   float64 `yaml:"flap_impulse"`   // Velocity set on a flap edge, units/sec
	RotationRatio float64 `yaml:"rotation_ratio"` // Velocity-to-tilt divisor for the visual angle
}

// Obstacles defines the scrolling obstacle field parameters.
type Obstacles struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Gap            float64 `yaml:"gap"`             // Half-gap between a pair's members, beyond height/2
	VerticalOffset float64 `yaml:"vertical_offset"` // Max magnitude of the random pair offset
	Spacing        float64 `yaml:"spacing"`         // Horizontal distance between pairs
	PairCount      int     `yaml:"pair_count"`
	ScrollSpeed    float64 `yaml:"scroll_speed"` // units/sec
	MercyZone      float64 `yaml:"mercy_zone"`   // Hitbox shrink below sprite size
}
