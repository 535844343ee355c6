package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Actor is the player-controlled bird. It is pinned horizontally at the
// world center; only its vertical state evolves.
type Actor struct {
	Y   float64 // Vertical position, world units
	Vel float64 // Vertical velocity, units/sec
}

// Integrate advances the actor by dt seconds. A flap edge overrides the
// current velocity with the impulse constant rather than adding to it.
// Deterministic: no randomness enters actor motion.
func (a *Actor) Integrate(dt float64, flap bool, phys config.Physics) {
	if flap {
		a.Vel = phys.FlapImpulse
	}
	a.Vel -= phys.Gravity * dt
	a.Y += a.Vel * dt
}

// Tilt returns the visual tilt angle in degrees, clamped to ±90.
// Pure presentation derivative; it never feeds back into physics.
func (a *Actor) Tilt(phys config.Physics) float64 {
	return core.ClampF(a.Vel/phys.RotationRatio, -90, 90)
}

// BelowFloor reports whether the actor has fallen past the lower world
// bound. This is a death trigger, not a clamp.
func (a *Actor) BelowFloor(worldH float64) bool {
	return a.Y <= -worldH/2
}
