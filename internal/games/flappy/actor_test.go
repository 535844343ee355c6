package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestActorFlapOverridesVelocity(t *testing.T) {
	phys := config.Default().Physics

	tests := []struct {
		name    string
		prevVel float64
	}{
		{"falling fast", -1200},
		{"rising fast", 1000},
		{"at rest", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Actor{Vel: tc.prevVel}
			// dt=0 isolates the override from gravity
			a.Integrate(0, true, phys)
			if a.Vel != phys.FlapImpulse {
				t.Errorf("flap should set velocity to %v regardless of prior %v, got %v",
					phys.FlapImpulse, tc.prevVel, a.Vel)
			}
		})
	}
}

func TestActorGravityIntegration(t *testing.T) {
	phys := config.Default().Physics

	a := Actor{}
	a.Integrate(0.1, false, phys)

	// vel -= 1600*0.1; y += vel*0.1
	if a.Vel != -160 {
		t.Errorf("velocity after one frame = %v, expected -160", a.Vel)
	}
	if a.Y != -16 {
		t.Errorf("position after one frame = %v, expected -16", a.Y)
	}
}

func TestActorFlapThenGravity(t *testing.T) {
	phys := config.Default().Physics

	a := Actor{Vel: -500}
	a.Integrate(0.1, true, phys)

	// Override to 400, then gravity: 400 - 160 = 240
	if a.Vel != 240 {
		t.Errorf("velocity = %v, expected 240", a.Vel)
	}
	if a.Y != 24 {
		t.Errorf("position = %v, expected 24", a.Y)
	}
}

func TestActorTilt(t *testing.T) {
	phys := config.Default().Physics

	tests := []struct {
		name     string
		vel      float64
		expected float64
	}{
		{"moderate climb", 360, 50}, // 360 / 7.2
		{"clamped up", 1000, 90},
		{"clamped down", -1000, -90},
		{"level", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Actor{Vel: tc.vel}
			if got := a.Tilt(phys); got != tc.expected {
				t.Errorf("Tilt() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestActorBelowFloor(t *testing.T) {
	worldH := config.Default().World.Height // 720; floor at -360

	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"above floor", -359.9, false},
		{"exactly at floor", -360, true},
		{"below floor", -400, true},
		{"center", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Actor{Y: tc.y}
			if got := a.BelowFloor(worldH); got != tc.expected {
				t.Errorf("BelowFloor() at y=%v = %v, expected %v", tc.y, got, tc.expected)
			}
		})
	}
}
