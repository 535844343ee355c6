package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// fieldWith builds a field holding hand-placed obstacles.
func fieldWith(obstacles ...Obstacle) *Field {
	cfg := config.Default()
	return &Field{
		obstacles: obstacles,
		cfg:       cfg.Obstacles,
		worldW:    cfg.World.Width,
	}
}

func TestScoringCrossing(t *testing.T) {
	// scrollSpeed=120, dt=0.1: an upper member within (0, 12) ahead scores
	tests := []struct {
		name   string
		o      Obstacle
		passed int
	}{
		{"upper member just ahead", Obstacle{X: 1.0, Y: 396, Dir: 1}, 1},
		{"lower member never scores", Obstacle{X: 1.0, Y: -396, Dir: -1}, 0},
		{"behind the actor", Obstacle{X: -1.0, Y: 396, Dir: 1}, 0},
		{"exactly on the line", Obstacle{X: 0, Y: 396, Dir: 1}, 0},
		{"too far ahead", Obstacle{X: 12.0, Y: 396, Dir: 1}, 0},
		{"just inside the window", Obstacle{X: 11.9, Y: 396, Dir: 1}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := fieldWith(tc.o)
			passed, hit := f.Resolve(0, 0.1)
			if passed != tc.passed {
				t.Errorf("passed = %d, expected %d", passed, tc.passed)
			}
			if hit {
				t.Error("unexpected collision")
			}
		})
	}
}

func TestScoringMultipleSameFrame(t *testing.T) {
	f := fieldWith(
		Obstacle{X: 2.0, Y: 396, Dir: 1},
		Obstacle{X: 2.0, Y: -396, Dir: -1},
		Obstacle{X: 8.0, Y: 390, Dir: 1},
	)

	passed, hit := f.Resolve(0, 0.1)
	if passed != 2 {
		t.Errorf("passed = %d, expected both upper members to score", passed)
	}
	if hit {
		t.Error("unexpected collision")
	}
}

func TestCollisionEnvelope(t *testing.T) {
	// Defaults: height 648, width 144, mercy 22.5
	// Hitbox half-extents: dy < 312.75, dx < 60.75 (strict)
	tests := []struct {
		name string
		o    Obstacle
		hit  bool
	}{
		{"dead center", Obstacle{X: 0, Y: 0, Dir: 1}, true},
		{"inside both axes", Obstacle{X: 60, Y: 312, Dir: 1}, true},
		{"vertical boundary is safe", Obstacle{X: 0, Y: 312.75, Dir: 1}, false},
		{"just inside vertically", Obstacle{X: 0, Y: 312.74, Dir: 1}, true},
		{"horizontal boundary is safe", Obstacle{X: 60.75, Y: 0, Dir: 1}, false},
		{"just inside horizontally", Obstacle{X: 60.74, Y: 0, Dir: 1}, true},
		{"mercy zone graze", Obstacle{X: 61, Y: 313, Dir: -1}, false},
		{"negative offsets mirror", Obstacle{X: -60, Y: -312, Dir: -1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := fieldWith(tc.o)
			_, hit := f.Resolve(0, 1.0/60)
			if hit != tc.hit {
				t.Errorf("hit = %v, expected %v", hit, tc.hit)
			}
		})
	}
}

func TestCollisionUsesActorY(t *testing.T) {
	// Obstacle centered at y=500: actor must be within (187.25, 812.75) to hit
	f := fieldWith(Obstacle{X: 0, Y: 500, Dir: 1})

	if _, hit := f.Resolve(200, 1.0/60); !hit {
		t.Error("actor at y=200 should be inside the hitbox")
	}
	if _, hit := f.Resolve(100, 1.0/60); hit {
		t.Error("actor at y=100 should be clear")
	}
}

func TestScoreCountedBeforeHitShortCircuits(t *testing.T) {
	// Scan order: scoring obstacle first, then a colliding one.
	f := fieldWith(
		Obstacle{X: 1.0, Y: 396, Dir: 1},
		Obstacle{X: 0, Y: 0, Dir: -1},
	)

	passed, hit := f.Resolve(0, 0.1)
	if !hit {
		t.Fatal("expected collision")
	}
	if passed != 1 {
		t.Errorf("passed = %d, score scanned before the hit must still count", passed)
	}
}
