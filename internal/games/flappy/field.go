package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Obstacle is one member of a pipe pair. Obstacles are placed once per run
// and recycled forever after; the field never allocates past Reset.
type Obstacle struct {
	X   float64 // Horizontal center, world units
	Y   float64 // Vertical center, world units
	Dir float64 // +1 upper member of a pair, -1 lower member
}

// Field owns the scrolling obstacle arena: a fixed lattice of pairCount
// pairs spaced evenly, recycled from the left world edge back to the right.
type Field struct {
	obstacles []Obstacle
	cfg       config.Obstacles
	worldW    float64
}

// NewField creates a field and places its obstacles using rng.
func NewField(cfg config.Config, rng *rand.Rand) *Field {
	f := &Field{
		obstacles: make([]Obstacle, 0, 2*cfg.Obstacles.PairCount),
		cfg:       cfg.Obstacles,
		worldW:    cfg.World.Width,
	}
	f.Reset(rng)
	return f
}

// centerGap is the distance from a pair's shared offset to each member's center.
func (f *Field) centerGap() float64 {
	return f.cfg.Height/2 + f.cfg.Gap
}

// drawOffset draws a uniform vertical offset in ±VerticalOffset.
func (f *Field) drawOffset(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * f.cfg.VerticalOffset
}

// period is the horizontal length of the obstacle lattice.
func (f *Field) period() float64 {
	return float64(f.cfg.PairCount) * f.cfg.Spacing
}

// Reset repositions all obstacles for a fresh run. Pair i goes at
// worldW/2 + i*spacing, both members sharing one random vertical offset.
func (f *Field) Reset(rng *rand.Rand) {
	f.obstacles = f.obstacles[:0]
	gap := f.centerGap()
	for i := 0; i < f.cfg.PairCount; i++ {
		off := f.drawOffset(rng)
		x := f.worldW/2 + float64(i)*f.cfg.Spacing
		f.obstacles = append(f.obstacles,
			Obstacle{X: x, Y: gap + off, Dir: 1},
			Obstacle{X: x, Y: -gap + off, Dir: -1},
		)
	}
}

// Advance scrolls every obstacle left by scrollSpeed*dt. An obstacle whose
// right edge passes the left world bound jumps forward by exactly one
// lattice period and takes a fresh vertical offset. All obstacles recycling
// in the same frame share the one offset drawn here.
func (f *Field) Advance(dt float64, rng *rand.Rand) {
	off := f.drawOffset(rng)
	for i := range f.obstacles {
		o := &f.obstacles[i]
		o.X -= f.cfg.ScrollSpeed * dt
		if o.X+f.cfg.Width/2 < -f.worldW/2 {
			o.X += f.period()
			o.Y = f.centerGap()*o.Dir + off
		}
	}
}

// Obstacles returns the live obstacle slice. Callers must not mutate it.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}
