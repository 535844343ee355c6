package flappy

import "math"

// Resolve classifies every obstacle against the actor using this frame's
// post-move positions. The actor sits at x=0.
//
// An obstacle scores when it crossed the actor's horizontal line this frame
// (0 < x < scrollSpeed*dt) and is the upper member of its pair, so the
// paired lower member is never double-counted.
//
// An obstacle kills when both center distances fall strictly inside the
// mercy-shrunk hitbox: |dy| < (height-mercy)/2 and |dx| < (width-mercy)/2.
// The scan stops at the first hit; score for obstacles already scanned
// still counts.
func (f *Field) Resolve(actorY, dt float64) (passed int, hit bool) {
	halfH := (f.cfg.Height - f.cfg.MercyZone) / 2
	halfW := (f.cfg.Width - f.cfg.MercyZone) / 2
	crossed := f.cfg.ScrollSpeed * dt

	for _, o := range f.obstacles {
		if o.Dir > 0 && o.X > 0 && o.X < crossed {
			passed++
		}
		if math.Abs(o.Y-actorY) < halfH && math.Abs(o.X) < halfW {
			hit = true
			break
		}
	}
	return passed, hit
}
