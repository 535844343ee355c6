package flappy

// Snapshot captures the complete presentation state of a frame: everything
// a renderer needs, and the surface determinism tests compare.
type Snapshot struct {
	Phase     Phase
	Score     int
	Actor     *ActorState // nil while paused
	Obstacles []ObstacleState
	WorldW    float64
	WorldH    float64
}

// ActorState is the actor's exported per-frame state.
type ActorState struct {
	Y    float64
	Vel  float64
	Tilt float64 // Degrees, clamped to ±90
}

// ObstacleState is one obstacle's exported per-frame state.
type ObstacleState struct {
	X   float64
	Y   float64
	Dir float64
}

// Snapshot returns the current frame's presentation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:  g.phase,
		Score:  g.score,
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
	}

	if g.actor != nil {
		snap.Actor = &ActorState{
			Y:    g.actor.Y,
			Vel:  g.actor.Vel,
			Tilt: g.actor.Tilt(g.cfg.Physics),
		}
	}

	obstacles := g.field.Obstacles()
	snap.Obstacles = make([]ObstacleState, len(obstacles))
	for i, o := range obstacles {
		snap.Obstacles[i] = ObstacleState(o)
	}
	return snap
}
