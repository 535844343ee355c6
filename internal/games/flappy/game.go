// Package flappy implements a Flappy Bird-style game: a bird falls under
// gravity, flaps upward on input, and must thread an endless recycled field
// of pipe pairs. Contact or falling out of the world ends the run.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the run lifecycle state.
type Phase int

const (
	// PhasePlaying: exactly one live actor, time advancing, field scrolling.
	PhasePlaying Phase = iota
	// PhasePaused: the run has ended, the actor is gone, the overlay shows.
	// A flap edge restarts the run.
	PhasePaused
)

// Game is the simulation root. It is the sole owner of phase and score;
// the actor slot and the field are mutated only through their own steps.
// Not safe for concurrent use: one Step runs to completion per frame.
type Game struct {
	cfg   config.Config
	rng   *rand.Rand
	phase Phase
	score int
	actor *Actor // nil while paused
	field *Field
}

// New creates a game with the given tuning. Call Reset before stepping.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes or restarts the game with a fresh RNG stream.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.score = 0
	g.phase = PhasePlaying
	g.actor = &Actor{}

	if g.field == nil {
		g.field = NewField(g.cfg, g.rng)
	} else {
		g.field.Reset(g.rng)
	}
}

// Step advances the simulation by one frame of dt seconds.
// Frame order is fixed: actor integration, field advance, collision and
// scoring, death transition. While paused only the restart edge is read.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	flap := in.Has(core.ActionFlap)

	switch g.phase {
	case PhasePaused:
		if flap {
			g.restart()
		}
	case PhasePlaying:
		g.stepPlaying(flap, dt)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(flap bool, dt float64) {
	if g.actor == nil {
		// Inconsistent state guard: respawn a default actor rather than
		// stall the run. Normal transitions never leave this slot empty.
		g.actor = &Actor{}
		return
	}

	g.actor.Integrate(dt, flap, g.cfg.Physics)
	dead := g.actor.BelowFloor(g.cfg.World.Height)

	g.field.Advance(dt, g.rng)

	// A floor death skips the obstacle scan: no scoring on the final frame.
	if !dead {
		passed, hit := g.field.Resolve(g.actor.Y, dt)
		g.score += passed
		dead = hit
	}

	if dead {
		g.actor = nil
		g.phase = PhasePaused
	}
}

// restart begins a new run off a flap edge while paused. The RNG stream
// continues; only the platform reseeds.
func (g *Game) restart() {
	g.score = 0
	g.actor = &Actor{}
	g.field.Reset(g.rng)
	g.phase = PhasePlaying
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Paused: g.phase == PhasePaused,
	}
}
