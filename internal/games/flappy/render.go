package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	pipeChar     = '█'
	pipeCapUpper = '▄' // gap-facing lip of an upper member
	pipeCapLower = '▀' // gap-facing lip of a lower member
)

// Pause overlay text
const (
	pauseTitle  = "Flap Flap Away~"
	pausePrompt = "press [space] to start."
	scoreLabel  = "Score: "
)

// Render draws the current frame to the screen buffer. World coordinates
// (y-up, origin at center) are mapped onto the cell grid; the world aspect
// never changes, only the sampling density.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	for _, o := range snap.Obstacles {
		g.drawObstacle(dst, o)
	}

	if snap.Actor != nil {
		g.drawActor(dst, snap)
	}

	dst.DrawTextColored(2, 0, fmt.Sprintf(" %s%d ", scoreLabel, snap.Score), core.ColorBrightYellow)

	if snap.Phase == PhasePaused {
		g.drawPauseOverlay(dst, snap.Score)
	}
}

// cellX maps a world x to a screen column.
func (g *Game) cellX(dst *core.Screen, wx float64) int {
	w := g.cfg.World.Width
	return int((wx + w/2) / w * float64(dst.Width()))
}

// cellY maps a world y to a screen row (world y-up, screen y-down).
func (g *Game) cellY(dst *core.Screen, wy float64) int {
	h := g.cfg.World.Height
	return int((h/2 - wy) / h * float64(dst.Height()))
}

func (g *Game) drawObstacle(dst *core.Screen, o ObstacleState) {
	halfW := g.cfg.Obstacles.Width / 2
	halfH := g.cfg.Obstacles.Height / 2

	left := g.cellX(dst, o.X-halfW)
	right := g.cellX(dst, o.X+halfW)
	top := g.cellY(dst, o.Y+halfH)
	bottom := g.cellY(dst, o.Y-halfH)

	for x := left; x <= right; x++ {
		for y := top; y <= bottom; y++ {
			dst.SetColored(x, y, pipeChar, core.ColorGreen)
		}
		// Lip on the gap-facing edge
		if o.Dir > 0 {
			dst.SetColored(x, bottom, pipeCapUpper, core.ColorBrightGreen)
		} else {
			dst.SetColored(x, top, pipeCapLower, core.ColorBrightGreen)
		}
	}
}

func (g *Game) drawActor(dst *core.Screen, snap Snapshot) {
	x := g.cellX(dst, 0)
	y := g.cellY(dst, snap.Actor.Y)

	glyph := '▶'
	switch {
	case snap.Actor.Tilt >= 45:
		glyph = '▲'
	case snap.Actor.Tilt <= -45:
		glyph = '▼'
	}
	dst.SetColored(x, y, glyph, core.ColorBrightYellow)
}

// drawPauseOverlay draws the end-of-run box: title, final score, restart prompt.
func (g *Game) drawPauseOverlay(dst *core.Screen, score int) {
	w := dst.Width()
	h := dst.Height()

	scoreText := fmt.Sprintf("%s%d", scoreLabel, score)
	boxW := core.Max(len(pauseTitle), len(pausePrompt)) + 4
	boxH := 7
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorOrange)

	dst.DrawTextColored(boxX+(boxW-len(pauseTitle))/2, boxY+1, pauseTitle, core.ColorOrange)
	dst.DrawTextColored(boxX+(boxW-len(scoreText))/2, boxY+3, scoreText, core.ColorOrange)
	dst.DrawTextColored(boxX+(boxW-len(pausePrompt))/2, boxY+5, pausePrompt, core.ColorOrange)
}
