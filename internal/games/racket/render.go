package racket

import (
	"fmt"
	"math"

	"github.com/vovakirdan/racketball/internal/core"
)

// Visual characters for rendering
const (
	WallChar   = '█'
	FloorChar  = '▓'
	RacketChar = '▀'
	BallChar   = '●'
)

// Minimum screen size that still shows a playable arena
const (
	minScreenW = 20
	minScreenH = 12
)

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// layout fits the arena into the screen below the HUD row, keeping the
// arena's proportions and centering it horizontally.
func (g *Game) layout(w, h int) core.Viewport {
	areaH := h - 1
	areaW := int(math.Round(float64(areaH) * g.geo.Width / g.geo.Height * cellAspect))
	if areaW > w {
		areaW = w
		areaH = core.Min(h-1, int(math.Round(float64(w)*g.geo.Height/g.geo.Width/cellAspect)))
	}
	areaW = core.Max(1, areaW)
	areaH = core.Max(1, areaH)

	return core.Viewport{
		Area:   core.NewRect((w-areaW)/2, 1, areaW, areaH),
		WorldW: g.geo.Width,
		WorldH: g.geo.Height,
	}
}

// ScreenToWorld maps a screen cell to the arena point under it, using the
// layout of the last rendered frame.
func (g *Game) ScreenToWorld(x, y int) (float64, float64) {
	view := g.view
	if view.Area.W == 0 {
		view = g.layout(g.runtime.ScreenW, g.runtime.ScreenH)
	}
	return view.ToWorld(x, y)
}

// Render draws the arena, entities, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.machine == nil {
		return
	}

	g.view = g.layout(dst.Width(), dst.Height())

	// Walls first so the ball is drawn over anything it overlaps
	for _, name := range []string{EntityWallLeft, EntityWallRight, EntityCeiling, EntityFloor, EntityRacket} {
		v, ok := g.snap[name]
		if !ok {
			continue
		}
		glyph := WallChar
		switch name {
		case EntityFloor:
			glyph = FloorChar
		case EntityRacket:
			glyph = RacketChar
		}
		g.drawBox(dst, v, glyph)
	}

	if ball, ok := g.snap[EntityBall]; ok {
		x, y := g.view.ToScreen(ball.Position.X, ball.Position.Y)
		dst.SetColored(x, y, BallChar, ball.Color)
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// drawBox fills the cells covered by an entity's bounding box.
func (g *Game) drawBox(dst *core.Screen, v EntityView, glyph rune) {
	const eps = 1e-6
	left := v.Position.X - v.Size.X/2
	top := v.Position.Y - v.Size.Y/2
	x0, y0 := g.view.ToScreen(left, top)
	x1, y1 := g.view.ToScreen(left+v.Size.X-eps, top+v.Size.Y-eps)
	dst.DrawRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), glyph, v.Color)
}

// renderHUD draws lives and the variant title on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.machine.State()

	left := "Practice"
	if g.variant.Floor {
		left = fmt.Sprintf("Lives: %d", st.Lives)
	}
	dst.DrawText(1, 0, left)

	title := g.variant.Title
	dst.DrawText(dst.Width()-len([]rune(title))-1, 0, title)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.machine.Phase() {
	case PhaseServe:
		dst.DrawTextCentered(dst.Height()-1, "SPACE or click to launch")

	case PhasePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case PhaseOver:
		g.drawCenteredBox(dst, "GAME OVER", "Press R to restart")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
