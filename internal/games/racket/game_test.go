package racket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/racketball/internal/config"
	"github.com/vovakirdan/racketball/internal/core"
	"github.com/vovakirdan/racketball/internal/physics"
	"github.com/vovakirdan/racketball/internal/registry"
)

func newTestGame(t *testing.T, v Variant) *Game {
	t.Helper()
	g := NewWithConfig(v, config.DefaultRacketConfig())
	g.Reset(core.DefaultConfig())
	t.Cleanup(g.Close)
	return g
}

// moveRacketAside parks the racket at the right wall so a ball dropped from
// the start position falls past it.
func moveRacketAside(g *Game) {
	g.Feed(core.TouchEvent{Type: core.TouchMove, DeltaX: 1000})
	g.Update(physics.Frame)
}

// dropBall launches straight down and steps until a life is lost.
func dropBall(t *testing.T, g *Game) {
	t.Helper()
	before := g.State().Lives

	require.True(t, g.Start(physics.Vec{X: 180, Y: 1000}))
	for i := 0; i < 120 && g.State().Lives == before; i++ {
		g.Update(physics.Frame)
	}
	require.Equal(t, before-1, g.State().Lives, "ball should reach the floor")
}

func TestGameEndToEndLives(t *testing.T) {
	g := newTestGame(t, VariantLives)
	assert.Equal(t, core.GameState{Lives: 3, Running: true}, g.State())

	moveRacketAside(g)
	assert.Equal(t, 310.0, g.Snapshot()[EntityRacket].Position.X)

	dropBall(t, g)
	st := g.State()
	assert.Equal(t, 2, st.Lives)
	assert.True(t, st.Running)
	assert.False(t, st.Started)
	assert.Equal(t, physics.Vec{X: 180, Y: 560}, g.Snapshot()[EntityBall].Position)

	dropBall(t, g)
	assert.Equal(t, 2-1, g.State().Lives)

	dropBall(t, g)
	st = g.State()
	assert.Equal(t, 0, st.Lives)
	assert.False(t, st.Running)
	assert.True(t, st.GameOver)

	// Updates after game over return the frozen snapshot
	frozen := g.Snapshot().Digest()
	g.Feed(core.TouchEvent{Type: core.TouchMove, DeltaX: -50})
	assert.Equal(t, frozen, g.Update(physics.Frame).Digest())

	oldWorld := g.Machine().World()
	g.Restart()

	assert.Equal(t, core.GameState{Lives: 3, Running: true}, g.State())
	assert.Equal(t, 180.0, g.Snapshot()[EntityRacket].Position.X)
	assert.True(t, oldWorld.Events.Closed())
	assert.NotSame(t, oldWorld, g.Machine().World())
}

func TestGameBallBouncesOffRacket(t *testing.T) {
	g := newTestGame(t, VariantLives)

	require.True(t, g.Start(physics.Vec{X: 180, Y: 1000}))
	sawUp := false
	for i := 0; i < 30; i++ {
		g.Update(physics.Frame)
		if g.Machine().World().Ball.Body.Velocity().Y < 0 {
			sawUp = true
			break
		}
	}

	assert.True(t, sawUp, "ball should bounce off the racket")
	assert.Equal(t, 3, g.State().Lives)
}

func TestGameTapLaunches(t *testing.T) {
	g := newTestGame(t, VariantLives)

	g.Feed(core.TouchEvent{Type: core.TouchTap, LocationX: 180, LocationY: 100})
	g.Update(physics.Frame)

	st := g.State()
	assert.True(t, st.Started)
	assert.Less(t, g.Machine().World().Ball.Body.Velocity().Y, 0.0)
}

func TestGameGyroOnlyWhileInPlay(t *testing.T) {
	g := newTestGame(t, VariantLives)

	g.Feed(core.GyroSample{X: 40})
	g.Update(physics.Frame)
	assert.Equal(t, 180.0, g.Snapshot()[EntityRacket].Position.X, "gyro ignored while serving")

	require.True(t, g.Start(physics.Vec{X: 180, Y: 0}))
	g.Feed(core.GyroSample{X: 40})
	g.Update(physics.Frame)
	assert.Equal(t, 220.0, g.Snapshot()[EntityRacket].Position.X)
}

func TestGameStepKeyboard(t *testing.T) {
	g := newTestGame(t, VariantLives)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	assert.Equal(t, 192.0, g.Snapshot()[EntityRacket].Position.X)

	in = core.NewInputFrame()
	in.Set(core.ActionLaunch)
	res := g.Step(in)
	assert.True(t, res.State.Started)

	v := g.Machine().World().Ball.Body.Velocity()
	assert.InDelta(t, 10.0, v.Len(), 1e-6)
	assert.Less(t, v.Y, 0.0)
}

func TestGameStepPause(t *testing.T) {
	g := newTestGame(t, VariantLives)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := g.Step(pause)
	assert.True(t, res.State.Paused)
	assert.False(t, res.State.Running)

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)
	assert.Equal(t, 180.0, g.Snapshot()[EntityRacket].Position.X, "no movement while paused")

	res = g.Step(pause)
	assert.False(t, res.State.Paused)
	assert.True(t, res.State.Running)
}

func TestGameDragWhilePausedIsDiscarded(t *testing.T) {
	g := newTestGame(t, VariantLives)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	// Mouse drags keep arriving through Feed while paused
	for i := 0; i < 20; i++ {
		g.Feed(core.TouchEvent{Type: core.TouchMove, DeltaX: 5})
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 0, g.queue.Len())

	g.Step(pause)
	require.True(t, g.State().Running)
	g.Step(core.NewInputFrame())
	assert.Equal(t, 180.0, g.Snapshot()[EntityRacket].Position.X, "racket should not jump on resume")
}

func TestGameStepRestart(t *testing.T) {
	g := newTestGame(t, VariantLives)
	require.True(t, g.Start(physics.Vec{X: 180, Y: 0}))

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	assert.Equal(t, core.GameState{Lives: 3, Running: true}, res.State)
}

func TestPracticeServesAgain(t *testing.T) {
	g := newTestGame(t, VariantPractice)
	moveRacketAside(g)

	// Mirrored: aiming above the ball sends it down and out of the arena
	require.True(t, g.Start(physics.Vec{X: 180, Y: 0}))
	served := false
	for i := 0; i < 60; i++ {
		g.Update(physics.Frame)
		if !g.State().Started {
			served = true
			break
		}
	}

	require.True(t, served)
	assert.Equal(t, 3, g.State().Lives)
	assert.True(t, g.State().Running)
	assert.Equal(t, physics.Vec{X: 180, Y: 560}, g.Snapshot()[EntityBall].Position)
}

func TestGameDeterminism(t *testing.T) {
	run := func() uint64 {
		g := NewWithConfig(VariantLives, config.DefaultRacketConfig())
		g.Reset(core.DefaultConfig())
		defer g.Close()

		g.Start(physics.Vec{X: 260, Y: 40})
		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			if i%7 < 3 {
				in.Set(core.ActionLeft)
			} else if i%7 < 5 {
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		return g.Snapshot().Digest()
	}

	assert.Equal(t, run(), run())
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, VariantLives)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Lives: 3")
	assert.Contains(t, out, "Racketball")
	assert.Contains(t, out, string(BallChar))
	assert.Contains(t, out, string(RacketChar))
	assert.Contains(t, out, "launch")

	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == BallChar {
				assert.Equal(t, core.ColorGray, c.Color)
				found = true
				break
			}
		}
	}
	assert.True(t, found)
}

func TestGameRenderOverlays(t *testing.T) {
	g := newTestGame(t, VariantLives)
	screen := core.NewScreen(80, 24)

	g.Machine().Pause()
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Machine().Resume()
	for i := 0; i < 3; i++ {
		g.Machine().OnBallHitFloor()
	}
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, VariantLives)
	screen := core.NewScreen(10, 5)

	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "small") || strings.Contains(screen.String(), "Need"))
}

func TestScreenToWorld(t *testing.T) {
	g := newTestGame(t, VariantLives)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	racket := g.Snapshot()[EntityRacket].Position
	sx, sy := g.view.ToScreen(racket.X, racket.Y)
	wx, wy := g.ScreenToWorld(sx, sy)

	cellW := g.geo.Width / float64(g.view.Area.W)
	cellH := g.geo.Height / float64(g.view.Area.H)
	assert.InDelta(t, racket.X, wx, cellW)
	assert.InDelta(t, racket.Y, wy, cellH)
}

func TestRegisteredVariants(t *testing.T) {
	for _, id := range []string{"racket", "racket_practice"} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
		g.Close()
	}
}

func TestCloseBeforeReset(t *testing.T) {
	g := New()
	g.Close()
	assert.Equal(t, core.GameState{}, g.State())
	assert.Equal(t, core.StepResult{}, g.Step(core.NewInputFrame()))
}
