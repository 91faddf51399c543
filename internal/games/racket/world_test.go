package racket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/racketball/internal/arena"
	"github.com/vovakirdan/racketball/internal/core"
	"github.com/vovakirdan/racketball/internal/physics"
)

func TestBuildWorldLives(t *testing.T) {
	geo := arena.Default()
	w := BuildWorld(geo, VariantLives)
	defer w.Close()

	assert.Equal(t,
		[]string{EntityRacket, EntityBall, EntityWallLeft, EntityWallRight, EntityCeiling, EntityFloor},
		w.Names())
	assert.Len(t, w.Physics.Bodies(), 6)

	racket, ok := w.Entity(EntityRacket)
	require.True(t, ok)
	assert.Equal(t, physics.Vec{X: 180, Y: 580}, racket.Body.Position())
	assert.True(t, racket.Body.IsStatic())
	assert.Equal(t, core.ColorBlue, racket.Color)

	ball, ok := w.Entity(EntityBall)
	require.True(t, ok)
	assert.Equal(t, physics.Vec{X: 180, Y: 560}, ball.Body.Position())
	assert.Equal(t, physics.TagBall, ball.Body.Tag())
	assert.False(t, ball.Body.IsStatic())
	assert.True(t, ball.Round)
	assert.Equal(t, core.ColorGray, ball.Color)

	floor, ok := w.Entity(EntityFloor)
	require.True(t, ok)
	assert.Equal(t, physics.TagFloor, floor.Body.Tag())
	assert.Equal(t, physics.Vec{X: 180, Y: 635}, floor.Body.Position())
	assert.Equal(t, physics.Vec{X: 360, Y: 10}, floor.Size)
	assert.Equal(t, core.ColorRed, floor.Color)

	left, _ := w.Entity(EntityWallLeft)
	assert.Equal(t, physics.Vec{X: 5, Y: 320}, left.Body.Position())
	assert.Equal(t, core.ColorOrange, left.Color)

	right, _ := w.Entity(EntityWallRight)
	assert.Equal(t, physics.Vec{X: 355, Y: 320}, right.Body.Position())

	ceiling, _ := w.Entity(EntityCeiling)
	assert.Equal(t, physics.Vec{X: 180, Y: 5}, ceiling.Body.Position())
	assert.Equal(t, physics.TagNone, ceiling.Body.Tag())
}

func TestBuildWorldPracticeHasNoFloor(t *testing.T) {
	w := BuildWorld(arena.Default(), VariantPractice)
	defer w.Close()

	_, ok := w.Entity(EntityFloor)
	assert.False(t, ok)
	assert.Len(t, w.Names(), 5)
}

func TestBuildWorldIsIndependent(t *testing.T) {
	geo := arena.Default()
	a := BuildWorld(geo, VariantLives)
	b := BuildWorld(geo, VariantLives)
	defer a.Close()
	defer b.Close()

	a.Racket.Body.SetPosition(physics.Vec{X: 100, Y: geo.RacketY()})
	a.Ball.Body.SetVelocity(physics.Vec{X: 0, Y: -5})
	a.Physics.Step(physics.Frame)

	assert.Equal(t, 180.0, b.Racket.Body.Position().X)
	assert.Equal(t, physics.Vec{X: 180, Y: 560}, b.Ball.Body.Position())
	assert.Empty(t, b.Events.Drain())
}

func TestResetBall(t *testing.T) {
	w := BuildWorld(arena.Default(), VariantLives)
	defer w.Close()

	w.Ball.Body.SetVelocity(physics.Vec{X: 3, Y: -4})
	w.Physics.Step(5 * physics.Frame)
	w.ResetBall()

	assert.Equal(t, physics.Vec{X: 180, Y: 560}, w.Ball.Body.Position())
	assert.Equal(t, physics.Vec{}, w.Ball.Body.Velocity())
}

func TestBallEscaped(t *testing.T) {
	w := BuildWorld(arena.Default(), VariantPractice)
	defer w.Close()

	assert.False(t, w.BallEscaped())
	w.Ball.Body.SetPosition(physics.Vec{X: 180, Y: 700})
	assert.True(t, w.BallEscaped())
}

func TestWorldCloseReleasesListener(t *testing.T) {
	w := BuildWorld(arena.Default(), VariantLives)
	w.Close()

	assert.True(t, w.Events.Closed())
}

func TestSnapshotDigest(t *testing.T) {
	geo := arena.Default()
	a := BuildWorld(geo, VariantLives)
	b := BuildWorld(geo, VariantLives)
	defer a.Close()
	defer b.Close()

	assert.Equal(t, a.Snapshot().Digest(), b.Snapshot().Digest())

	snap := a.Snapshot()
	assert.Equal(t, physics.Vec{X: 180, Y: 580}, snap[EntityRacket].Position)
	assert.Equal(t, physics.Vec{X: 12, Y: 12}, snap[EntityBall].Size)

	a.Racket.Body.SetPosition(physics.Vec{X: 120, Y: geo.RacketY()})
	assert.NotEqual(t, a.Snapshot().Digest(), b.Snapshot().Digest())
}
