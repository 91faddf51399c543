// Package racket implements the paddle-and-ball game: a racket sliding along
// the bottom of a walled arena keeps a ball in play. Losing the ball through
// the floor costs a life.
package racket

import (
	"github.com/vovakirdan/racketball/internal/arena"
	"github.com/vovakirdan/racketball/internal/core"
	"github.com/vovakirdan/racketball/internal/physics"
)

// Entity names in the world table.
const (
	EntityRacket    = "racket"
	EntityBall      = "ball"
	EntityWallLeft  = "wallLeft"
	EntityWallRight = "wallRight"
	EntityCeiling   = "ceiling"
	EntityFloor     = "floor"
)

// BallMaterial is a perfectly elastic, frictionless ball that never spins.
var BallMaterial = physics.Material{
	Restitution:     1,
	Friction:        0,
	AirFriction:     0,
	StaticFriction:  0,
	InfiniteInertia: true,
	Group:           -1,
}

// Entity is one named body with its render hints.
type Entity struct {
	Name  string
	Body  *physics.Body
	Size  physics.Vec // Bounding box; a circle's is its diameter squared off
	Color core.Color
	Round bool
}

// World is one round's simulation: the physics world, its collision listener
// and the named entities in it.
type World struct {
	Geometry arena.Geometry
	Physics  *physics.World
	Events   *physics.Listener

	Racket *Entity
	Ball   *Entity

	entities map[string]*Entity
	order    []string
}

// BuildWorld creates an independent gravity-free world for geo. The floor is
// only present for variants that take lives.
func BuildWorld(geo arena.Geometry, v Variant) *World {
	w := &World{
		Geometry: geo,
		Physics:  physics.NewWorld(),
		entities: make(map[string]*Entity),
	}

	static := physics.BodyOptions{Static: true}
	wall := func(name string, p arena.Placement, color string, opts physics.BodyOptions) *Entity {
		return w.put(name, physics.NewRectangle(p.X, p.Y, p.W, p.H, opts), physics.Vec{X: p.W, Y: p.H}, color, false)
	}

	w.Racket = w.put(EntityRacket,
		physics.NewRectangle(geo.StartX(), geo.RacketY(), geo.RacketWidth, geo.RacketHeight, static),
		physics.Vec{X: geo.RacketWidth, Y: geo.RacketHeight}, "blue", false)

	bx, by := geo.BallStart()
	d := geo.BallRadius * 2
	w.Ball = w.put(EntityBall,
		physics.NewCircle(bx, by, geo.BallRadius, physics.BodyOptions{Tag: physics.TagBall, Material: BallMaterial}),
		physics.Vec{X: d, Y: d}, "grey", true)

	wall(EntityWallLeft, geo.LeftWall(), "orange", static)
	wall(EntityWallRight, geo.RightWall(), "orange", static)
	wall(EntityCeiling, geo.Ceiling(), "orange", static)
	if v.Floor {
		wall(EntityFloor, geo.Floor(), "red", physics.BodyOptions{Static: true, Tag: physics.TagFloor})
	}

	bodies := make([]*physics.Body, 0, len(w.order))
	for _, name := range w.order {
		bodies = append(bodies, w.entities[name].Body)
	}
	w.Physics.Add(bodies...)
	w.Events = w.Physics.Listen()

	return w
}

func (w *World) put(name string, body *physics.Body, size physics.Vec, color string, round bool) *Entity {
	e := &Entity{
		Name:  name,
		Body:  body,
		Size:  size,
		Color: core.ColorByName(color),
		Round: round,
	}
	w.entities[name] = e
	w.order = append(w.order, name)
	return e
}

// Entity looks up an entity by name.
func (w *World) Entity(name string) (*Entity, bool) {
	e, ok := w.entities[name]
	return e, ok
}

// Names returns entity names in build order.
func (w *World) Names() []string {
	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}

// ResetBall stops the ball and puts it back on its resting spot.
func (w *World) ResetBall() {
	x, y := w.Geometry.BallStart()
	w.Ball.Body.SetVelocity(physics.Vec{})
	w.Ball.Body.SetPosition(physics.Vec{X: x, Y: y})
}

// BallEscaped reports whether the ball has left the arena entirely.
func (w *World) BallEscaped() bool {
	p := w.Ball.Body.Position()
	r := w.Geometry.BallRadius
	return p.X < -r || p.X > w.Geometry.Width+r || p.Y < -r || p.Y > w.Geometry.Height+r
}

// Close releases the collision listener and stops the simulation.
func (w *World) Close() {
	w.Events.Close()
	w.Physics.Close()
}
