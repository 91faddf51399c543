package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// contactType is the single collision type every shape carries, so one handler
// observes all contacts.
const contactType cp.CollisionType = 1

// Body is a rigid body with exactly one shape.
type Body struct {
	body   *cp.Body
	shape  *cp.Shape
	tag    Tag
	static bool
	damp   float64
	world  *World
}

// NewRectangle creates an unattached axis-aligned box centered at (x, y).
func NewRectangle(x, y, w, h float64, opts BodyOptions) *Body {
	b := newBody(x, y, opts, func(mass float64) float64 {
		return cp.MomentForBox(mass, w, h)
	})
	b.shape = cp.NewBox(b.body, w, h, 0)
	b.applyMaterial(opts.Material)
	return b
}

// NewCircle creates an unattached circle centered at (x, y).
func NewCircle(x, y, r float64, opts BodyOptions) *Body {
	b := newBody(x, y, opts, func(mass float64) float64 {
		return cp.MomentForCircle(mass, 0, r, cp.Vector{})
	})
	b.shape = cp.NewCircle(b.body, r, cp.Vector{})
	b.applyMaterial(opts.Material)
	return b
}

func newBody(x, y float64, opts BodyOptions, moment func(mass float64) float64) *Body {
	b := &Body{tag: opts.Tag, static: opts.Static}

	if opts.Static {
		b.body = cp.NewStaticBody()
	} else {
		mass := opts.mass()
		inertia := math.Inf(1)
		if !opts.Material.InfiniteInertia {
			inertia = moment(mass)
		}
		b.body = cp.NewBody(mass, inertia)
	}

	b.body.UserData = b
	b.body.SetPosition(cp.Vector{X: x, Y: y})
	return b
}

func (b *Body) applyMaterial(m Material) {
	restitution, friction := m.Restitution, m.Friction
	if b.static {
		// The engine multiplies coefficients of both shapes in contact, so a
		// neutral static surface defers to the moving body.
		restitution, friction = 1, 0
	}
	b.shape.SetElasticity(restitution)
	b.shape.SetFriction(friction)
	b.shape.SetCollisionType(contactType)
	b.damp = 1 - m.AirFriction

	group := uint(cp.NO_GROUP)
	if m.Group < 0 {
		group = uint(-m.Group)
	}
	b.shape.SetFilter(cp.NewShapeFilter(group, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES))
}

// Tag returns the body's label. A nil body has no tag.
func (b *Body) Tag() Tag {
	if b == nil {
		return TagNone
	}
	return b.tag
}

// IsStatic reports whether the body is immovable by the solver.
func (b *Body) IsStatic() bool {
	return b.static
}

// Position returns the body's center.
func (b *Body) Position() Vec {
	p := b.body.Position()
	return Vec{X: p.X, Y: p.Y}
}

// SetPosition teleports the body. The space never re-queries static shapes,
// so a moved static body's shape is removed and added again to refresh its
// bounds before the next collision pass.
func (b *Body) SetPosition(p Vec) {
	b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
	if b.static && b.world != nil {
		b.world.space.RemoveShape(b.shape)
		b.world.space.AddShape(b.shape)
	}
}

// Velocity returns the body's linear velocity in units per frame.
func (b *Body) Velocity() Vec {
	v := b.body.Velocity()
	return Vec{X: v.X, Y: v.Y}
}

// SetVelocity sets the linear velocity in units per frame. It has no effect on
// static bodies.
func (b *Body) SetVelocity(v Vec) {
	if b.static {
		return
	}
	b.body.SetVelocity(v.X, v.Y)
}
