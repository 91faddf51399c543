// Package physics adapts the Chipmunk2D engine to the small surface the game
// needs: rectangles and circles, a fixed-rate step, and collision-start events
// delivered through per-listener queues instead of callbacks.
//
// Time is measured in 60 Hz frames. Velocities are in world units per frame.
package physics

import (
	"math"
	"time"
)

// FrameRate is the number of engine frames per second of wall time.
const FrameRate = 60

// Frame is the wall-clock duration of one engine frame.
const Frame = time.Second / FrameRate

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Tag labels a body for collision classification. Most bodies are untagged.
type Tag string

const (
	TagNone  Tag = ""
	TagBall  Tag = "ball"
	TagFloor Tag = "floor"
)

// Material holds the surface and mass properties of a body.
type Material struct {
	Restitution     float64
	Friction        float64
	AirFriction     float64 // Fraction of velocity lost per frame
	StaticFriction  float64
	InfiniteInertia bool // Body never rotates
	Group           int  // Negative: never collides with bodies of the same group
}

// BodyOptions configures a body at creation time.
type BodyOptions struct {
	Static   bool
	Mass     float64 // Dynamic bodies only; defaults to 1
	Tag      Tag
	Material Material
}

func (o BodyOptions) mass() float64 {
	if o.Mass <= 0 {
		return 1
	}
	return o.Mass
}
