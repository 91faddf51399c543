// Package arena holds the fixed geometry of the playing field: screen bounds,
// wall thickness, racket size and its legal travel range.
package arena

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/racketball/internal/core"
)

// ErrInvalid is returned by Validate for geometry that cannot be played.
var ErrInvalid = errors.New("arena: invalid geometry")

// Geometry describes the arena in world units (pixels of the original
// portrait layout). Y grows downward.
type Geometry struct {
	Width         float64
	Height        float64
	WallThickness float64
	RacketWidth   float64
	RacketHeight  float64
	RacketOffset  float64 // Distance from the bottom edge to the racket center
	BallRadius    float64
	BallLift      float64 // Distance of the resting ball above the racket center
}

// Default returns the portrait phone layout.
func Default() Geometry {
	return Geometry{
		Width:         360,
		Height:        640,
		WallThickness: 10,
		RacketWidth:   80,
		RacketHeight:  12,
		RacketOffset:  60,
		BallRadius:    6,
		BallLift:      20,
	}
}

// StartX is the horizontal center of the arena, where racket and ball start.
func (g Geometry) StartX() float64 {
	return g.Width / 2
}

// RacketY is the fixed vertical position of the racket center.
func (g Geometry) RacketY() float64 {
	return g.Height - g.RacketOffset
}

// MinX is the leftmost legal racket center.
func (g Geometry) MinX() float64 {
	return g.WallThickness + g.RacketWidth/2
}

// MaxX is the rightmost legal racket center.
func (g Geometry) MaxX() float64 {
	return g.Width - g.WallThickness - g.RacketWidth/2
}

// ClampRacketX restricts x to [MinX, MaxX]. NaN maps to StartX.
func (g Geometry) ClampRacketX(x float64) float64 {
	if math.IsNaN(x) {
		return g.StartX()
	}
	return core.ClampF(x, g.MinX(), g.MaxX())
}

// BallStart is where the ball rests before each launch.
func (g Geometry) BallStart() (x, y float64) {
	return g.StartX(), g.RacketY() - g.BallLift
}

// Placement is the center and size of one static arena body.
type Placement struct {
	X, Y float64
	W, H float64
}

// LeftWall is flush with the left screen edge, full height.
func (g Geometry) LeftWall() Placement {
	t := g.WallThickness
	return Placement{X: t / 2, Y: g.Height / 2, W: t, H: g.Height}
}

// RightWall is flush with the right screen edge, full height.
func (g Geometry) RightWall() Placement {
	t := g.WallThickness
	return Placement{X: g.Width - t/2, Y: g.Height / 2, W: t, H: g.Height}
}

// Ceiling is flush with the top edge, full width.
func (g Geometry) Ceiling() Placement {
	t := g.WallThickness
	return Placement{X: g.Width / 2, Y: t / 2, W: g.Width, H: t}
}

// Floor is flush with the bottom edge, full width.
func (g Geometry) Floor() Placement {
	t := g.WallThickness
	return Placement{X: g.Width / 2, Y: g.Height - t/2, W: g.Width, H: t}
}

// Validate reports geometry that would make the game unplayable.
func (g Geometry) Validate() error {
	dims := []struct {
		name string
		v    float64
	}{
		{"width", g.Width},
		{"height", g.Height},
		{"wall_thickness", g.WallThickness},
		{"racket_width", g.RacketWidth},
		{"racket_height", g.RacketHeight},
		{"racket_offset", g.RacketOffset},
		{"ball_radius", g.BallRadius},
	}
	for _, d := range dims {
		if d.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, d.name, d.v)
		}
	}

	if g.MinX() > g.MaxX() {
		return fmt.Errorf("%w: racket width %v does not fit between walls of a %v wide arena",
			ErrInvalid, g.RacketWidth, g.Width)
	}

	if g.RacketY()+g.RacketHeight/2 > g.Height-g.WallThickness {
		return fmt.Errorf("%w: racket overlaps the floor (offset %v)", ErrInvalid, g.RacketOffset)
	}

	_, by := g.BallStart()
	if by-g.BallRadius < g.WallThickness {
		return fmt.Errorf("%w: resting ball overlaps the ceiling", ErrInvalid)
	}

	return nil
}
