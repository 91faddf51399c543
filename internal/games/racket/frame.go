package racket

import (
	"time"

	"github.com/vovakirdan/racketball/internal/core"
	"github.com/vovakirdan/racketball/internal/physics"
)

// Tick applies samples to the racket in arrival order, steps the simulation
// by elapsed and returns what to draw. It never touches round state.
func Tick(w *World, samples []core.Sample, elapsed time.Duration) Snapshot {
	if len(samples) > 0 {
		pos := w.Racket.Body.Position()
		x := pos.X
		for _, s := range samples {
			x = MapInput(s, x, w.Geometry)
		}
		w.Racket.Body.SetPosition(physics.Vec{X: x, Y: w.Geometry.RacketY()})
	}

	w.Physics.Step(elapsed)
	return w.Snapshot()
}
