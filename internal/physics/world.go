package physics

import (
	"math"
	"sync"
	"time"

	"github.com/jakecoffman/cp"
)

// World is one simulation space. Step and body mutation belong to a single
// goroutine; Listen and Close may be called from any goroutine.
type World struct {
	space   *cp.Space
	bodies  []*Body
	pending []Pair

	mu        sync.Mutex
	listeners []*Listener
	closed    bool
}

// NewWorld creates an empty world without gravity.
func NewWorld() *World {
	w := &World{space: cp.NewSpace()}
	w.space.SetGravity(cp.Vector{})

	handler := w.space.NewCollisionHandler(contactType, contactType)
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := arb.Bodies()
		w.pending = append(w.pending, Pair{A: owner(a), B: owner(b)})
		return true
	}

	return w
}

func owner(b *cp.Body) *Body {
	if b == nil {
		return nil
	}
	body, _ := b.UserData.(*Body)
	return body
}

// Add attaches bodies to the world in one call. Bodies already attached to a
// world are skipped.
func (w *World) Add(bodies ...*Body) {
	for _, b := range bodies {
		if b == nil || b.world != nil {
			continue
		}
		w.space.AddBody(b.body)
		w.space.AddShape(b.shape)
		b.world = w
		w.bodies = append(w.bodies, b)
	}
}

// Bodies returns the attached bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step advances the simulation by elapsed wall time. The step is split into
// sub-steps of at most one frame; each sub-step that begins any contact
// publishes one CollisionEvent.
func (w *World) Step(elapsed time.Duration) {
	if w.isClosed() || elapsed <= 0 {
		return
	}

	frames := float64(elapsed) / float64(Frame)
	n := int(math.Ceil(frames))
	dt := frames / float64(n)

	for i := 0; i < n; i++ {
		w.pending = w.pending[:0]
		w.space.Step(dt)
		w.applyDamping(dt)

		if len(w.pending) > 0 {
			pairs := make([]Pair, len(w.pending))
			copy(pairs, w.pending)
			w.publish(CollisionEvent{Pairs: pairs})
		}
	}
}

func (w *World) applyDamping(dt float64) {
	for _, b := range w.bodies {
		if b.static || b.damp >= 1 {
			continue
		}
		k := math.Pow(math.Max(b.damp, 0), dt)
		v := b.body.Velocity()
		b.body.SetVelocity(v.X*k, v.Y*k)
	}
}

// Listen registers a new listener for collision-start events of this world.
// Listening on a closed world returns an already closed listener.
func (w *World) Listen() *Listener {
	return w.ListenSize(DefaultListenerSize)
}

// ListenSize is Listen with an explicit queue capacity.
func (w *World) ListenSize(size int) *Listener {
	l := newListener(w, size)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		l.closed = true
		return l
	}
	w.listeners = append(w.listeners, l)
	return l
}

func (w *World) remove(l *Listener) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, other := range w.listeners {
		if other == l {
			w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
			return
		}
	}
}

func (w *World) publish(ev CollisionEvent) {
	w.mu.Lock()
	listeners := make([]*Listener, len(w.listeners))
	copy(listeners, w.listeners)
	w.mu.Unlock()

	for _, l := range listeners {
		l.push(ev)
	}
}

func (w *World) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Close detaches every listener. Further steps are no-ops.
func (w *World) Close() {
	w.mu.Lock()
	listeners := w.listeners
	w.listeners = nil
	w.closed = true
	w.mu.Unlock()

	for _, l := range listeners {
		l.markClosed()
	}
}
