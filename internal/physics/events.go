package physics

import "sync"

// DefaultListenerSize bounds each listener's queue.
const DefaultListenerSize = 64

// Pair is two bodies whose contact began during one engine update.
type Pair struct {
	A, B *Body
}

// Tags returns the tags of both bodies in report order.
func (p Pair) Tags() (Tag, Tag) {
	return p.A.Tag(), p.B.Tag()
}

// CollisionEvent groups the pairs that began contact in one engine update,
// in engine report order.
type CollisionEvent struct {
	Pairs []Pair
}

// Listener queues collision events for one consumer. When the queue is full
// the oldest event is dropped.
type Listener struct {
	world *World
	size  int

	mu      sync.Mutex
	queue   []CollisionEvent
	dropped int
	closed  bool
}

func newListener(w *World, size int) *Listener {
	if size <= 0 {
		size = DefaultListenerSize
	}
	return &Listener{world: w, size: size}
}

func (l *Listener) push(ev CollisionEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if len(l.queue) >= l.size {
		l.queue = l.queue[1:]
		l.dropped++
	}
	l.queue = append(l.queue, ev)
}

// Drain returns queued events in order and empties the queue.
func (l *Listener) Drain() []CollisionEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil
	}
	out := l.queue
	l.queue = nil
	return out
}

// Dropped returns how many events were discarded because the queue was full.
func (l *Listener) Dropped() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dropped
}

// Closed reports whether the listener no longer receives events.
func (l *Listener) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// Close deregisters the listener and discards anything still queued.
func (l *Listener) Close() {
	l.markClosed()
	if l.world != nil {
		l.world.remove(l)
	}
}

func (l *Listener) markClosed() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.queue = nil
}
