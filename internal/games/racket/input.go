package racket

import (
	"math"
	"sync"

	"github.com/vovakirdan/racketball/internal/arena"
	"github.com/vovakirdan/racketball/internal/core"
)

// DefaultQueueSize bounds the samples kept between ticks.
const DefaultQueueSize = 256

// MapInput returns the racket x position after applying one sample.
// The result is always within the racket's legal range.
func MapInput(s core.Sample, currentX float64, geo arena.Geometry) float64 {
	switch s := s.(type) {
	case core.GyroSample:
		delta := s.Y
		if math.Abs(s.X) > math.Abs(s.Y) {
			delta = s.X
		}
		return geo.ClampRacketX(currentX + finite(delta))

	case core.TouchEvent:
		if s.Type != core.TouchMove {
			break
		}
		if (s.DeltaX < 0 && currentX >= geo.MinX()) || (s.DeltaX > 0 && currentX <= geo.MaxX()) {
			return geo.ClampRacketX(currentX + finite(s.DeltaX))
		}
	}

	return geo.ClampRacketX(currentX)
}

// finite turns NaN and infinite deltas into no movement.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// InputQueue buffers samples from feed goroutines until the next tick.
// When full, the oldest sample is dropped. Gyro samples are only accepted
// while subscribed, i.e. while a ball is in play.
type InputQueue struct {
	mu         sync.Mutex
	buf        []core.Sample
	size       int
	gain       float64
	subscribed bool
	dropped    int
}

// NewInputQueue creates an unsubscribed queue holding at most size samples.
func NewInputQueue(size int) *InputQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &InputQueue{size: size, gain: 1}
}

// Configure changes the capacity and the gyro gain. Excess samples are
// dropped oldest first.
func (q *InputQueue) Configure(size int, gyroGain float64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if size <= 0 {
		size = DefaultQueueSize
	}
	q.size = size
	q.gain = gyroGain
	if over := len(q.buf) - size; over > 0 {
		q.buf = q.buf[over:]
		q.dropped += over
	}
}

// Push queues a sample without blocking. It reports whether the sample was
// accepted.
func (q *InputQueue) Push(s core.Sample) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch v := s.(type) {
	case core.GyroSample:
		if !q.subscribed {
			return false
		}
		v.X *= q.gain
		v.Y *= q.gain
		s = v
	case core.TouchEvent:
	default:
		return false
	}

	if len(q.buf) >= q.size {
		q.buf = q.buf[1:]
		q.dropped++
	}
	q.buf = append(q.buf, s)
	return true
}

// Drain returns queued samples in arrival order and empties the queue.
func (q *InputQueue) Drain() []core.Sample {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.buf) == 0 {
		return nil
	}
	out := q.buf
	q.buf = nil
	return out
}

// Subscribe starts accepting gyro samples.
func (q *InputQueue) Subscribe() {
	q.mu.Lock()
	q.subscribed = true
	q.mu.Unlock()
}

// Unsubscribe stops accepting gyro samples and discards queued ones.
func (q *InputQueue) Unsubscribe() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.subscribed = false
	kept := q.buf[:0]
	for _, s := range q.buf {
		if _, gyro := s.(core.GyroSample); !gyro {
			kept = append(kept, s)
		}
	}
	q.buf = kept
}

// Subscribed reports whether gyro samples are accepted.
func (q *InputQueue) Subscribed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.subscribed
}

// Clear discards every queued sample.
func (q *InputQueue) Clear() {
	q.mu.Lock()
	q.buf = nil
	q.mu.Unlock()
}

// Len returns the number of queued samples.
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

// Dropped returns how many samples were discarded because the queue was full.
func (q *InputQueue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
