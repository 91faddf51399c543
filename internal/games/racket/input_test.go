package racket

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/racketball/internal/arena"
	"github.com/vovakirdan/racketball/internal/core"
)

type unknownSample struct{ core.GyroSample }

func TestMapInputGyroAxis(t *testing.T) {
	geo := arena.Default()

	tests := []struct {
		name     string
		sample   core.GyroSample
		expected float64
	}{
		{"x dominates", core.GyroSample{X: 5, Y: 1}, 185},
		{"y dominates", core.GyroSample{X: 1, Y: -7}, 173},
		{"tie prefers y", core.GyroSample{X: 4, Y: -4}, 176},
		{"negative x dominates", core.GyroSample{X: -9, Y: 2}, 171},
		{"clamped high", core.GyroSample{X: 1000}, 310},
		{"clamped low", core.GyroSample{Y: -1000}, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapInput(tc.sample, 180, geo))
		})
	}
}

func TestMapInputTouch(t *testing.T) {
	geo := arena.Default()

	tests := []struct {
		name     string
		sample   core.TouchEvent
		current  float64
		expected float64
	}{
		{"move right", core.TouchEvent{Type: core.TouchMove, DeltaX: 15}, 180, 195},
		{"move left", core.TouchEvent{Type: core.TouchMove, DeltaX: -15}, 180, 165},
		{"clamped at max", core.TouchEvent{Type: core.TouchMove, DeltaX: 50}, 300, 310},
		{"at min moving left", core.TouchEvent{Type: core.TouchMove, DeltaX: -5}, 50, 50},
		{"zero delta", core.TouchEvent{Type: core.TouchMove}, 200, 200},
		{"tap ignored", core.TouchEvent{Type: core.TouchTap, DeltaX: 30, LocationX: 10}, 200, 200},
		{"out of range is clamped", core.TouchEvent{Type: core.TouchTap}, 900, 310},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapInput(tc.sample, tc.current, geo))
		})
	}
}

func TestMapInputUnknownSample(t *testing.T) {
	geo := arena.Default()
	assert.Equal(t, 200.0, MapInput(unknownSample{core.GyroSample{X: 50}}, 200, geo))
	assert.Equal(t, 50.0, MapInput(nil, -3, geo))
}

func TestMapInputAlwaysWithinRange(t *testing.T) {
	geo := arena.Default()
	rng := rand.New(rand.NewSource(7))

	x := geo.StartX()
	for i := 0; i < 5000; i++ {
		var s core.Sample
		if rng.Intn(2) == 0 {
			s = core.GyroSample{X: rng.NormFloat64() * 80, Y: rng.NormFloat64() * 80}
		} else {
			s = core.TouchEvent{Type: core.TouchMove, DeltaX: rng.NormFloat64() * 120}
		}
		x = MapInput(s, x, geo)
		require.GreaterOrEqual(t, x, geo.MinX())
		require.LessOrEqual(t, x, geo.MaxX())
	}
}

func TestMapInputNonFiniteDeltas(t *testing.T) {
	geo := arena.Default()
	start := 200.0

	samples := []core.Sample{
		core.GyroSample{X: 1, Y: math.NaN()},
		core.GyroSample{X: math.NaN(), Y: 0},
		core.GyroSample{X: math.Inf(1), Y: 0},
		core.GyroSample{X: 0, Y: math.Inf(-1)},
		core.TouchEvent{Type: core.TouchMove, DeltaX: math.NaN()},
		core.TouchEvent{Type: core.TouchMove, DeltaX: math.Inf(1)},
	}
	for _, s := range samples {
		assert.Equal(t, start, MapInput(s, start, geo), "%+v should not move the racket", s)
	}

	assert.Equal(t, geo.StartX(), MapInput(core.GyroSample{}, math.NaN(), geo))
}

func TestInputQueueGyroNeedsSubscription(t *testing.T) {
	q := NewInputQueue(8)

	assert.False(t, q.Push(core.GyroSample{X: 1}))
	assert.True(t, q.Push(core.TouchEvent{Type: core.TouchMove, DeltaX: 1}))

	q.Subscribe()
	assert.True(t, q.Subscribed())
	assert.True(t, q.Push(core.GyroSample{X: 2}))
	assert.Equal(t, 2, q.Len())

	q.Unsubscribe()
	assert.False(t, q.Push(core.GyroSample{X: 3}))

	samples := q.Drain()
	require.Len(t, samples, 1, "unsubscribe discards queued gyro samples")
	assert.IsType(t, core.TouchEvent{}, samples[0])
}

func TestInputQueueDropsOldest(t *testing.T) {
	q := NewInputQueue(3)
	for i := 1; i <= 5; i++ {
		q.Push(core.TouchEvent{Type: core.TouchMove, DeltaX: float64(i)})
	}

	samples := q.Drain()
	require.Len(t, samples, 3)
	assert.Equal(t, 3.0, samples[0].(core.TouchEvent).DeltaX)
	assert.Equal(t, 5.0, samples[2].(core.TouchEvent).DeltaX)
	assert.Equal(t, 2, q.Dropped())
	assert.Nil(t, q.Drain())
}

func TestInputQueueConfigure(t *testing.T) {
	q := NewInputQueue(4)
	q.Subscribe()
	for i := 0; i < 4; i++ {
		q.Push(core.TouchEvent{Type: core.TouchMove, DeltaX: float64(i)})
	}

	q.Configure(2, 0.5)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 2, q.Dropped())

	q.Clear()
	q.Push(core.GyroSample{X: 8, Y: -2})
	samples := q.Drain()
	require.Len(t, samples, 1)
	assert.Equal(t, core.GyroSample{X: 4, Y: -1}, samples[0])
}

func TestInputQueueConcurrentPush(t *testing.T) {
	q := NewInputQueue(1024)
	done := make(chan struct{})

	for p := 0; p < 4; p++ {
		go func() {
			for i := 0; i < 100; i++ {
				q.Push(core.TouchEvent{Type: core.TouchMove, DeltaX: 1})
			}
			done <- struct{}{}
		}()
	}
	for p := 0; p < 4; p++ {
		<-done
	}

	assert.Len(t, q.Drain(), 400)
}
