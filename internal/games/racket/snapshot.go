package racket

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/racketball/internal/core"
	"github.com/vovakirdan/racketball/internal/physics"
)

// EntityView is what the renderer needs to draw one entity.
type EntityView struct {
	Position physics.Vec
	Size     physics.Vec
	Color    core.Color
	Round    bool
}

// Snapshot maps entity names to their views at one instant.
type Snapshot map[string]EntityView

// Snapshot captures every entity's current position.
func (w *World) Snapshot() Snapshot {
	snap := make(Snapshot, len(w.order))
	for _, name := range w.order {
		e := w.entities[name]
		snap[name] = EntityView{
			Position: e.Body.Position(),
			Size:     e.Size,
			Color:    e.Color,
			Round:    e.Round,
		}
	}
	return snap
}

// Digest hashes the snapshot for determinism checks. Entries are visited in
// name order, so equal snapshots always produce equal digests.
func (s Snapshot) Digest() uint64 {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	d := xxhash.New()
	var buf [8]byte
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}

	for _, name := range names {
		v := s[name]
		_, _ = d.WriteString(name)
		putFloat(v.Position.X)
		putFloat(v.Position.Y)
		putFloat(v.Size.X)
		putFloat(v.Size.Y)
		_, _ = d.Write([]byte{byte(v.Color)})
	}

	return d.Sum64()
}
