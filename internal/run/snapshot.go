package run

import (
	"hash/fnv"
	"math"

	"github.com/vovakirdan/neon-rush/internal/modifier"
	"github.com/vovakirdan/neon-rush/internal/track"
)

// EntityView is the read-only render view of one track entity.
type EntityView struct {
	ID       int
	Kind     track.Kind
	Lane     int
	Offset   float64 // Distance ahead of the player; negative is behind
	Affinity track.Affinity
	Letter   int
}

// Snapshot is the complete read-only view of a run, taken between
// ticks. The presentation layer renders from this and nothing else.
type Snapshot struct {
	Phase    Phase
	Level    int
	Lane     int
	Color    track.Affinity
	Distance float64
	Target   float64
	Percent  float64
	Score    int
	Health   int
	Shards   int
	Letters  int
	Restored bool

	// PaletteInverted mirrors the resonance visual effect so the
	// renderer can swap the two color channels.
	PaletteInverted bool

	Modifiers modifier.Snapshot
	Entities  []EntityView
}

// Snapshot builds the current view.
func (r *Run) Snapshot() Snapshot {
	s := Snapshot{
		Phase:    r.phase,
		Level:    r.lvl.Level,
		Lane:     r.lane,
		Color:    r.color,
		Distance: r.distance,
		Target:   r.lvl.TargetDistance,
		Percent:  r.distance / r.lvl.TargetDistance * 100,
		Score:    int(r.score),
		Health:   r.health,
		Shards:   r.shards,
		Letters:  len(r.letters),
		Restored: r.restored,

		PaletteInverted: r.effects.PaletteInverted,

		Modifiers: r.mods.Snapshot(),
	}
	for i := range r.field.Entities() {
		e := &r.field.Entities()[i]
		if !e.Active() || e.Consumed {
			continue
		}
		s.Entities = append(s.Entities, EntityView{
			ID:       e.ID,
			Kind:     e.Kind,
			Lane:     e.Lane,
			Offset:   e.Pos - r.distance,
			Affinity: e.Affinity,
			Letter:   e.Letter,
		})
	}
	return s
}

// Hash folds the snapshot into a single value for determinism tests:
// two identically seeded runs fed the same inputs must agree on it.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	put := func(v uint64) {
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	put(uint64(s.Phase))
	put(uint64(s.Lane))
	put(uint64(s.Color))
	put(math.Float64bits(s.Distance))
	put(uint64(s.Score))
	put(uint64(s.Health))
	put(uint64(s.Shards))
	put(uint64(s.Letters))
	for _, e := range s.Entities {
		put(uint64(e.ID))
		put(uint64(e.Kind))
		put(uint64(e.Lane))
		put(math.Float64bits(e.Offset))
	}
	return h.Sum64()
}
