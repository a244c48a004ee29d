package progression

// Snapshot is the persisted view of the progression. Session-only
// fields (active power, in-progress level) are deliberately absent:
// they cannot survive a save/load cycle by construction.
type Snapshot struct {
	Levels             map[int]LevelBest
	Balance            int
	UnlockedZones      []string
	UnlockedConstructs []string
	Settings           Settings
}

// Persisted builds the full snapshot for a save. Saves always carry
// the complete state, never a delta, so overlapping saves are safe.
func (s *State) Persisted() Snapshot {
	snap := Snapshot{
		Levels:   make(map[int]LevelBest, len(s.Levels)),
		Balance:  s.Balance,
		Settings: s.Settings,
	}
	for lvl, lb := range s.Levels {
		snap.Levels[lvl] = lb
	}
	for id := range s.UnlockedZones {
		snap.UnlockedZones = append(snap.UnlockedZones, id)
	}
	for id := range s.UnlockedConstructs {
		snap.UnlockedConstructs = append(snap.UnlockedConstructs, id)
	}
	return snap
}

// FromSnapshot rebuilds a State from a loaded snapshot. Session-only
// fields start at their defaults regardless of their value at save time.
func FromSnapshot(snap Snapshot) *State {
	s := NewState()
	s.Balance = snap.Balance
	s.Settings = snap.Settings
	for lvl, lb := range snap.Levels {
		s.Levels[lvl] = lb
	}
	for _, id := range snap.UnlockedZones {
		s.UnlockedZones[id] = true
	}
	for _, id := range snap.UnlockedConstructs {
		s.UnlockedConstructs[id] = true
	}
	return s
}
