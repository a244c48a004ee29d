package modifier

import "github.com/vovakirdan/neon-rush/internal/config"

// Magnet is the passive collectible attraction. It is always active
// when owned, consumes no resource, and its radius scales with the
// upgrade level.
type Magnet struct {
	Owned bool
	Level int
}

// Tick is a no-op; the magnet has no temporal state. It exists so the
// kind participates in the fixed evaluation order like the others.
func (m Magnet) Tick(dt float64, ev Events) Magnet {
	return m
}

// Active reports whether the magnet is owned.
func (m Magnet) Active() bool {
	return m.Owned
}

// Radius returns the attraction radius, zero when unowned.
func (m Magnet) Radius(cfg config.MagnetConfig) float64 {
	if !m.Owned {
		return 0
	}
	return cfg.BaseRadius + cfg.RadiusPerLevel*float64(m.Level)
}

// MagnetSnapshot is the render view of the magnet state.
type MagnetSnapshot struct {
	Owned  bool
	Radius float64
}
