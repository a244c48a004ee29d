package modifier

import "github.com/vovakirdan/neon-rush/internal/config"

// Shield holds N charges. The first collision after activation spends
// one charge and grants a fixed invulnerability window instead of
// damage. Charges never regenerate mid-run.
type Shield struct {
	Charges     int
	InvulnLeft  float64
	absorbedNow int // Hits absorbed during the last tick
}

// NewShield returns the state at run start.
func NewShield(charges int) Shield {
	return Shield{Charges: charges}
}

// Tick spends a charge on the first damaging hit of the tick while
// charges remain, then counts the invulnerability window down.
func (s Shield) Tick(cfg config.ShieldConfig, dt float64, ev Events) Shield {
	s.absorbedNow = 0
	if s.InvulnLeft > 0 {
		s.InvulnLeft -= dt
		if s.InvulnLeft < 0 {
			s.InvulnLeft = 0
		}
	}
	if ev.Collisions > 0 && s.Charges > 0 && s.InvulnLeft <= 0 {
		s.Charges--
		s.InvulnLeft = cfg.InvulnAfter
		s.absorbedNow = 1
	}
	return s
}

// Absorbed returns how many hits the shield ate in the last tick.
func (s Shield) Absorbed() int {
	return s.absorbedNow
}

// Invulnerable reports whether the post-absorption window is running.
func (s Shield) Invulnerable() bool {
	return s.InvulnLeft > 0
}

// Active reports whether the shield still has charges or an open window.
func (s Shield) Active() bool {
	return s.Charges > 0 || s.InvulnLeft > 0
}

// ShieldSnapshot is the render view of the shield state.
type ShieldSnapshot struct {
	Charges      int
	Invulnerable bool
}
