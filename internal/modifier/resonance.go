package modifier

import "github.com/vovakirdan/neon-rush/internal/config"

// Resonance is the rhythm-reward window: once the rhythm streak
// crosses the threshold, it runs for a fixed duration, inverting the
// palette and boosting shake and particle rates. It can be paused
// externally; the remaining time freezes and resumes exactly, never
// double-counted.
type Resonance struct {
	Remaining float64
	Paused    bool
}

// Activate starts the resonance window. Re-activating while already
// running is a silent no-op.
func (r Resonance) Activate(cfg config.ResonanceConfig) Resonance {
	if r.Active() {
		return r
	}
	r.Remaining = cfg.Duration
	r.Paused = false
	return r
}

// Tick counts the window down unless paused.
func (r Resonance) Tick(dt float64, ev Events) Resonance {
	if r.Paused || r.Remaining <= 0 {
		return r
	}
	r.Remaining -= dt
	if r.Remaining < 0 {
		r.Remaining = 0
	}
	return r
}

// Pause freezes the remaining time.
func (r Resonance) Pause() Resonance {
	if r.Active() {
		r.Paused = true
	}
	return r
}

// Resume unfreezes the remaining time from its exact frozen value.
func (r Resonance) Resume() Resonance {
	r.Paused = false
	return r
}

// Active reports whether the window is running (paused still counts).
func (r Resonance) Active() bool {
	return r.Remaining > 0
}

// ResonanceSnapshot is the render view of the resonance state.
type ResonanceSnapshot struct {
	Active        bool
	Remaining     float64
	Paused        bool
	ShakeBoost    float64
	ParticleBoost float64
}

// Snapshot builds the render view.
func (r Resonance) Snapshot(cfg config.ResonanceConfig) ResonanceSnapshot {
	s := ResonanceSnapshot{
		Active:    r.Active(),
		Remaining: r.Remaining,
		Paused:    r.Paused,
	}
	if s.Active {
		s.ShakeBoost = cfg.ShakeBoost
		s.ParticleBoost = cfg.ParticleBoost
	}
	return s
}
