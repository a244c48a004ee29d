package modifier

import "github.com/vovakirdan/neon-rush/internal/config"

// SlowMotion is the finite-use time dilation. Activation consumes one
// use instantly; re-activating while active is a silent no-op and
// spends nothing.
type SlowMotion struct {
	UsesLeft  int
	Remaining float64
}

// NewSlowMotion returns the state at run start.
func NewSlowMotion(cfg config.SlowMotionConfig) SlowMotion {
	return SlowMotion{UsesLeft: cfg.Uses}
}

// Activate spends a use if available and not already active.
// The bool reports whether the activation took effect.
func (s SlowMotion) Activate(cfg config.SlowMotionConfig) (SlowMotion, bool) {
	if s.Active() || s.UsesLeft <= 0 {
		return s, false
	}
	s.UsesLeft--
	s.Remaining = cfg.Duration
	return s, true
}

// Tick counts down the dilation window.
func (s SlowMotion) Tick(dt float64, ev Events) SlowMotion {
	if s.Remaining > 0 {
		s.Remaining -= dt
		if s.Remaining < 0 {
			s.Remaining = 0
		}
	}
	return s
}

// Active reports whether time is currently dilated.
func (s SlowMotion) Active() bool {
	return s.Remaining > 0
}

// TimeScale returns the dt multiplier to apply this tick.
func (s SlowMotion) TimeScale(cfg config.SlowMotionConfig) float64 {
	if s.Active() {
		return cfg.TimeScale
	}
	return 1.0
}

// SlowMotionSnapshot is the render view of the slow-motion state.
type SlowMotionSnapshot struct {
	Active    bool
	UsesLeft  int
	Remaining float64
}
