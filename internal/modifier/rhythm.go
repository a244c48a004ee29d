package modifier

import "github.com/vovakirdan/neon-rush/internal/config"

// Rhythm tracks the streak of well-timed collects and derives the
// score multiplier steps 1x -> 2x -> 3x. A collect is well timed when
// it lands within the timeout window of the previous one; a collision
// or a timeout resets the streak.
type Rhythm struct {
	Streak int
	Since  float64 // Seconds since the last collect
}

// Tick advances the rhythm state for one tick.
func (r Rhythm) Tick(cfg config.RhythmConfig, dt float64, ev Events) Rhythm {
	r.Since += dt

	if ev.Collisions > 0 {
		r.Streak = 0
		return r
	}

	if ev.Collects > 0 {
		if r.Streak > 0 && r.Since > cfg.Timeout {
			// Too slow: this collect starts a fresh streak.
			r.Streak = 0
		}
		r.Streak += ev.Collects
		r.Since = 0
		return r
	}

	if r.Streak > 0 && r.Since > cfg.Timeout {
		r.Streak = 0
	}
	return r
}

// Multiplier returns the score multiplier for the current streak.
func (r Rhythm) Multiplier(cfg config.RhythmConfig) int {
	switch {
	case r.Streak >= cfg.ThreeXStreak:
		return 3
	case r.Streak >= cfg.TwoXStreak:
		return 2
	default:
		return 1
	}
}

// Active reports whether a streak is running.
func (r Rhythm) Active() bool {
	return r.Streak > 0
}

// RhythmSnapshot is the render view of the rhythm state.
type RhythmSnapshot struct {
	Streak     int
	Multiplier int
}
