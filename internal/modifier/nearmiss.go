package modifier

import "github.com/vovakirdan/neon-rush/internal/config"

// NearMissStreak counts consecutive near misses, independent of the
// rhythm streak. Every step_every misses grant a flat score bonus.
// Only a collision resets it.
type NearMissStreak struct {
	Streak int
}

// Tick advances the streak for one tick.
func (n NearMissStreak) Tick(dt float64, ev Events) NearMissStreak {
	if ev.Collisions > 0 {
		n.Streak = 0
		return n
	}
	n.Streak += ev.NearMisses
	return n
}

// BonusBetween returns the bonus points earned moving from prev to
// this state: one bonus per step boundary crossed.
func (n NearMissStreak) BonusBetween(cfg config.NearMissConfig, prev NearMissStreak) int {
	if cfg.StepEvery <= 0 || n.Streak <= prev.Streak {
		return 0
	}
	steps := n.Streak/cfg.StepEvery - prev.Streak/cfg.StepEvery
	return steps * cfg.BonusPerStep
}

// Active reports whether a streak is running.
func (n NearMissStreak) Active() bool {
	return n.Streak > 0
}

// NearMissSnapshot is the render view of the near-miss streak.
type NearMissSnapshot struct {
	Streak int
}
