// Package progression owns the persisted player state (level bests,
// currency, unlocks) and the dual-lock gates in front of zones and
// constructs. Session-only fields are never part of the persisted
// snapshot and reset to defaults on load.
package progression

import (
	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/outcome"
	"github.com/vovakirdan/neon-rush/internal/run"
)

// LevelBest is the stored best for one level.
type LevelBest struct {
	BestDistance   float64
	BestStars      int
	BestShards     int
	TimesPlayed    int
	FirstClearPaid bool
}

// Zone is a purchasable area behind a dual lock: a player-level
// requirement and a currency cost.
type Zone struct {
	ID            string
	RequiredLevel int
	Cost          int
}

// ZoneStatus is the gate's answer for one zone. Exactly five values;
// the four non-purchasable ones each carry a distinct message.
type ZoneStatus int

const (
	ZoneFullyLocked ZoneStatus = iota // Neither requirement met
	ZoneLevelLocked                   // Currency fine, level too low
	ZoneShardLocked                   // Level fine, balance too low
	ZonePurchasable                   // Both requirements met
	ZoneUnlocked                      // Already owned
)

// Message returns the player-facing explanation for the status.
func (z ZoneStatus) Message() string {
	switch z {
	case ZoneFullyLocked:
		return "Reach a higher level and gather more shards to unlock this zone."
	case ZoneLevelLocked:
		return "Clear more levels to unlock this zone."
	case ZoneShardLocked:
		return "Gather more shards to unlock this zone."
	case ZonePurchasable:
		return "Unlock available."
	case ZoneUnlocked:
		return "Already unlocked."
	default:
		return "?"
	}
}

// Settings are persisted player toggles.
type Settings struct {
	SoundOn   bool
	HapticsOn bool
}

// State is the full player progression. Exported fields persist;
// the session block resets to defaults on every load.
type State struct {
	Levels             map[int]LevelBest
	Balance            int
	UnlockedZones      map[string]bool
	UnlockedConstructs map[string]bool
	Settings           Settings

	// Session-only; excluded from persistence.
	ActivePower  string // Transient power selected for the next run
	SessionLevel int    // Level currently in progress, 0 when idle
}

// NewState returns an empty progression with default settings.
func NewState() *State {
	return &State{
		Levels:             make(map[int]LevelBest),
		UnlockedZones:      make(map[string]bool),
		UnlockedConstructs: make(map[string]bool),
		Settings:           Settings{SoundOn: true, HapticsOn: true},
	}
}

// PlayerLevel is the highest level cleared with at least one star.
func (s *State) PlayerLevel() int {
	best := 0
	for lvl, lb := range s.Levels {
		if lb.BestStars >= 1 && lvl > best {
			best = lvl
		}
	}
	return best
}

// ZoneStatus evaluates the dual lock for a zone. The answer is fully
// determined by (level met, shards met, already unlocked).
func (s *State) ZoneStatus(z Zone) ZoneStatus {
	if s.UnlockedZones[z.ID] {
		return ZoneUnlocked
	}
	levelMet := s.PlayerLevel() >= z.RequiredLevel
	shardsMet := s.Balance >= z.Cost
	switch {
	case levelMet && shardsMet:
		return ZonePurchasable
	case levelMet:
		return ZoneShardLocked
	case shardsMet:
		return ZoneLevelLocked
	default:
		return ZoneFullyLocked
	}
}

// UnlockZone performs the atomic unlock transaction: the balance
// decrement and the set append happen together or not at all.
// The returned status explains a refusal.
func (s *State) UnlockZone(z Zone) (ZoneStatus, bool) {
	status := s.ZoneStatus(z)
	if status != ZonePurchasable {
		return status, false
	}
	s.Balance -= z.Cost
	s.UnlockedZones[z.ID] = true
	return ZoneUnlocked, true
}

// UnlockConstruct purchases a cosmetic construct. Double-purchase of
// an owned construct fails without charging again.
func (s *State) UnlockConstruct(id string, cost int) bool {
	if s.UnlockedConstructs[id] || s.Balance < cost {
		return false
	}
	s.Balance -= cost
	s.UnlockedConstructs[id] = true
	return true
}

// Spend debits the balance if it covers the cost. It never partially
// mutates; this is the currency gate handed to the run's restore.
func (s *State) Spend(cost int) bool {
	if cost < 0 || s.Balance < cost {
		return false
	}
	s.Balance -= cost
	return true
}

// ApplyResult folds a finished run into the stored progression:
// best ratings merge with max semantics, the reward is credited, and
// the first-clear bonus is paid exactly once per level.
func (s *State) ApplyResult(res run.Result, rating outcome.Rating, cfg config.OutcomeConfig) {
	lb := s.Levels[res.Level]
	lb.TimesPlayed++
	lb.BestStars = outcome.MergeBest(lb.BestStars, rating.Stars)
	if res.DistanceTraveled > lb.BestDistance {
		lb.BestDistance = res.DistanceTraveled
	}
	if res.ShardsCollected > lb.BestShards {
		lb.BestShards = res.ShardsCollected
	}

	s.Balance += rating.Reward + res.ShardsCollected
	if rating.Stars >= 1 && !lb.FirstClearPaid {
		lb.FirstClearPaid = true
		s.Balance += cfg.FirstClearBonus
	}
	s.Levels[res.Level] = lb

	// The run session is over regardless of outcome.
	s.SessionLevel = 0
	s.ActivePower = ""
}
