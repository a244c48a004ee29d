package progression

import "github.com/vovakirdan/neon-rush/internal/modifier"

// Construct IDs sold in the workshop. Each one maps to a permanent
// run upgrade.
const (
	ConstructMagnet      = "magnet"       // Shard attraction
	ConstructMagnetBoost = "magnet_boost" // Wider attraction radius
	ConstructDashBoost   = "dash_boost"   // Faster dash charge
	ConstructShield      = "shield"       // One absorbed hit per run
	ConstructScoreCore   = "score_core"   // Permanent score multiplier
)

// Loadout derives the run loadout from the owned constructs.
func (s *State) Loadout() modifier.Loadout {
	lo := modifier.Loadout{}
	if s.UnlockedConstructs[ConstructMagnet] {
		lo.MagnetOwned = true
		lo.MagnetLevel = 1
	}
	if s.UnlockedConstructs[ConstructMagnetBoost] {
		lo.MagnetLevel = 2
	}
	if s.UnlockedConstructs[ConstructDashBoost] {
		lo.DashLevel = 1
	}
	if s.UnlockedConstructs[ConstructShield] {
		lo.ShieldCharges = 1
	}
	if s.UnlockedConstructs[ConstructScoreCore] {
		lo.GlobalScoreMult = 1.1
	}
	return lo
}
