package config

import (
	_ "embed"
)

//go:embed defaults/neonrush.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default tuning used when no config file
// is found and the embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Run: RunConfig{
			MaxDelta:      0.25,
			BaseHealth:    3,
			BaseScoreRate: 10,
			RestoreCost:   150,
		},
		Spawn: SpawnConfig{
			AheadDistance:  60,
			BaseGap:        6,
			ShardChance:    0.45,
			LetterChance:   0.05,
			HitWindow:      1.0,
			NearMissMargin: 1.5,
			PoolSize:       64,
		},
		Modifiers: ModifierConfig{
			Rhythm: RhythmConfig{
				TwoXStreak:   4,
				ThreeXStreak: 8,
				Timeout:      3.0,
			},
			NearMiss: NearMissConfig{
				BonusPerStep: 25,
				StepEvery:    3,
			},
			Resonance: ResonanceConfig{
				StreakThreshold: 10,
				Duration:        10.0,
				ShakeBoost:      1.5,
				ParticleBoost:   2.0,
			},
			Overdrive: OverdriveConfig{
				Duration:      8.0,
				WarningWindow: 2.0,
				FadeWindow:    0.6,
				Letters:       5,
			},
			SlowMotion: SlowMotionConfig{
				Uses:      2,
				Duration:  4.0,
				TimeScale: 0.5,
			},
			Shield: ShieldConfig{
				Charges:     2,
				InvulnAfter: 1.5,
			},
			Magnet: MagnetConfig{
				BaseRadius:     3.0,
				RadiusPerLevel: 1.0,
			},
			Dash: DashConfig{
				ChargeRate:       8.0,
				Duration:         3.0,
				DurationPerLevel: 0.5,
				ScoreMultiplier:  4.0,
			},
			QuantumLock: QuantumLockConfig{
				Interval:         20.0,
				TrackingDuration: 2.0,
				LockOnDuration:   1.0,
				HazardDuration:   5.0,
				ResolveDuration:  0.5,
			},
		},
		Outcome: OutcomeConfig{
			TwoStarShardRatio:   0.6,
			TwoStarMaxDamage:    3,
			ThreeStarShardRatio: 0.9,
			ThreeStarMaxDamage:  0,
			BaseRewardPerLevel:  10,
			RewardPerStar:       25,
			FirstClearBonus:     100,
		},
	}
}
