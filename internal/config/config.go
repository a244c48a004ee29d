// Package config provides YAML-based tuning for the run core and
// outcome evaluation. Values the design treats as externally supplied
// configuration (modifier durations, star thresholds, rewards) live
// here rather than as constants in the simulation packages.
package config

// GameConfig aggregates all tunable parameters for a run.
type GameConfig struct {
	Run       RunConfig      `yaml:"run"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Modifiers ModifierConfig `yaml:"modifiers"`
	Outcome   OutcomeConfig  `yaml:"outcome"`
}

// RunConfig defines loop-level parameters.
type RunConfig struct {
	MaxDelta      float64 `yaml:"max_delta"`       // Largest dt accepted per tick, seconds
	BaseHealth    int     `yaml:"base_health"`     // Hit points at run start
	BaseScoreRate float64 `yaml:"base_score_rate"` // Points per distance unit before multipliers
	RestoreCost   int     `yaml:"restore_cost"`    // Currency price of the one-per-run restore
}

// SpawnConfig defines entity placement and hit-testing parameters.
type SpawnConfig struct {
	AheadDistance  float64 `yaml:"ahead_distance"`   // How far ahead of the player rows spawn
	BaseGap        float64 `yaml:"base_gap"`         // Minimum gap at density 1.0; scaled by 1/density
	ShardChance    float64 `yaml:"shard_chance"`     // Probability a row carries a shard
	LetterChance   float64 `yaml:"letter_chance"`    // Probability a row carries a letter collectible
	HitWindow      float64 `yaml:"hit_window"`       // Position overlap distance counting as a hit
	NearMissMargin float64 `yaml:"near_miss_margin"` // Extra margin that reports a near miss
	PoolSize       int     `yaml:"pool_size"`        // Entity pool capacity
}

// ModifierConfig groups per-kind modifier tuning.
type ModifierConfig struct {
	Rhythm      RhythmConfig      `yaml:"rhythm"`
	NearMiss    NearMissConfig    `yaml:"near_miss"`
	Resonance   ResonanceConfig   `yaml:"resonance"`
	Overdrive   OverdriveConfig   `yaml:"overdrive"`
	SlowMotion  SlowMotionConfig  `yaml:"slow_motion"`
	Shield      ShieldConfig      `yaml:"shield"`
	Magnet      MagnetConfig      `yaml:"magnet"`
	Dash        DashConfig        `yaml:"dash"`
	QuantumLock QuantumLockConfig `yaml:"quantum_lock"`
}

// RhythmConfig tunes the well-timed-collect multiplier.
type RhythmConfig struct {
	TwoXStreak   int     `yaml:"two_x_streak"`   // Streak needed for the 2x step
	ThreeXStreak int     `yaml:"three_x_streak"` // Streak needed for the 3x step
	Timeout      float64 `yaml:"timeout"`        // Seconds without a timed collect before reset
}

// NearMissConfig tunes the independent near-miss streak.
type NearMissConfig struct {
	BonusPerStep int `yaml:"bonus_per_step"` // Points granted per streak step
	StepEvery    int `yaml:"step_every"`     // Near misses per bonus step
}

// ResonanceConfig tunes the rhythm-triggered resonance window.
type ResonanceConfig struct {
	StreakThreshold int     `yaml:"streak_threshold"` // Rhythm streak that activates resonance
	Duration        float64 `yaml:"duration"`         // Seconds resonance stays active
	ShakeBoost      float64 `yaml:"shake_boost"`
	ParticleBoost   float64 `yaml:"particle_boost"`
}

// OverdriveConfig tunes the all-letters overdrive state.
type OverdriveConfig struct {
	Duration      float64 `yaml:"duration"`       // Active seconds once all letters are gathered
	WarningWindow float64 `yaml:"warning_window"` // Final seconds that flash a warning
	FadeWindow    float64 `yaml:"fade_window"`    // Presentation fade after logical deactivation
	Letters       int     `yaml:"letters"`        // Distinct letter collectibles in a run
}

// SlowMotionConfig tunes the finite-use time dilation.
type SlowMotionConfig struct {
	Uses      int     `yaml:"uses"`       // Activations available per run
	Duration  float64 `yaml:"duration"`   // Seconds per activation
	TimeScale float64 `yaml:"time_scale"` // dt multiplier while active
}

// ShieldConfig tunes the charge-based shield.
type ShieldConfig struct {
	Charges     int     `yaml:"charges"`      // Charges at activation; never regenerate mid-run
	InvulnAfter float64 `yaml:"invuln_after"` // Invulnerability seconds after a charge is spent
}

// MagnetConfig tunes the passive collectible attraction.
type MagnetConfig struct {
	BaseRadius     float64 `yaml:"base_radius"`
	RadiusPerLevel float64 `yaml:"radius_per_level"` // Added radius per upgrade level
}

// DashConfig tunes the phase-dash energy meter.
type DashConfig struct {
	ChargeRate       float64 `yaml:"charge_rate"`        // Energy percent gained per second
	Duration         float64 `yaml:"duration"`           // Active seconds at upgrade level 0
	DurationPerLevel float64 `yaml:"duration_per_level"` // Added seconds per upgrade level
	ScoreMultiplier  float64 `yaml:"score_multiplier"`   // Scoring multiplier while dashing
}

// QuantumLockConfig tunes the quantum-lock phase machine.
type QuantumLockConfig struct {
	Interval         float64 `yaml:"interval"` // Seconds between lock attempts once enabled
	TrackingDuration float64 `yaml:"tracking_duration"`
	LockOnDuration   float64 `yaml:"lock_on_duration"`
	HazardDuration   float64 `yaml:"hazard_duration"`
	ResolveDuration  float64 `yaml:"resolve_duration"`
}

// OutcomeConfig supplies star-rating cut points and reward constants.
// Cut points are configuration, not inferred from gameplay.
type OutcomeConfig struct {
	TwoStarShardRatio   float64 `yaml:"two_star_shard_ratio"`
	TwoStarMaxDamage    int     `yaml:"two_star_max_damage"`
	ThreeStarShardRatio float64 `yaml:"three_star_shard_ratio"`
	ThreeStarMaxDamage  int     `yaml:"three_star_max_damage"`
	BaseRewardPerLevel  int     `yaml:"base_reward_per_level"`
	RewardPerStar       int     `yaml:"reward_per_star"`
	FirstClearBonus     int     `yaml:"first_clear_bonus"`
}
