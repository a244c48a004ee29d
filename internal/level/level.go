// Package level derives static run parameters from a level number.
// All formulas are pure so the same level always produces the same
// configuration, which keeps star thresholds and replays consistent.
package level

import (
	"fmt"
	"math"
)

// MaxLevel is the highest playable level.
const MaxLevel = 100

// Config holds the immutable parameters for one level.
// Built once via New and never mutated during a run.
type Config struct {
	Level           int
	TargetDistance  float64 // Distance required to complete the level
	BaseSpeed       float64 // Forward speed before modifier scaling
	ObstacleDensity float64 // 0..1, drives spawn rate and minimum gap
	Chapter         int     // 1..5 band the level belongs to
	MovingObstacles bool    // Obstacles drift between lanes from level 21
}

// New builds the Config for a level number.
// Levels outside [1, MaxLevel] are rejected before a run starts so that
// downstream formulas are never silently extrapolated.
func New(lvl int) (Config, error) {
	if lvl < 1 || lvl > MaxLevel {
		return Config{}, fmt.Errorf("level: %d out of range [1,%d]", lvl, MaxLevel)
	}
	return Config{
		Level:           lvl,
		TargetDistance:  TargetDistance(lvl),
		BaseSpeed:       BaseSpeed(lvl),
		ObstacleDensity: ObstacleDensity(lvl),
		Chapter:         Chapter(lvl),
		MovingObstacles: lvl >= 21,
	}, nil
}

// TargetDistance returns the distance needed to complete a level.
func TargetDistance(lvl int) float64 {
	return float64(lvl) * 100
}

// BaseSpeed returns the forward speed for a level.
// Flat across the intro levels, then two linear ramps.
func BaseSpeed(lvl int) float64 {
	switch {
	case lvl <= 10:
		return 1.0
	case lvl <= 30:
		return 1.2 + float64(lvl-10)*0.08
	default:
		return 2.8 + float64(lvl-30)*0.05
	}
}

// ObstacleDensity returns the spawn density for a level, capped at 1.0
// (reached at level 25).
func ObstacleDensity(lvl int) float64 {
	return math.Min(1.0, 0.5+float64(lvl)*0.02)
}

// Chapter returns the chapter band a level belongs to.
func Chapter(lvl int) int {
	switch {
	case lvl <= 10:
		return 1
	case lvl <= 20:
		return 2
	case lvl <= 30:
		return 3
	case lvl <= 40:
		return 4
	default:
		return 5
	}
}
