// Package outcome converts a finished run into a star rating and a
// currency reward. Evaluation is pure: the same result and thresholds
// always produce the same rating, so replays are safe to re-evaluate.
package outcome

import (
	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/run"
)

// Rating is the evaluated quality of one run.
type Rating struct {
	Stars  int // 0..3
	Reward int // Currency granted, excluding the first-clear bonus
}

// Evaluate rates a run against the configured cut points.
// Stars combine completion, shard-collection ratio, and damage taken:
// an incomplete run is always 0 stars; completion alone is 1.
func Evaluate(res run.Result, cfg config.OutcomeConfig) Rating {
	stars := 0
	if res.Completed {
		stars = 1
		ratio := ShardRatio(res)
		if ratio >= cfg.TwoStarShardRatio && res.DamageTaken <= cfg.TwoStarMaxDamage {
			stars = 2
		}
		if ratio >= cfg.ThreeStarShardRatio && res.DamageTaken <= cfg.ThreeStarMaxDamage {
			stars = 3
		}
	}
	return Rating{
		Stars:  stars,
		Reward: Reward(res.Level, stars, cfg),
	}
}

// ShardRatio returns collected/available, or 1 when none were placed
// so a shard-free run cannot be penalized for an empty denominator.
func ShardRatio(res run.Result) float64 {
	if res.TotalShardsAvailable == 0 {
		return 1
	}
	return float64(res.ShardsCollected) / float64(res.TotalShardsAvailable)
}

// Reward returns the currency for a rated run: base scaled by level
// plus a per-star bonus. The first-clear bonus is paid separately by
// the progression gate, exactly once per level.
func Reward(level, stars int, cfg config.OutcomeConfig) int {
	if stars <= 0 {
		return 0
	}
	return cfg.BaseRewardPerLevel*level + cfg.RewardPerStar*stars
}

// MergeBest folds a new star count into a stored best. Replaying with
// a lower rating never reduces it.
func MergeBest(prev, next int) int {
	if next > prev {
		return next
	}
	return prev
}
