package outcome

import (
	"testing"

	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/run"
)

func thresholds() config.OutcomeConfig {
	return config.DefaultGameConfig().Outcome
}

func TestEvaluateStars(t *testing.T) {
	cfg := thresholds()
	cases := []struct {
		name string
		res  run.Result
		want int
	}{
		{"incomplete", run.Result{Completed: false, ShardsCollected: 10, TotalShardsAvailable: 10}, 0},
		{"bare completion", run.Result{Completed: true, ShardsCollected: 0, TotalShardsAvailable: 10, DamageTaken: 5}, 1},
		{"two star", run.Result{Completed: true, ShardsCollected: 7, TotalShardsAvailable: 10, DamageTaken: cfg.TwoStarMaxDamage}, 2},
		{"three star", run.Result{Completed: true, ShardsCollected: 10, TotalShardsAvailable: 10, DamageTaken: 0}, 3},
		{"flawless but few shards", run.Result{Completed: true, ShardsCollected: 1, TotalShardsAvailable: 10, DamageTaken: 0}, 1},
		{"all shards but damaged", run.Result{Completed: true, ShardsCollected: 10, TotalShardsAvailable: 10, DamageTaken: 1}, 2},
		{"no shards placed", run.Result{Completed: true, TotalShardsAvailable: 0, DamageTaken: 0}, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Evaluate(c.res, cfg); got.Stars != c.want {
				t.Errorf("stars = %d, want %d", got.Stars, c.want)
			}
		})
	}
}

func TestEvaluateIsPure(t *testing.T) {
	cfg := thresholds()
	res := run.Result{Level: 5, Completed: true, ShardsCollected: 8, TotalShardsAvailable: 10}
	a := Evaluate(res, cfg)
	b := Evaluate(res, cfg)
	if a != b {
		t.Errorf("Evaluate not deterministic: %+v vs %+v", a, b)
	}
}

func TestReward(t *testing.T) {
	cfg := thresholds()
	if got := Reward(5, 0, cfg); got != 0 {
		t.Errorf("zero stars pay nothing, got %d", got)
	}
	want := cfg.BaseRewardPerLevel*5 + cfg.RewardPerStar*2
	if got := Reward(5, 2, cfg); got != want {
		t.Errorf("reward = %d, want %d", got, want)
	}
}

func TestMergeBestNeverDecreases(t *testing.T) {
	for prev := 0; prev <= 3; prev++ {
		for next := 0; next <= 3; next++ {
			got := MergeBest(prev, next)
			if got < prev {
				t.Errorf("MergeBest(%d,%d) = %d reduced the best", prev, next, got)
			}
			if next > prev && got != next {
				t.Errorf("MergeBest(%d,%d) = %d should take the higher", prev, next, got)
			}
		}
	}
}
