package level

import (
	"math"
	"testing"
)

func TestNewRejectsOutOfRange(t *testing.T) {
	for _, lvl := range []int{-5, 0, 101, 1000} {
		if _, err := New(lvl); err == nil {
			t.Errorf("New(%d) should fail", lvl)
		}
	}
	for _, lvl := range []int{1, 50, 100} {
		if _, err := New(lvl); err != nil {
			t.Errorf("New(%d) failed: %v", lvl, err)
		}
	}
}

func TestTargetDistance(t *testing.T) {
	prev := 0.0
	for lvl := 1; lvl <= MaxLevel; lvl++ {
		got := TargetDistance(lvl)
		want := float64(lvl) * 100
		if got != want {
			t.Fatalf("TargetDistance(%d) = %v, want %v", lvl, got, want)
		}
		if got <= prev {
			t.Fatalf("TargetDistance not strictly increasing at level %d", lvl)
		}
		prev = got
	}
}

func TestBaseSpeedFormula(t *testing.T) {
	// Flat intro band
	for lvl := 1; lvl <= 10; lvl++ {
		if got := BaseSpeed(lvl); got != 1.0 {
			t.Errorf("BaseSpeed(%d) = %v, want 1.0", lvl, got)
		}
	}

	// Piecewise values
	cases := []struct {
		lvl  int
		want float64
	}{
		{11, 1.28},
		{20, 2.0},
		{30, 2.8},
		{31, 2.85},
		{100, 6.3},
	}
	for _, c := range cases {
		if got := BaseSpeed(c.lvl); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("BaseSpeed(%d) = %v, want %v", c.lvl, got, c.want)
		}
	}

	// Strictly increasing above 11
	prev := BaseSpeed(11)
	for lvl := 12; lvl <= MaxLevel; lvl++ {
		got := BaseSpeed(lvl)
		if got <= prev {
			t.Fatalf("BaseSpeed not strictly increasing at level %d (%v <= %v)", lvl, got, prev)
		}
		prev = got
	}
}

func TestObstacleDensity(t *testing.T) {
	prev := 0.0
	for lvl := 1; lvl <= MaxLevel; lvl++ {
		got := ObstacleDensity(lvl)
		want := math.Min(1.0, 0.5+float64(lvl)*0.02)
		if got != want {
			t.Fatalf("ObstacleDensity(%d) = %v, want %v", lvl, got, want)
		}
		if got < prev {
			t.Fatalf("ObstacleDensity decreasing at level %d", lvl)
		}
		if got > 1.0 {
			t.Fatalf("ObstacleDensity(%d) exceeds 1.0", lvl)
		}
		prev = got
	}

	// The cap is reached exactly at level 25 and holds from there on.
	if got := ObstacleDensity(25); got != 1.0 {
		t.Errorf("ObstacleDensity(25) = %v, want exactly 1.0", got)
	}
	for lvl := 25; lvl <= MaxLevel; lvl++ {
		if ObstacleDensity(lvl) != 1.0 {
			t.Errorf("ObstacleDensity(%d) should stay at cap", lvl)
		}
	}
}

func TestChapterBands(t *testing.T) {
	for lvl := 1; lvl <= MaxLevel; lvl++ {
		want := 5
		switch {
		case lvl <= 10:
			want = 1
		case lvl <= 20:
			want = 2
		case lvl <= 30:
			want = 3
		case lvl <= 40:
			want = 4
		}
		if got := Chapter(lvl); got != want {
			t.Errorf("Chapter(%d) = %d, want %d", lvl, got, want)
		}

		cfg, err := New(lvl)
		if err != nil {
			t.Fatalf("New(%d): %v", lvl, err)
		}
		if cfg.MovingObstacles != (lvl >= 21) {
			t.Errorf("MovingObstacles(%d) = %v", lvl, cfg.MovingObstacles)
		}
	}
}

func TestConfigSelfConsistent(t *testing.T) {
	cfg, err := New(25)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TargetDistance != TargetDistance(25) ||
		cfg.BaseSpeed != BaseSpeed(25) ||
		cfg.ObstacleDensity != ObstacleDensity(25) ||
		cfg.Chapter != Chapter(25) {
		t.Error("Config fields must all derive from the same level")
	}
}
