package run

import (
	"testing"

	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/event"
	"github.com/vovakirdan/neon-rush/internal/level"
	"github.com/vovakirdan/neon-rush/internal/modifier"
)

func newTestRun(t *testing.T, lvl int, opts Options) *Run {
	t.Helper()
	cfg, err := level.New(lvl)
	if err != nil {
		t.Fatalf("level.New(%d): %v", lvl, err)
	}
	r, err := New(cfg, config.DefaultGameConfig(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestNewRejectsBadConfig(t *testing.T) {
	lvl, _ := level.New(1)

	bad := config.DefaultGameConfig()
	bad.Run.BaseHealth = 0
	if _, err := New(lvl, bad, Options{}); err == nil {
		t.Error("zero base health should fail construction")
	}

	bad = config.DefaultGameConfig()
	bad.Run.MaxDelta = 0
	if _, err := New(lvl, bad, Options{}); err == nil {
		t.Error("zero max delta should fail construction")
	}

	if _, err := New(level.Config{Level: 0}, config.DefaultGameConfig(), Options{}); err == nil {
		t.Error("invalid level config should fail construction")
	}
}

func TestTickRequiresStart(t *testing.T) {
	r := newTestRun(t, 1, Options{Seed: 1})
	r.Tick(0.1)
	if r.Snapshot().Distance != 0 {
		t.Error("ticks before Start must not advance the run")
	}

	r.Start()
	r.Tick(0.1)
	if r.Snapshot().Distance <= 0 {
		t.Error("run should advance after Start")
	}
}

func TestDeltaClamped(t *testing.T) {
	gameCfg := config.DefaultGameConfig()
	r := newTestRun(t, 1, Options{Seed: 1})
	r.Start()
	r.Tick(10) // e.g. returning from background

	maxStep := level.BaseSpeed(1) * gameCfg.Run.MaxDelta
	if d := r.Snapshot().Distance; d > maxStep+1e-9 {
		t.Errorf("distance %v exceeds clamped step %v", d, maxStep)
	}
}

func TestPauseFreezesRun(t *testing.T) {
	r := newTestRun(t, 1, Options{Seed: 1})
	r.Start()
	r.Tick(0.1)
	before := r.Snapshot()

	r.Pause()
	for i := 0; i < 50; i++ {
		r.Tick(0.1)
	}
	after := r.Snapshot()
	if after.Distance != before.Distance || after.Score != before.Score {
		t.Error("paused run must not advance")
	}
	if after.Phase != PhasePaused {
		t.Errorf("phase = %v, want paused", after.Phase)
	}

	r.Resume()
	r.Tick(0.1)
	if r.Snapshot().Distance <= before.Distance {
		t.Error("resumed run should advance")
	}
}

func TestCompletionIsOneShot(t *testing.T) {
	r := newTestRun(t, 1, Options{Seed: 3})
	r.Start()

	// Level 1 target is 100; run long enough to finish.
	for i := 0; i < 20000 && !r.Phase().Terminal(); i++ {
		r.Tick(1.0 / 60)
	}
	// A downed run concedes so the test always reaches a terminal phase.
	if r.Phase() == PhaseDowned {
		r.Concede()
	}

	res, ok := r.Result()
	if !ok {
		t.Fatal("terminal run must produce a result")
	}

	frozen := r.Snapshot()
	for i := 0; i < 100; i++ {
		r.Tick(1.0 / 60)
	}
	if r.Snapshot().Hash() != frozen.Hash() {
		t.Error("ticks after the terminal transition must not mutate state")
	}
	res2, _ := r.Result()
	if res != res2 {
		t.Error("result must be immutable")
	}
}

func TestCompletedRunResult(t *testing.T) {
	// A shielded, restoring run on level 1 should complete.
	restores := 0
	r := newTestRun(t, 1, Options{
		Seed:    7,
		Loadout: modifier.Loadout{ShieldCharges: 99},
		Restore: func(cost int) bool { restores++; return true },
	})
	r.Start()
	for i := 0; i < 40000 && !r.Phase().Terminal(); i++ {
		r.Tick(1.0 / 60)
		if r.Phase() == PhaseDowned {
			if !r.Restore() {
				r.Concede()
			}
		}
	}

	res, ok := r.Result()
	if !ok {
		t.Fatal("run did not reach a terminal phase")
	}
	if res.Completed {
		if res.DistanceTraveled < level.TargetDistance(1) {
			t.Errorf("completed with distance %v < target", res.DistanceTraveled)
		}
	}
	if res.ShardsCollected > res.TotalShardsAvailable {
		t.Errorf("collected %d of %d shards", res.ShardsCollected, res.TotalShardsAvailable)
	}
	if restores > 1 {
		t.Errorf("restore fired %d times, must be once per run", restores)
	}
}

func TestRestoreOncePerRun(t *testing.T) {
	r := newTestRun(t, 1, Options{
		Seed:    1,
		Restore: func(cost int) bool { return true },
	})
	r.Start()
	r.phase = PhaseDowned

	if !r.Restore() {
		t.Fatal("first restore should succeed")
	}
	if r.Phase() != PhaseRunning || r.Snapshot().Health != 1 {
		t.Error("restore should revive with one health")
	}

	r.phase = PhaseDowned
	if r.Restore() {
		t.Error("second restore in one run must fail")
	}
}

func TestRestoreFailsWithoutFunds(t *testing.T) {
	r := newTestRun(t, 1, Options{
		Seed:    1,
		Restore: func(cost int) bool { return false },
	})
	r.Start()
	r.phase = PhaseDowned
	r.health = 0

	if r.Restore() {
		t.Error("restore must fail when the currency gate declines")
	}
	if r.Snapshot().Health != 0 || r.Phase() != PhaseDowned {
		t.Error("failed restore must not partially mutate")
	}
}

func TestLaneSwapBoundsAndColorFlip(t *testing.T) {
	r := newTestRun(t, 1, Options{Seed: 1})
	r.Start()

	startColor := r.Snapshot().Color
	r.SwapLane(+1)
	r.Tick(1.0 / 60)
	s := r.Snapshot()
	if s.Lane != 2 {
		t.Errorf("lane = %d, want 2", s.Lane)
	}
	if s.Color == startColor {
		t.Error("lane swap should flip the player color")
	}

	// Swapping off the edge is a silent no-op.
	r.SwapLane(+1)
	r.Tick(1.0 / 60)
	if got := r.Snapshot(); got.Lane != 2 || got.Color != s.Color {
		t.Error("out-of-bounds swap must change nothing")
	}
}

func TestDeterminism(t *testing.T) {
	play := func() Snapshot {
		r := newTestRun(t, 15, Options{Seed: 424242})
		r.Start()
		for i := 0; i < 600; i++ {
			if i%37 == 0 {
				r.SwapLane(+1)
			}
			if i%53 == 0 {
				r.SwapLane(-1)
			}
			if i == 120 {
				r.ActivateSlowMotion()
			}
			r.Tick(1.0 / 60)
		}
		return r.Snapshot()
	}

	a, b := play(), play()
	if a.Hash() != b.Hash() {
		t.Fatalf("identically seeded runs diverged: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Distance != b.Distance {
		t.Fatalf("score/distance diverged: %+v vs %+v", a, b)
	}
}

func TestEventsPublished(t *testing.T) {
	bus := event.NewBus()
	var progress int
	var missions int
	terminalEvents := 0
	bus.Subscribe(func(e event.Event) {
		switch e.(type) {
		case event.DistanceProgress:
			progress++
		case event.Mission:
			missions++
		case event.RunCompleted, event.RunFailed:
			terminalEvents++
		}
	})

	cfg, _ := level.New(1)
	r, err := New(cfg, config.DefaultGameConfig(), Options{Seed: 11, Bus: bus})
	if err != nil {
		t.Fatal(err)
	}
	r.Start()
	for i := 0; i < 20000 && !r.Phase().Terminal(); i++ {
		r.Tick(1.0 / 60)
		if r.Phase() == PhaseDowned {
			r.Concede()
		}
	}

	if progress == 0 {
		t.Error("distance progress events should stream every tick")
	}
	if terminalEvents != 1 {
		t.Errorf("terminal event published %d times, want exactly 1", terminalEvents)
	}
	// A full level produces mission events even without input: at the
	// least, off-lane and off-color obstacles expire as avoided.
	if missions == 0 {
		t.Error("no mission events published over a full run")
	}
}

func TestSlowMotionGating(t *testing.T) {
	gameCfg := config.DefaultGameConfig()
	r := newTestRun(t, 1, Options{Seed: 1, Loadout: modifier.Loadout{ShieldCharges: 99}})
	r.Start()

	uses := gameCfg.Modifiers.SlowMotion.Uses
	if !r.ActivateSlowMotion() {
		t.Fatal("first activation should succeed")
	}
	if r.ActivateSlowMotion() {
		t.Error("activation while active must fail")
	}

	// Drain the window, then exhaust remaining uses.
	for i := 0; i < int(gameCfg.Modifiers.SlowMotion.Duration*60)+10; i++ {
		r.Tick(1.0 / 60)
	}
	used := 1
	for used < uses {
		if !r.ActivateSlowMotion() {
			t.Fatalf("activation %d should succeed", used+1)
		}
		used++
		for i := 0; i < int(gameCfg.Modifiers.SlowMotion.Duration*60)+10; i++ {
			r.Tick(1.0 / 60)
		}
	}
	if r.ActivateSlowMotion() {
		t.Error("activation with no uses left must fail")
	}
}
