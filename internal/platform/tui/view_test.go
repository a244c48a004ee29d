package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-rush/internal/core"
	"github.com/vovakirdan/neon-rush/internal/modifier"
	"github.com/vovakirdan/neon-rush/internal/run"
	"github.com/vovakirdan/neon-rush/internal/track"
)

func baseSnapshot() run.Snapshot {
	return run.Snapshot{
		Phase:  run.PhaseRunning,
		Level:  3,
		Lane:   1,
		Color:  track.AffinityCyan,
		Health: 3,
		Modifiers: modifier.Snapshot{
			Rhythm: modifier.RhythmSnapshot{Multiplier: 1},
		},
	}
}

func TestDrawRunPlayerPosition(t *testing.T) {
	s := core.NewScreen(60, 24)
	drawRun(s, baseSnapshot(), 60)

	// Middle lane, one row above the bottom
	laneW := 60 / track.Lanes
	x := laneW + laneW/2
	if s.Get(x, 22) != playerGlyph {
		t.Errorf("player glyph missing at (%d, 22): %q", x, s.Get(x, 22))
	}
	if s.GetCell(x, 22).Color != core.ColorBrightCyan {
		t.Error("cyan player should render bright cyan")
	}
}

func TestDrawRunEntityGlyphs(t *testing.T) {
	snap := baseSnapshot()
	snap.Entities = []run.EntityView{
		{Kind: track.KindObstacle, Lane: 0, Offset: 30, Affinity: track.AffinityMagenta},
		{Kind: track.KindShard, Lane: 2, Offset: 10},
		{Kind: track.KindLetter, Lane: 1, Offset: 50, Letter: 0},
	}

	s := core.NewScreen(60, 24)
	drawRun(s, snap, 60)
	out := s.String()

	if !strings.ContainsRune(out, '█') {
		t.Error("obstacle glyph missing")
	}
	if !strings.ContainsRune(out, '◆') {
		t.Error("shard glyph missing")
	}
	if !strings.ContainsRune(out, rune(letterWord[0])) {
		t.Error("letter glyph missing")
	}
}

func TestDrawRunPaletteInversion(t *testing.T) {
	snap := baseSnapshot()
	snap.PaletteInverted = true
	snap.Entities = []run.EntityView{
		{Kind: track.KindObstacle, Lane: 0, Offset: 30, Affinity: track.AffinityMagenta},
	}

	s := core.NewScreen(60, 24)
	drawRun(s, snap, 60)

	laneW := 60 / track.Lanes
	if s.GetCell(laneW+laneW/2, 22).Color != core.ColorBrightMagenta {
		t.Error("inversion should render the cyan player magenta")
	}
	found := false
	for y := hudRows; y < 23; y++ {
		if c := s.GetCell(laneW/2, y); c.Rune == '█' {
			found = true
			if c.Color != core.ColorBrightCyan {
				t.Errorf("inverted magenta obstacle rendered %v, want bright cyan", c.Color)
			}
		}
	}
	if !found {
		t.Fatal("obstacle not rendered")
	}
}

func TestDrawRunOverlays(t *testing.T) {
	cases := []struct {
		phase run.Phase
		want  string
	}{
		{run.PhasePaused, "PAUSED"},
		{run.PhaseDowned, "SIGNAL LOST"},
		{run.PhaseComplete, "LEVEL COMPLETE"},
		{run.PhaseFailed, "RUN FAILED"},
	}
	for _, c := range cases {
		snap := baseSnapshot()
		snap.Phase = c.phase

		s := core.NewScreen(60, 24)
		drawRun(s, snap, 60)
		if !strings.Contains(s.String(), c.want) {
			t.Errorf("phase %v: overlay %q missing", c.phase, c.want)
		}
	}
}

func TestDownedOverlayAfterRestore(t *testing.T) {
	snap := baseSnapshot()
	snap.Phase = run.PhaseDowned
	snap.Restored = true

	s := core.NewScreen(60, 24)
	drawRun(s, snap, 60)
	if !strings.Contains(s.String(), "No restores left") {
		t.Error("spent restore should change the downed prompt")
	}
}

func TestLetterProgress(t *testing.T) {
	if got := letterProgress(0); got != "·····" {
		t.Errorf("no letters: %q", got)
	}
	if got := letterProgress(2); got != "PU···" {
		t.Errorf("two letters: %q", got)
	}
	if got := letterProgress(5); got != letterWord {
		t.Errorf("all letters: %q", got)
	}
}
