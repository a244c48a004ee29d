package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-rush/internal/core"
	"github.com/vovakirdan/neon-rush/internal/run"
	"github.com/vovakirdan/neon-rush/internal/track"
)

// Letters collected across a run spell out the overdrive word.
const letterWord = "PULSE"

// Rows at the top reserved for the HUD.
const hudRows = 3

const playerGlyph = '▲'

func affinityColor(a track.Affinity) core.Color {
	switch a {
	case track.AffinityCyan:
		return core.ColorBrightCyan
	case track.AffinityMagenta:
		return core.ColorBrightMagenta
	default:
		return core.ColorWhite
	}
}

// renderColor resolves an affinity to its on-screen color, swapping
// the two channels while the resonance palette inversion is up.
func renderColor(a track.Affinity, inverted bool) core.Color {
	if inverted {
		switch a {
		case track.AffinityCyan:
			a = track.AffinityMagenta
		case track.AffinityMagenta:
			a = track.AffinityCyan
		}
	}
	return affinityColor(a)
}

// drawRun renders a full run snapshot onto the screen buffer.
// The track scrolls toward the player at the bottom; the HUD sits on top.
func drawRun(s *core.Screen, snap run.Snapshot, viewDistance float64) {
	s.Clear()

	// Quantum lock hazard corrupts the palette; resonance inverts it.
	corrupted := snap.Modifiers.Lock.Corrupted

	drawHUD(s, snap)
	drawTrack(s, snap, viewDistance, corrupted, snap.PaletteInverted)

	switch snap.Phase {
	case run.PhasePaused:
		drawOverlay(s, []string{"PAUSED", "", "P to resume, B for menu"})
	case run.PhaseDowned:
		lines := []string{"SIGNAL LOST", ""}
		if snap.Restored {
			lines = append(lines, "No restores left. B to concede.")
		} else {
			lines = append(lines, "R to restore, B to concede")
		}
		drawOverlay(s, lines)
	case run.PhaseComplete:
		drawOverlay(s, []string{"LEVEL COMPLETE", "", "Enter to continue"})
	case run.PhaseFailed:
		drawOverlay(s, []string{"RUN FAILED", "", "Enter to continue"})
	}
}

// drawHUD renders the top status rows.
func drawHUD(s *core.Screen, snap run.Snapshot) {
	m := snap.Modifiers

	hearts := strings.Repeat("♥", snap.Health)
	top := fmt.Sprintf(" L%d  %s  %6d pts  x%d  %5.1f%%",
		snap.Level, hearts, snap.Score, m.Rhythm.Multiplier, snap.Percent)
	s.DrawText(0, 0, top, core.ColorBrightWhite)

	var parts []string
	parts = append(parts, fmt.Sprintf("dash %3.0f%%", m.Dash.Energy))
	if m.Dash.Suppressed {
		parts[len(parts)-1] = "dash ----"
	}
	if m.SlowMotion.UsesLeft > 0 || m.SlowMotion.Active {
		parts = append(parts, fmt.Sprintf("slow x%d", m.SlowMotion.UsesLeft))
	}
	if m.Shield.Charges > 0 || m.Shield.Invulnerable {
		parts = append(parts, fmt.Sprintf("shield x%d", m.Shield.Charges))
	}
	if m.Magnet.Owned {
		parts = append(parts, "magnet")
	}
	if m.NearMiss.Streak > 0 {
		parts = append(parts, fmt.Sprintf("graze %d", m.NearMiss.Streak))
	}
	s.DrawText(1, 1, strings.Join(parts, "  "), core.ColorGray)

	// Status line for the timed modifiers and collected letters.
	var status []string
	if m.Resonance.Active {
		status = append(status, fmt.Sprintf("RESONANCE %.0fs", m.Resonance.Remaining))
	}
	if m.Overdrive.PresentationActive {
		if m.Overdrive.Warning {
			status = append(status, "OVERDRIVE !")
		} else {
			status = append(status, "OVERDRIVE")
		}
	}
	if m.SlowMotion.Active {
		status = append(status, fmt.Sprintf("SLOW %.0fs", m.SlowMotion.Remaining))
	}
	if m.Lock.Active {
		status = append(status, "LOCK "+strings.ToUpper(m.Lock.Phase))
	}
	status = append(status, letterProgress(snap.Letters))
	color := core.ColorYellow
	if m.Lock.Corrupted {
		color = core.ColorBrightRed
	}
	s.DrawText(1, 2, strings.Join(status, "  "), color)
}

// letterProgress shows collected overdrive letters, dots for missing ones.
func letterProgress(collected int) string {
	var b strings.Builder
	for i, r := range letterWord {
		if i < collected {
			b.WriteRune(r)
		} else {
			b.WriteRune('·')
		}
	}
	return b.String()
}

// drawTrack renders the three lanes with the player at the bottom and
// entities scrolling down toward them.
func drawTrack(s *core.Screen, snap run.Snapshot, viewDistance float64, corrupted, inverted bool) {
	w, h := s.Width(), s.Height()
	trackTop := hudRows
	trackH := h - trackTop - 1
	if trackH < 4 || w < 12 {
		return
	}

	laneW := w / track.Lanes
	laneX := func(lane int) int { return lane*laneW + laneW/2 }

	// Lane separators
	for lane := 1; lane < track.Lanes; lane++ {
		s.DrawVLine(lane*laneW, trackTop, h-1-trackTop, '│', core.ColorGray)
	}

	playerY := h - 2

	// Entities ahead of the player, nearest at the bottom
	for _, e := range snap.Entities {
		if e.Offset < 0 || e.Offset > viewDistance {
			continue
		}
		y := playerY - 1 - int(e.Offset/viewDistance*float64(trackH-1))
		if y < trackTop || y >= playerY {
			continue
		}
		x := laneX(e.Lane)

		switch e.Kind {
		case track.KindObstacle:
			c := renderColor(e.Affinity, inverted)
			if corrupted {
				c = core.ColorBrightRed
			}
			s.SetCell(x, y, '█', c)
		case track.KindShard:
			s.SetCell(x, y, '◆', core.ColorBrightYellow)
		case track.KindLetter:
			r := '?'
			if e.Letter >= 0 && e.Letter < len(letterWord) {
				r = rune(letterWord[e.Letter])
			}
			s.SetCell(x, y, r, core.ColorBrightGreen)
		}
	}

	// Player. Corruption shows the same swapped-channel cue as the
	// resonance inversion; both at once cancel back to true colors.
	pc := renderColor(snap.Color, inverted != corrupted)
	s.SetCell(laneX(snap.Lane), playerY, playerGlyph, pc)
}

// drawOverlay centers a boxed message over the track.
func drawOverlay(s *core.Screen, lines []string) {
	w, h := s.Width(), s.Height()

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := maxLen + 6
	boxH := len(lines) + 2
	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2
	if x0 < 0 || y0 < 0 {
		return
	}

	box := core.NewRect(x0, y0, boxW, boxH)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		if l == "" {
			// Blank lines separate the title from the prompt.
			s.DrawHLine(x0+1, y0+1+i, boxW-2, '─', core.ColorWhite)
			continue
		}
		s.DrawText(x0+(boxW-len(l))/2, y0+1+i, l, core.ColorBrightWhite)
	}
}
