package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/core"
	"github.com/vovakirdan/neon-rush/internal/run"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestRunModel(t *testing.T) RunModel {
	t.Helper()
	rtCfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 60, Seed: 7}
	m, err := NewRunModel(1, config.DefaultGameConfig(), nil, nil, rtCfg)
	if err != nil {
		t.Fatal(err)
	}
	m.Init()
	return m
}

func TestInputBatchedUntilTick(t *testing.T) {
	m := newTestRunModel(t)

	mm, _ := m.handleKey(keyMsg('d'))
	m = mm.(RunModel)
	if !m.frame.Has(core.ActionSwapRight) {
		t.Fatal("key press should land in the input frame")
	}
	if got := m.run.Snapshot().Lane; got != 1 {
		t.Fatalf("swap applied before the tick: lane %d", got)
	}

	mm, _ = m.handleTick()
	m = mm.(RunModel)
	if got := m.run.Snapshot().Lane; got != 2 {
		t.Errorf("swap right: lane %d, want 2", got)
	}
	if m.frame.Has(core.ActionSwapRight) {
		t.Error("frame should be cleared after the tick drains it")
	}
}

func TestOpposingSwapsCancel(t *testing.T) {
	m := newTestRunModel(t)

	for _, r := range "ad" {
		mm, _ := m.handleKey(keyMsg(r))
		m = mm.(RunModel)
	}
	mm, _ := m.handleTick()
	m = mm.(RunModel)
	if got := m.run.Snapshot().Lane; got != 1 {
		t.Errorf("opposing swaps in one frame should cancel: lane %d", got)
	}
}

func TestPauseDropsPendingInput(t *testing.T) {
	m := newTestRunModel(t)

	mm, _ := m.handleKey(keyMsg('d'))
	m = mm.(RunModel)
	mm, _ = m.handleKey(keyMsg('p'))
	m = mm.(RunModel)
	if m.run.Phase() != run.PhasePaused {
		t.Fatalf("phase %v, want paused", m.run.Phase())
	}

	mm, _ = m.handleKey(keyMsg('p'))
	m = mm.(RunModel)
	mm, _ = m.handleTick()
	m = mm.(RunModel)
	if got := m.run.Snapshot().Lane; got != 1 {
		t.Errorf("swap queued before pausing must not fire on resume: lane %d", got)
	}
}
