package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/core"
	"github.com/vovakirdan/neon-rush/internal/level"
	"github.com/vovakirdan/neon-rush/internal/outcome"
	"github.com/vovakirdan/neon-rush/internal/progression"
	"github.com/vovakirdan/neon-rush/internal/run"
	"github.com/vovakirdan/neon-rush/internal/storage"
)

// RunModel is the Bubble Tea model driving one level attempt.
type RunModel struct {
	run        *run.Run
	screen     *core.Screen
	store      *storage.Store
	prog       *progression.State
	gameCfg    config.GameConfig
	rtCfg      core.RuntimeConfig
	keyMapper  *KeyMapper
	frame      core.InputFrame // Keys batched since the last tick
	rating     outcome.Rating
	quitting   bool
	backToMenu bool
	recorded   bool // Result folded into progression and history
}

// NewRunModel builds a model for the given level number.
func NewRunModel(levelNum int, gameCfg config.GameConfig, prog *progression.State, store *storage.Store, rtCfg core.RuntimeConfig) (RunModel, error) {
	lvl, err := level.New(levelNum)
	if err != nil {
		return RunModel{}, err
	}

	if rtCfg.Seed == 0 {
		rtCfg.Seed = time.Now().UnixNano()
	}

	opts := run.Options{Seed: rtCfg.Seed}
	if prog != nil {
		opts.Loadout = prog.Loadout()
		opts.Restore = prog.Spend
		prog.SessionLevel = levelNum
	}

	r, err := run.New(lvl, gameCfg, opts)
	if err != nil {
		return RunModel{}, err
	}

	return RunModel{
		run:       r,
		screen:    core.NewScreen(rtCfg.ScreenW, rtCfg.ScreenH),
		store:     store,
		prog:      prog,
		gameCfg:   gameCfg,
		rtCfg:     rtCfg,
		keyMapper: NewKeyMapper(),
		frame:     core.NewInputFrame(),
	}, nil
}

// Init starts the run and the tick loop.
func (m RunModel) Init() tea.Cmd {
	m.run.Start()
	return tickCmd(m.rtCfg.TickRate)
}

// Update handles messages and updates the model state.
func (m RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.rtCfg.ScreenW = msg.Width
		m.rtCfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey translates keys into run controls for the current phase.
func (m RunModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		if m.run.Phase() == run.PhaseDowned {
			m.run.Concede()
		}
		m.quitting = true
		return m, tea.Quit
	}

	switch m.run.Phase() {
	case run.PhaseRunning:
		switch action {
		case core.ActionPause, core.ActionBack:
			m.run.Pause()
			m.frame.Clear()
		default:
			// Gameplay keys batch into the frame and apply on the
			// next tick, so input and simulation stay in lockstep.
			m.keyMapper.MapKeyToFrame(msg, &m.frame)
		}

	case run.PhasePaused:
		switch action {
		case core.ActionPause, core.ActionConfirm:
			m.run.Resume()
		case core.ActionBack:
			m.backToMenu = true
			return m, tea.Quit
		}

	case run.PhaseDowned:
		switch action {
		case core.ActionRestore:
			m.run.Restore()
		case core.ActionBack:
			m.run.Concede()
		}

	case run.PhaseComplete, run.PhaseFailed:
		switch action {
		case core.ActionConfirm, core.ActionBack:
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick drains the batched input frame and advances the
// simulation by one fixed step.
func (m RunModel) handleTick() (tea.Model, tea.Cmd) {
	frame := m.frame.Clone()
	m.frame.Clear()
	if m.run.Phase() == run.PhaseRunning {
		m.applyFrame(frame)
		m.run.Tick(1.0 / float64(m.rtCfg.TickRate))
	}

	if res, done := m.run.Result(); done && !m.recorded {
		m.rating = outcome.Evaluate(res, m.gameCfg.Outcome)
		m.recordResult(res)
		m.recorded = true
	}

	// Keep ticking so overlays keep rendering after terminal phases.
	return m, tickCmd(m.rtCfg.TickRate)
}

// applyFrame routes one tick's worth of batched actions to the run.
// Opposite swaps in the same frame cancel each other.
func (m RunModel) applyFrame(f core.InputFrame) {
	left, right := f.Has(core.ActionSwapLeft), f.Has(core.ActionSwapRight)
	if left && !right {
		m.run.SwapLane(-1)
	}
	if right && !left {
		m.run.SwapLane(1)
	}
	if f.Has(core.ActionSlowMotion) {
		m.run.ActivateSlowMotion()
	}
	if f.Has(core.ActionDash) {
		m.run.ActivateDash()
	}
}

// recordResult folds the finished run into progression and history.
// Both writes are best effort; the summary screen shows regardless.
func (m *RunModel) recordResult(res run.Result) {
	if m.prog != nil {
		m.prog.ApplyResult(res, m.rating, m.gameCfg.Outcome)
		if m.store != nil {
			//nolint:errcheck // Best-effort save
			m.store.Save(m.prog.Persisted())
		}
	}
	if m.store != nil {
		snap := m.run.Snapshot()
		//nolint:errcheck // Best-effort save
		m.store.RecordRun(res.Level, snap.Score, res.DistanceTraveled, m.rating.Stars, res.Completed)
	}
}

// View renders the current run state.
func (m RunModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	drawRun(m.screen, m.run.Snapshot(), m.gameCfg.Spawn.AheadDistance)
	if m.recorded {
		m.drawSummary()
	}
	return RenderScreen(m.screen)
}

// drawSummary overlays stars and reward once the result exists.
func (m RunModel) drawSummary() {
	stars := ""
	for i := 0; i < 3; i++ {
		if i < m.rating.Stars {
			stars += "★"
		} else {
			stars += "☆"
		}
	}
	y := m.screen.Height()/2 + 2
	m.screen.DrawTextCentered(y, stars, core.ColorBrightYellow)
	if m.rating.Reward > 0 {
		m.screen.DrawTextCentered(y+1, fmt.Sprintf("+%d shards", m.rating.Reward), core.ColorBrightYellow)
	}
}

// BackToMenu reports whether the player asked to return to the picker.
func (m RunModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit entirely.
func (m RunModel) IsQuitting() bool {
	return m.quitting
}

// PlayLevel runs a single level attempt as its own Bubble Tea program.
func PlayLevel(levelNum int, gameCfg config.GameConfig, prog *progression.State, store *storage.Store, rtCfg core.RuntimeConfig) error {
	model, err := NewRunModel(levelNum, gameCfg, prog, store, rtCfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
