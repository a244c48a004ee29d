package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-rush/internal/core"
	"github.com/vovakirdan/neon-rush/internal/level"
	"github.com/vovakirdan/neon-rush/internal/progression"
)

// LevelItem is one selectable level in the picker.
type LevelItem struct {
	Level  int
	Stars  int
	Locked bool
}

// LevelSelectModel is the Bubble Tea model for the level picker.
type LevelSelectModel struct {
	items     []LevelItem
	cursor    int
	width     int
	height    int
	balance   int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *LevelItem // Set when user picks a level
}

// NewLevelSelectModel builds the picker from the player's progression.
// Every cleared level stays replayable; the first uncleared level is
// open; everything past it is locked.
func NewLevelSelectModel(prog *progression.State, cfg core.RuntimeConfig) LevelSelectModel {
	playerLevel := 0
	balance := 0
	if prog != nil {
		playerLevel = prog.PlayerLevel()
		balance = prog.Balance
	}

	items := make([]LevelItem, 0, level.MaxLevel)
	for lvl := 1; lvl <= level.MaxLevel; lvl++ {
		stars := 0
		if prog != nil {
			stars = prog.Levels[lvl].BestStars
		}
		items = append(items, LevelItem{
			Level:  lvl,
			Stars:  stars,
			Locked: lvl > playerLevel+1,
		})
	}

	cursor := playerLevel
	if cursor >= len(items) {
		cursor = len(items) - 1
	}

	return LevelSelectModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		balance:   balance,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the picker model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for picker navigation.
func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		item := m.items[m.cursor]
		if !item.Locked {
			m.selected = &item
			return m, tea.Quit // Exit picker to start the run
		}
	}

	return m, nil
}

// View renders the picker.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("N E O N   R U S H", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Select a level          ◆ %d", m.balance), m.width))
	b.WriteString("\n\n")

	// Window of levels around the cursor so long lists stay on screen
	visible := m.height - 10
	if visible < 5 {
		visible = 5
	}
	first := m.cursor - visible/2
	if first < 0 {
		first = 0
	}
	last := first + visible
	if last > len(m.items) {
		last = len(m.items)
		first = last - visible
		if first < 0 {
			first = 0
		}
	}

	for i := first; i < last; i++ {
		item := m.items[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var line string
		if item.Locked {
			line = fmt.Sprintf("%sLevel %-3d  locked", cursor, item.Level)
		} else {
			line = fmt.Sprintf("%sLevel %-3d  %s", cursor, item.Level, starRow(item.Stars))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// starRow renders earned stars out of three.
func starRow(stars int) string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		if i < stars {
			b.WriteRune('★')
		} else {
			b.WriteRune('☆')
		}
	}
	return b.String()
}

// Selected returns the chosen level, or nil if none was picked.
func (m LevelSelectModel) Selected() *LevelItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m LevelSelectModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
