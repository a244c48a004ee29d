package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-rush/internal/progression"
	"github.com/vovakirdan/neon-rush/internal/storage"
)

// Progress view layout constants
const (
	progressTableHeight = 8
	maxHistoryRows      = 100
)

// progressTab selects which table is shown.
type progressTab int

const (
	tabLevels progressTab = iota
	tabHistory
)

// ProgressKeyMap defines the key bindings for the progress screen.
type ProgressKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressModel is the Bubble Tea model for the progress screen.
// It shows per-level bests and the recent run history side by side.
type ProgressModel struct {
	prog      *progression.State
	store     *storage.Store
	tab       progressTab
	table     table.Model
	help      help.Model
	keys      ProgressKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewProgressModel creates a new progress model.
func NewProgressModel(prog *progression.State, store *storage.Store, width, height int) ProgressModel {
	keys := DefaultProgressKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ProgressModel{
		prog:   prog,
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRows()
	return m
}

// createTable creates a table with columns for the active tab.
func (m *ProgressModel) createTable() table.Model {
	var columns []table.Column
	switch m.tab {
	case tabLevels:
		columns = []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Stars", Width: 6},
			{Title: "Distance", Width: 10},
			{Title: "Shards", Width: 7},
			{Title: "Played", Width: 7},
		}
	case tabHistory:
		columns = []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Stars", Width: 6},
			{Title: "Result", Width: 9},
			{Title: "Date", Width: 13},
		}
	}

	height := m.height - 8
	if height < progressTableHeight {
		height = progressTableHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRows fills the table for the active tab.
func (m *ProgressModel) loadRows() {
	switch m.tab {
	case tabLevels:
		m.loadLevelRows()
	case tabHistory:
		m.loadHistoryRows()
	}
	m.table.GotoTop()
}

// loadLevelRows lists every played level sorted ascending.
func (m *ProgressModel) loadLevelRows() {
	if m.prog == nil {
		m.table.SetRows(nil)
		return
	}

	levels := make([]int, 0, len(m.prog.Levels))
	for lvl := range m.prog.Levels {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)

	rows := make([]table.Row, 0, len(levels))
	for _, lvl := range levels {
		lb := m.prog.Levels[lvl]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", lvl),
			starRow(lb.BestStars),
			fmt.Sprintf("%.0f", lb.BestDistance),
			fmt.Sprintf("%d", lb.BestShards),
			fmt.Sprintf("%d", lb.TimesPlayed),
		})
	}
	m.table.SetRows(rows)
}

// loadHistoryRows lists the recent runs, newest first.
func (m *ProgressModel) loadHistoryRows() {
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	entries, err := m.store.RecentRuns(maxHistoryRows)
	if err != nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		result := "failed"
		if e.Completed {
			result = "cleared"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.Level),
			fmt.Sprintf("%d", e.Score),
			starRow(e.Stars),
			result,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress screen.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			if m.tab == tabLevels {
				m.tab = tabHistory
			} else {
				m.tab = tabLevels
			}
			m.table = m.createTable()
			m.loadRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress screen.
func (m ProgressModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "PROGRESS - LEVELS"
	if m.tab == tabHistory {
		title = "PROGRESS - RECENT RUNS"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.prog != nil {
		wallet := fmt.Sprintf("◆ %d shards   player level %d", m.prog.Balance, m.prog.PlayerLevel())
		b.WriteString(centerText(wallet, m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ProgressModel) renderTableContent() string {
	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing recorded yet.\nPlay a level to start your progress!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}

// RunProgress runs the progress screen.
// Returns true if user wants to go back, false if quitting.
func RunProgress(prog *progression.State, store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewProgressModel(prog, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ProgressModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
