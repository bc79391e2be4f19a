package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoval/flapdash/internal/storage"
)

const scoreboardLimit = 50

// scoreboardKeyMap defines the key bindings for the leaderboard view.
type scoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func (k scoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

func (k scoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Quit}}
}

var scoreboardKeys = scoreboardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "all runs / best per player"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Padding(0, 1)
	scoreboardBaseStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// scoreboardModel is the interactive leaderboard browser.
type scoreboardModel struct {
	store    *storage.Store
	tbl      table.Model
	help     help.Model
	dedup    bool // true: one row per player, false: all runs
	loadErr  error
	quitting bool
}

func newScoreboardModel(store *storage.Store, width, height int) scoreboardModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 16},
		{Title: "Time", Width: 12},
		{Title: "Tokens", Width: 8},
		{Title: "Date", Width: 16},
	}

	tableHeight := height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	tbl.SetStyles(styles)

	m := scoreboardModel{
		store: store,
		tbl:   tbl,
		help:  help.New(),
	}
	m.reload()
	return m
}

// reload refreshes the table rows from the store for the current view.
func (m *scoreboardModel) reload() {
	var (
		runs []storage.Run
		err  error
	)
	if m.dedup {
		runs, err = m.store.BestPerPlayer(scoreboardLimit)
	} else {
		runs, err = m.store.TopRuns(scoreboardLimit)
	}
	if err != nil {
		m.loadErr = err
		m.tbl.SetRows(nil)
		return
	}
	m.loadErr = nil

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Player,
			formatMS(r.ScoreMS),
			fmt.Sprintf("%d", r.Tokens),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	m.tbl.SetRows(rows)
}

func (m scoreboardModel) Init() tea.Cmd {
	return nil
}

func (m scoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, scoreboardKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, scoreboardKeys.Toggle):
			m.dedup = !m.dedup
			m.reload()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.tbl.SetHeight(msg.Height - 6)
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m scoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "Leaderboard · all runs"
	if m.dedup {
		title = "Leaderboard · best per player"
	}

	body := scoreboardBaseStyle.Render(m.tbl.View())
	if m.loadErr != nil {
		body = fmt.Sprintf("cannot load leaderboard: %v", m.loadErr)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		scoreboardTitleStyle.Render(title),
		body,
		m.help.View(scoreboardKeys),
	)
}

// RunScoreboard opens the interactive leaderboard browser.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(newScoreboardModel(store, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: scoreboard failed: %w", err)
	}
	return nil
}
