package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoval/flapdash/internal/core"
	"github.com/dkoval/flapdash/internal/game"
	"github.com/dkoval/flapdash/internal/storage"
)

// personalBestMsg carries the player's stored best, fetched at startup.
type personalBestMsg struct {
	best int64
	err  error
}

// scoreSavedMsg reports the outcome of an async leaderboard submission.
type scoreSavedMsg struct {
	err error
}

// Model is the Bubble Tea model wrapping a game session.
//
// Two tickers drive it: the simulation ticker steps the game, the score
// ticker only redraws so the on-screen timer updates at millisecond
// granularity between simulation steps.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store // nil when persistence is unavailable
	rcfg   core.RuntimeConfig

	input core.InputFrame
	keys  *KeyMapper

	personalBest   int64
	scoreSubmitted bool
	submitErr      error
	quitting       bool
}

// NewModel creates the play model. store may be nil; the game then runs
// without leaderboard persistence.
func NewModel(g *game.Game, store *storage.Store, rcfg core.RuntimeConfig) *Model {
	if rcfg.Seed == 0 {
		rcfg.Seed = time.Now().UnixNano()
	}
	g.Reset(rcfg)

	return &Model{
		game:   g,
		screen: core.NewScreen(rcfg.ScreenW, rcfg.ScreenH),
		store:  store,
		rcfg:   rcfg,
		input:  core.NewInputFrame(),
		keys:   NewKeyMapper(),
	}
}

// Init starts both tick streams and the personal-best lookup.
func (m *Model) Init() tea.Cmd {
	timing := m.game.Config().Timing
	return tea.Batch(
		simTickCmd(timing.SimTickMS),
		scoreTickCmd(timing.ScoreTickMS),
		m.fetchPersonalBestCmd(),
	)
}

// Update handles messages from Bubble Tea.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case SimTickMsg:
		return m.handleSimTick()
	case ScoreTickMsg:
		// Redraw only; the session clock is re-read in View.
		return m, scoreTickCmd(m.game.Config().Timing.ScoreTickMS)
	case personalBestMsg:
		if msg.err == nil {
			m.personalBest = msg.best
		}
		return m, nil
	case scoreSavedMsg:
		// personalBest deliberately stays at its pre-run value until the
		// next restart, so the game-over card can compare against it.
		m.submitErr = msg.err
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleSimTick consumes the buffered input frame and advances the game
// one step.
func (m *Model) handleSimTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.input.Has(core.ActionRestart) && m.game.Phase() == core.PhaseOver {
		m.rcfg.Seed = time.Now().UnixNano()
		m.game.Reset(m.rcfg)
		m.scoreSubmitted = false
		m.submitErr = nil
		cmds = append(cmds, m.fetchPersonalBestCmd())
	}

	result := m.game.Step(m.input)
	m.input.Clear()

	for _, ev := range result.Events {
		if ev.Kind == core.EventGameOver && !m.scoreSubmitted {
			m.scoreSubmitted = true
			cmds = append(cmds, m.submitScoreCmd(m.game.ElapsedMS(), m.game.TokensCollected()))
		}
	}

	cmds = append(cmds, simTickCmd(m.game.Config().Timing.SimTickMS))
	return m, tea.Batch(cmds...)
}

// fetchPersonalBestCmd looks up the player's stored best off the update
// loop.
func (m *Model) fetchPersonalBestCmd() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, player := m.store, m.rcfg.Player
	return func() tea.Msg {
		best, err := store.PersonalBest(player)
		return personalBestMsg{best: best, err: err}
	}
}

// submitScoreCmd saves the finished run asynchronously. A failed save is
// surfaced in the HUD but never interrupts play.
func (m *Model) submitScoreCmd(scoreMS int64, tokens int) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, player := m.store, m.rcfg.Player
	return func() tea.Msg {
		_, err := store.SaveRun(player, scoreMS, tokens)
		return scoreSavedMsg{err: err}
	}
}

// View renders the current frame.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	drawWorld(m.screen, snap)
	m.drawHUD(snap)
	m.drawOverlay(snap)

	return RenderScreen(m.screen)
}

func (m *Model) drawHUD(snap game.Snapshot) {
	m.screen.DrawTextColored(1, 0, formatMS(snap.ElapsedMS), core.ColorWhite)
	m.screen.DrawTextColored(1, 1, fmt.Sprintf("%c %d", tokenChar, snap.TokensCollected), core.ColorBrightYellow)

	if m.personalBest > 0 {
		label := fmt.Sprintf("best %s", formatMS(m.personalBest))
		m.screen.DrawTextColored(m.screen.Width()-len(label)-1, 0, label, core.ColorGray)
	}
	if m.submitErr != nil {
		m.screen.DrawTextColored(1, 2, "score not saved", core.ColorRed)
	}
}

func (m *Model) drawOverlay(snap game.Snapshot) {
	switch {
	case snap.Phase == core.PhaseIdle:
		m.drawDialog([]string{
			"FLAPDASH",
			"",
			"space to flap",
			"p pause  q quit",
		})
	case snap.Paused:
		m.drawDialog([]string{"PAUSED", "", "p to resume"})
	case snap.Phase == core.PhaseOver:
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("time   %s", formatMS(snap.ElapsedMS)),
			fmt.Sprintf("tokens %d", snap.TokensCollected),
		}
		if snap.ElapsedMS > m.personalBest && m.personalBest > 0 {
			lines = append(lines, "new personal best!")
		}
		lines = append(lines, "", "r restart  q quit")
		m.drawDialog(lines)
	}
}

// drawDialog draws a centered bordered box with the given lines.
func (m *Model) drawDialog(lines []string) {
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	w += 6
	h := len(lines) + 2

	x := (m.screen.Width() - w) / 2
	y := (m.screen.Height() - h) / 2

	m.screen.FillRect(x, y, w, h, ' ', core.ColorDefault)
	m.screen.DrawBox(x, y, w, h)
	for i, l := range lines {
		m.screen.DrawText(x+(w-len(l))/2, y+1+i, l)
	}
}

// Run starts the interactive play loop in the alt screen.
func Run(g *game.Game, store *storage.Store, rcfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(g, store, rcfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: program failed: %w", err)
	}
	return nil
}
