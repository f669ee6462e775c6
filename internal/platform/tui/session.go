package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

// selectable is implemented by games that take a per-instance speed and skin.
type selectable interface {
	SetSelection(sel config.Selection)
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewScores
	viewGame
)

// SessionModel is one player's whole visit: the menu, the scoreboard and
// any number of games, until they quit. Local play and every SSH
// connection run one.
type SessionModel struct {
	view      sessionView
	config    core.RuntimeConfig
	selection config.Selection
	opts      ModelOptions
	menu      MenuModel
	scores    ScoreboardModel
	game      GameModel
	quitting  bool
}

// NewSessionModel starts a session on the menu with sel preselected.
func NewSessionModel(cfg core.RuntimeConfig, sel config.Selection, opts ModelOptions) SessionModel {
	opts.Embedded = true
	return SessionModel{
		config:    cfg,
		selection: sel,
		opts:      opts,
		menu:      NewMenuModel(cfg, sel),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	var cmd tea.Cmd
	switch m.view {
	case viewGame:
		m, cmd = m.updateGame(msg)
	case viewScores:
		m, cmd = m.updateScores(msg)
	default:
		m, cmd = m.updateMenu(msg)
	}
	if m.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateMenu(msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	res := m.menu.result()
	m.selection = res.Selection
	switch {
	case res.WantsScoreboard:
		m.view = viewScores
		m.scores = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()
	case res.GameID != "":
		return m.startGame(res.GameID)
	case m.menu.IsQuitting():
		m.quitting = true
		return m, nil
	}
	return m, filterQuit(cmd)
}

func (m SessionModel) startGame(id string) (SessionModel, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.opts.Logger.Error("cannot create game", "game", id, "err", err)
		return m.showMenu()
	}
	if g, ok := game.(selectable); ok {
		g.SetSelection(m.selection)
	}

	m.config.Seed = time.Now().UnixNano()
	m.game = NewGameModel(game, m.config, m.opts)
	m.view = viewGame
	return m, m.game.Init()
}

func (m SessionModel) updateScores(msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, nil
	case m.scores.IsGoingBack():
		return m.showMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, nil
	case m.game.BackToMenu():
		return m.showMenu()
	}
	return m, cmd
}

// showMenu returns to a fresh menu that remembers the last selection.
func (m SessionModel) showMenu() (SessionModel, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.config, m.selection)
	return m, m.menu.Init()
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.view == viewGame:
		return m.game.View()
	case m.view == viewScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// filterQuit drops the quit command sub-models use to end their own program.
func filterQuit(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		if msg := cmd(); msg != nil {
			if _, ok := msg.(tea.QuitMsg); !ok {
				return msg
			}
		}
		return nil
	}
}
