package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

// Menu rows
const (
	rowGame = iota
	rowSpeed
	rowSkin
	rowPlay
	menuRows
)

// MenuModel is the Bubble Tea model for the pre-run menu: variant, speed and skin.
type MenuModel struct {
	games          []registry.GameInfo
	speeds         []config.SpeedPreset
	skins          []config.Skin
	gameIdx        int
	speedIdx       int
	skinIdx        int
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	help           help.Model
	keys           menuKeyMap
	quitting       bool
	chosen         bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model with sel preselected.
func NewMenuModel(cfg core.RuntimeConfig, sel config.Selection) MenuModel {
	m := MenuModel{
		games:     registry.List(),
		speeds:    config.SpeedPresets,
		skins:     config.Skins,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		keys:      defaultMenuKeyMap(),
		cursor:    rowPlay,
	}

	m.speedIdx = max(slices.Index(m.speeds, sel.Speed), 0)
	if sel.Speed == "" {
		m.speedIdx = max(slices.Index(m.speeds, config.SpeedNormal), 0)
	}
	m.skinIdx = max(slices.IndexFunc(m.skins, func(s config.Skin) bool { return s.Name == sel.Skin }), 0)
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + menuRows - 1) % menuRows

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % menuRows

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionSelect:
		if m.cursor != rowPlay {
			m.cycle(1)
			return m, nil
		}
		if len(m.games) > 0 {
			m.chosen = true
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// cycle moves the option on the current row by delta, wrapping around.
func (m *MenuModel) cycle(delta int) {
	wrap := func(i, n int) int {
		if n == 0 {
			return 0
		}
		return ((i+delta)%n + n) % n
	}
	switch m.cursor {
	case rowGame:
		m.gameIdx = wrap(m.gameIdx, len(m.games))
	case rowSpeed:
		m.speedIdx = wrap(m.speedIdx, len(m.speeds))
	case rowSkin:
		m.skinIdx = wrap(m.skinIdx, len(m.skins))
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("F L A P P Y   A R C A D E", m.width)))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Game:  < %s >", m.gameTitle()),
		fmt.Sprintf("Speed: < %s >", m.speeds[m.speedIdx]),
		fmt.Sprintf("Skin:  < %s >", m.skins[m.skinIdx].Name),
		"Play",
	}
	for i, row := range rows {
		line := "  " + row
		if i == m.cursor {
			line = activeStyle.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText(m.help.View(m.keys), m.width)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) gameTitle() string {
	if len(m.games) == 0 {
		return "no games"
	}
	return m.games[m.gameIdx].Title
}

// Selection returns the speed and skin currently shown.
func (m MenuModel) Selection() config.Selection {
	return config.Selection{Speed: m.speeds[m.speedIdx], Skin: m.skins[m.skinIdx].Name}
}

// GameID returns the chosen game, or "" if none was chosen.
func (m MenuModel) GameID() string {
	if !m.chosen || len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameIdx].ID
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Selection       config.Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// result converts the final menu state into a MenuResult.
func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.Config(), Selection: m.Selection()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.IsQuitting():
		res.Quit = true
	default:
		res.GameID = m.GameID()
		res.Quit = res.GameID == ""
	}
	return res
}
