package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

const (
	scoreboardRuns  = 100 // Runs loaded per variant
	statsPanelWidth = 24
	statsPanelMinW  = 70 // Below this the stats go on one line under the table
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

type scoreKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Clear key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func (k scoreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Next, k.Clear, k.Back, k.Quit}
}

func (k scoreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Clear, k.Back, k.Quit}}
}

func defaultScoreKeyMap() scoreKeyMap {
	return scoreKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "scroll")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
		Next:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "variant")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
		Clear: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the run history and stats of each variant, one
// variant at a time.
type ScoreboardModel struct {
	variants []registry.GameInfo
	current  int
	store    *storage.Store
	runs     []storage.Run
	stats    storage.Stats
	loadErr  error
	confirm  bool // x pressed once; a second x clears the variant's runs
	table    table.Model
	help     help.Model
	keys     scoreKeyMap
	width    int
	height   int
	quitting bool
	back     bool
}

// NewScoreboardModel creates a scoreboard over store, which may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		help:     help.New(),
		keys:     defaultScoreKeyMap(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= statsPanelMinW
}

func (m ScoreboardModel) newTable() table.Model {
	dateW := 18
	if avail := m.width - 30; m.wide() {
		dateW = min(max(avail-statsPanelWidth, 12), 20)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Played", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

// variantID returns the ID of the variant on display, or "".
func (m ScoreboardModel) variantID() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].ID
}

// load reads the current variant's runs and stats into the table.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.loadErr = nil, storage.Stats{}, nil
	m.confirm = false
	if id := m.variantID(); id != "" && m.store != nil {
		m.runs, m.loadErr = m.store.TopScores(id, scoreboardRuns)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(id)
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{strconv.Itoa(i + 1), strconv.Itoa(r.Score), r.PlayedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchVariant(delta int) {
	if n := len(m.variants); n > 0 {
		m.current = ((m.current+delta)%n + n) % n
		m.load()
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirm {
			return m.updateConfirm(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchVariant(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchVariant(-1)
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.confirm = m.store != nil && len(m.runs) > 0
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateConfirm waits for the second x; any other key cancels.
func (m ScoreboardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirm = false
	if key.Matches(msg, m.keys.Clear) {
		if err := m.store.ClearScores(m.variantID()); err != nil {
			m.loadErr = err
			return m, nil
		}
		m.load()
	}
	return m, nil
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
		Render(centerText("HIGH SCORES", m.width))

	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(v.Title)
		} else {
			tabs[i] = tabStyle.Render(v.Title)
		}
	}
	tabRow := centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width)

	var body string
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Render(m.runsView()), " ", m.statsPanel())
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, panelStyle.Render(m.runsView()), m.statsLine())
	}

	footer := dimStyle.Render(m.help.View(m.keys))
	if m.confirm {
		footer = warnStyle.Render(fmt.Sprintf("Clear the run history of %s? x to confirm, any other key to cancel", m.variants[m.current].Title))
	}

	return strings.Join([]string{"", title, "", tabRow, "", body, "", footer}, "\n")
}

func (m ScoreboardModel) runsView() string {
	switch {
	case m.store == nil:
		return dimStyle.Italic(true).Padding(1, 2).Render("Score history is off.\nStart with --store sqlite to keep runs.")
	case m.loadErr != nil:
		return warnStyle.Padding(1, 2).Render("Could not read scores:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return dimStyle.Italic(true).Padding(1, 2).Render("No runs yet.\nFlap through a pipe to get on the board!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsPanel() string {
	label := dimStyle.Width(9)
	rows := []string{
		lipgloss.NewStyle().Bold(true).Render("Stats"),
		"",
		label.Render("Best") + strconv.Itoa(m.stats.Best),
		label.Render("Runs") + strconv.Itoa(m.stats.Runs),
		label.Render("Average") + fmt.Sprintf("%.1f", m.stats.Average),
	}
	if !m.stats.LastPlayed.IsZero() {
		rows = append(rows, label.Render("Last")+m.stats.LastPlayed.Format("Jan 02"))
	}
	return panelStyle.Width(statsPanelWidth).Render(strings.Join(rows, "\n"))
}

func (m ScoreboardModel) statsLine() string {
	if m.stats.Runs == 0 && m.stats.Best == 0 {
		return ""
	}
	return dimStyle.Render(fmt.Sprintf(" Best %d · Runs %d · Avg %.1f", m.stats.Best, m.stats.Runs, m.stats.Average))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard on its own and reports whether the
// user left with back rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
