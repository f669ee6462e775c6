package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// configurable is implemented by games that accept a configuration
// reload while running.
type configurable interface {
	SetConfig(cfg config.FlappyConfig) error
}

// ConfigReloadMsg carries a validated configuration from the file watcher.
type ConfigReloadMsg config.FlappyConfig

// ConfigErrorMsg carries a rejected configuration reload.
type ConfigErrorMsg struct{ Err error }

// ModelOptions are the optional collaborators of a GameModel.
type ModelOptions struct {
	Store   *storage.Store  // Score history, may be nil
	Watcher *config.Watcher // Live config reloads, may be nil
	Logger  *log.Logger     // Defaults to discarding output

	// Embedded models hand control back to a surrounding menu on Back
	// instead of quitting the program.
	Embedded bool
}

// GameModel is the Bubble Tea model for running one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       ModelOptions
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickInterval()), m.waitForConfig())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is stretched to the screen, so a resize never
		// touches the simulation.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigReloadMsg:
		m.applyConfig(config.FlappyConfig(msg))
		return m, m.waitForConfig()

	case ConfigErrorMsg:
		m.opts.Logger.Warn("config reload rejected", "err", msg.Err)
		return m, m.waitForConfig()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when no run is in flight
	if m.inputFrame.Has(core.ActionBack) && (!m.gameState.Started || m.gameState.GameOver || m.gameState.Paused) {
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	dt := elapsed(m.lastTick, now, m.config.TickInterval())
	m.lastTick = now

	// Restart with a fresh seed so each run gets a new pipe layout
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickInterval())
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickInterval())
}

// recordRun appends the finished run to the score history.
func (m GameModel) recordRun() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "err", err)
	}
}

// applyConfig stages a reloaded configuration for the next run.
func (m GameModel) applyConfig(cfg config.FlappyConfig) {
	g, ok := m.game.(configurable)
	if !ok {
		return
	}
	if err := g.SetConfig(cfg); err != nil {
		m.opts.Logger.Warn("config reload rejected", "game", m.game.ID(), "err", err)
		return
	}
	m.opts.Logger.Info("config reloaded, applies from the next run", "game", m.game.ID())
}

// waitForConfig blocks on the watcher until it delivers a reload or an error.
func (m GameModel) waitForConfig() tea.Cmd {
	w := m.opts.Watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return nil
			}
			return ConfigReloadMsg(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigErrorMsg{Err: err}
		}
	}
}

// saveScreenshot writes the current screen to ~/.flappy/screenshots.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RunSession starts the menu and plays games until the user quits.
func RunSession(cfg core.RuntimeConfig, sel config.Selection, opts ModelOptions) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, sel, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
