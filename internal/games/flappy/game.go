// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes,
// optionally picking up coins for bonus points.
//
// Session holds the simulation; Game adapts it to the registry so the
// terminal and window hosts can run it.
package flappy

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

// Registry IDs of the two variants.
const (
	GameID        = "flappy"
	ClassicGameID = "flappy_classic"
)

var (
	// configPath stores the custom config path set via CLI
	configPath string
	selection  config.Selection
	logger     = log.New(io.Discard)
	audio      AudioSink
	bestStores func(gameID string) BestScoreStore
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSelection sets the speed and skin applied to new games.
func SetSelection(sel config.Selection) {
	selection = sel
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetAudio sets the audio sink handed to new sessions.
func SetAudio(a AudioSink) {
	audio = a
}

// SetBestStores sets how new sessions obtain the best-score store of their variant.
func SetBestStores(f func(gameID string) BestScoreStore) {
	bestStores = f
}

// LoadConfig loads the configuration for a variant, applying the current
// selection. Invalid files fall back to the defaults.
func LoadConfig(gameID string) config.FlappyConfig {
	return loadConfig(gameID, selection)
}

func loadConfig(gameID string, selection config.Selection) config.FlappyConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultFlappyConfig()
	}
	return prepare(gameID, cfg, selection)
}

// Prepare applies the current selection and the variant rules to a
// configuration read from disk, such as one delivered by a config.Watcher.
func Prepare(gameID string, cfg config.FlappyConfig) config.FlappyConfig {
	return prepare(gameID, cfg, selection)
}

func prepare(gameID string, cfg config.FlappyConfig, sel config.Selection) config.FlappyConfig {
	chosen := cfg
	if err := sel.Apply(&chosen); err != nil {
		logger.Warn("ignoring selection", "speed", sel.Speed, "skin", sel.Skin, "err", err)
	} else {
		cfg = chosen
	}
	return Variant(gameID, cfg)
}

// Variant adjusts a configuration for the given game ID.
func Variant(gameID string, cfg config.FlappyConfig) config.FlappyConfig {
	if gameID == ClassicGameID {
		cfg.Coins = config.FlappyCoins{}
	}
	return cfg
}

// Game implements registry.Game on top of a Session.
type Game struct {
	id        string
	title     string
	session   *Session
	selection *config.Selection    // Overrides the package selection when set
	pending   *config.FlappyConfig // Staged before the first session exists
}

// New creates a Flappy Bird game instance with coins.
func New() *Game {
	return &Game{id: GameID, title: "Flappy Bird"}
}

// NewClassic creates a Flappy Bird game instance without coins.
func NewClassic() *Game {
	return &Game{id: ClassicGameID, title: "Flappy Bird Classic"}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset creates the session on first use and restarts it after game over.
// A reset during a run abandons the run; the best score is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.session != nil {
		g.session.SetSeed(cfg.Seed)
		switch g.session.Phase() {
		case PhaseNotStarted:
			return
		case PhaseEnded:
			g.session.Restart()
			return
		}
	}

	var best int
	if g.session != nil {
		best = g.session.Best()
	}
	g.session = g.newSession(cfg.Seed)
	g.session.best = max(g.session.best, best)
}

func (g *Game) newSession(seed int64) *Session {
	opts := []Option{WithSeed(seed), WithLogger(logger.With("game", g.id))}
	if audio != nil {
		opts = append(opts, WithAudio(audio))
	}
	if bestStores != nil {
		if store := bestStores(g.id); store != nil {
			opts = append(opts, WithBestStore(store))
		}
	}

	cfg := g.pending
	g.pending = nil
	if cfg == nil {
		loaded := loadConfig(g.id, g.effectiveSelection())
		cfg = &loaded
	}
	s, err := NewSession(*cfg, opts...)
	if err != nil {
		logger.Warn("config rejected, using defaults", "game", g.id, "err", err)
		s, _ = NewSession(Variant(g.id, config.DefaultFlappyConfig()), opts...)
	}
	return s
}

// Step maps the input frame onto session commands and advances by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	s := g.session

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}

	switch s.Phase() {
	case PhaseNotStarted:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			s.Start()
			s.Jump()
		}
	case PhaseRunning:
		if in.Has(core.ActionJump) {
			s.Jump()
		}
	case PhaseEnded:
		if in.Has(core.ActionRestart) {
			s.Restart()
		}
	}

	s.Tick(dt)
	return core.StepResult{State: s.State()}
}

// SetConfig stages a new configuration for the next run.
// The game's speed and skin selection is applied on top of cfg.
func (g *Game) SetConfig(cfg config.FlappyConfig) error {
	cfg = prepare(g.id, cfg, g.effectiveSelection())
	if g.session != nil {
		return g.session.SetConfig(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flappy: %w", err)
	}
	g.pending = &cfg
	return nil
}

// SetSelection sets the speed and skin for this game only. Hosts serving
// several players at once use it instead of the package-level SetSelection.
// It takes effect at the next Reset that creates a session.
func (g *Game) SetSelection(sel config.Selection) {
	g.selection = &sel
}

func (g *Game) effectiveSelection() config.Selection {
	if g.selection != nil {
		return *g.selection
	}
	return selection
}

// Session returns the underlying session, or nil before the first Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		dst.Clear()
		return
	}
	Draw(dst, g.session.Snapshot())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return g.session.State()
}

// Register the game variants with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(ClassicGameID, func() registry.Game {
		return NewClassic()
	})
}
