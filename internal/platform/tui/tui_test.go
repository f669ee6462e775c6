package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// fakeGame records what the host hands it.
type fakeGame struct {
	resets   []core.RuntimeConfig
	steps    []time.Duration
	inputs   []core.InputFrame
	state    core.GameState
	staged   []config.FlappyConfig
	stageErr error
}

var _ registry.Game = (*fakeGame)(nil)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.inputs = append(g.inputs, in)
	g.steps = append(g.steps, dt)
	if in.Has(core.ActionJump) {
		g.state.Started = true
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState   { return g.state }

func (g *fakeGame) SetConfig(cfg config.FlappyConfig) error {
	if g.stageErr != nil {
		return g.stageErr
	}
	g.staged = append(g.staged, cfg)
	return nil
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{" ", core.ActionJump, false},
		{"w", core.ActionJump, false},
		{"up", core.ActionJump, false},
		{"enter", core.ActionConfirm, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.key, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := map[string]MenuAction{
		"up":    MenuActionUp,
		"j":     MenuActionDown,
		"left":  MenuActionLeft,
		"l":     MenuActionRight,
		"enter": MenuActionSelect,
		"tab":   MenuActionScoreboard,
		"esc":   MenuActionBack,
		"q":     MenuActionQuit,
		"x":     MenuActionNone,
	}
	for k, want := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(k)); got != want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", k, got, want)
		}
	}
}

func TestElapsed(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		last, now  time.Time
		tickRate   int
		wantElapse time.Duration
	}{
		{"first tick", time.Time{}, base, 60, time.Second / 60},
		{"steady", base, base.Add(20 * time.Millisecond), 60, 20 * time.Millisecond},
		{"clock went back", base, base.Add(-time.Second), 30, time.Second / 30},
		{"zero rate", time.Time{}, base, 0, time.Second / 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval := core.RuntimeConfig{TickRate: tt.tickRate}.TickInterval()
			if got := elapsed(tt.last, tt.now, interval); got != tt.wantElapse {
				t.Errorf("elapsed = %v, expected %v", got, tt.wantElapse)
			}
		})
	}
}

func newTestModel(g *fakeGame, opts ModelOptions) GameModel {
	m := NewGameModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 7}, opts)
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return gm
}

func TestGameModelTicksWithWallClock(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, ModelOptions{})
	if len(g.resets) != 1 || g.resets[0].Seed != 7 {
		t.Fatalf("Init should reset the game with the configured seed, got %+v", g.resets)
	}

	base := time.Now()
	m = update(t, m, keyMsg(" "))
	m = update(t, m, TickMsg(base))
	m = update(t, m, TickMsg(base.Add(25*time.Millisecond)))

	if len(g.steps) != 2 {
		t.Fatalf("steps = %d, expected 2", len(g.steps))
	}
	if g.steps[0] != time.Second/60 || g.steps[1] != 25*time.Millisecond {
		t.Errorf("dt = %v, expected [%v 25ms]", g.steps, time.Second/60)
	}
	if !g.inputs[0].Has(core.ActionJump) {
		t.Error("first step should carry the jump")
	}
	if g.inputs[1].Has(core.ActionJump) {
		t.Error("input should be cleared after each step")
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, ModelOptions{})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if len(g.resets) != 1 {
		t.Errorf("resize should not reset the game, resets = %d", len(g.resets))
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelRestartReseeds(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, ModelOptions{})
	g.state = core.GameState{Started: true, GameOver: true, Score: 3}
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, keyMsg("r"))
	update(t, m, TickMsg(time.Now()))

	if len(g.resets) != 2 {
		t.Fatalf("restart should reset the game, resets = %d", len(g.resets))
	}
	if g.resets[1].Seed == 7 {
		t.Error("restart should pick a fresh seed")
	}
}

func TestGameModelBack(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		state    core.GameState
		wantBack bool
		wantQuit bool
	}{
		{"title screen, embedded", true, core.GameState{}, true, false},
		{"title screen, standalone", false, core.GameState{}, false, true},
		{"running", true, core.GameState{Started: true}, false, false},
		{"paused", true, core.GameState{Started: true, Paused: true}, true, false},
		{"game over", true, core.GameState{Started: true, GameOver: true}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &fakeGame{}
			m := newTestModel(g, ModelOptions{Embedded: tt.embedded})
			g.state = tt.state
			m = update(t, m, TickMsg(time.Now()))
			m = update(t, m, keyMsg("esc"))

			if m.BackToMenu() != tt.wantBack || m.IsQuitting() != tt.wantQuit {
				t.Errorf("back=%v quit=%v, expected back=%v quit=%v", m.BackToMenu(), m.IsQuitting(), tt.wantBack, tt.wantQuit)
			}
		})
	}
}

func TestGameModelConfigReload(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, ModelOptions{})

	cfg := config.DefaultFlappyConfig()
	cfg.Scroll.Speed = 4
	m = update(t, m, ConfigReloadMsg(cfg))
	if len(g.staged) != 1 || g.staged[0].Scroll.Speed != 4 {
		t.Fatalf("reload should be staged on the game, got %+v", g.staged)
	}

	g.stageErr = errors.New("rejected")
	update(t, m, ConfigReloadMsg(cfg))
	if len(g.staged) != 1 {
		t.Error("a rejected reload should not be staged")
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(&fakeGame{}, ModelOptions{})
	if m.View() == "" {
		t.Error("view should render the game")
	}
	m = update(t, m, keyMsg("q"))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit and blank the view")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "|||", core.ColorGreen)
	s.DrawTextColor(3, 0, "@>", core.ColorYellow)
	s.FillRect(core.NewRect(0, 1, 6, 1), '=', core.ColorOrange)
	s.SetColor(5, 1, '?', core.Color(99))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, run := range []string{"|||", "@>", "====="} {
		if !strings.Contains(out, run) {
			t.Errorf("output should keep the %q run intact: %q", run, out)
		}
	}
	if !strings.Contains(lines[1], "?") {
		t.Error("cells with unknown colors should still render")
	}
}

func menuUpdate(t *testing.T, m MenuModel, keys ...string) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		mm, ok := next.(MenuModel)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
		m = mm
	}
	return m
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.Selection{Skin: "owl"})
	sel := m.Selection()
	if sel.Speed != config.SpeedNormal || sel.Skin != "owl" {
		t.Fatalf("initial selection = %+v", sel)
	}

	// Cursor starts on Play; move up to Skin, then Speed.
	m = menuUpdate(t, m, "up", "right", "up", "left")
	sel = m.Selection()
	if sel.Skin != "bat" {
		t.Errorf("skin = %q, expected bat", sel.Skin)
	}
	if sel.Speed != config.SpeedSlow {
		t.Errorf("speed = %q, expected slow", sel.Speed)
	}

	m = menuUpdate(t, m, "left")
	if m.Selection().Speed != config.SpeedFast {
		t.Error("speed should wrap around")
	}

	m = menuUpdate(t, m, "down", "down", "enter")
	res := m.result()
	if res.Quit || res.GameID == "" {
		t.Errorf("enter on Play should choose a game, got %+v", res)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(core.DefaultConfig(), config.Selection{}), "tab")
	if !m.result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	m = menuUpdate(t, NewMenuModel(core.DefaultConfig(), config.Selection{}), "q")
	if !m.result().Quit {
		t.Error("q should quit")
	}
}

func TestScoreboardClear(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	for _, score := range []int{4, 11} {
		store.SaveScore("fake", score)
	}
	store.RecordBest("fake", 11)

	m := NewScoreboardModel(store, 100, 30)
	if len(m.runs) != 2 || m.runs[0].Score != 11 {
		t.Fatalf("runs = %+v, expected 11 then 4", m.runs)
	}
	if !strings.Contains(m.View(), "Stats") {
		t.Error("wide scoreboards should show the stats panel")
	}

	sbUpdate := func(k string) {
		t.Helper()
		next, _ := m.Update(keyMsg(k))
		m = next.(ScoreboardModel)
	}

	sbUpdate("x")
	sbUpdate("z")
	if m.confirm || len(m.runs) != 2 {
		t.Fatal("any key other than x should cancel the clear")
	}

	sbUpdate("x")
	if !m.confirm {
		t.Fatal("first x should ask for confirmation")
	}
	sbUpdate("x")
	if m.confirm || len(m.runs) != 0 {
		t.Errorf("second x should clear the runs, got %d", len(m.runs))
	}
	if runs, _ := store.TopScores("fake", 10); len(runs) != 0 {
		t.Error("clear should reach the store")
	}
	if m.stats.Best != 11 {
		t.Errorf("best = %d after clear, expected 11 to be kept", m.stats.Best)
	}

	sbUpdate("x")
	if m.confirm {
		t.Error("nothing left to clear, x should not ask again")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 50, 20)
	if !strings.Contains(m.View(), "history is off") {
		t.Errorf("view should explain the missing store:\n%s", m.View())
	}
	next, _ := m.Update(keyMsg("x"))
	if next.(ScoreboardModel).confirm {
		t.Error("nothing to clear without a store")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(core.DefaultConfig(), config.Selection{}, ModelOptions{})
	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
		s = sm
	}

	step(keyMsg("enter"))
	if s.view != viewGame {
		t.Fatal("choosing Play should start a game")
	}

	step(keyMsg("esc"))
	if s.view != viewMenu {
		t.Fatal("back on the title screen should return to the menu")
	}

	step(keyMsg("tab"))
	if s.view != viewScores {
		t.Fatal("tab should open the scoreboard")
	}
	step(keyMsg("esc"))
	if s.view != viewMenu || s.quitting {
		t.Fatal("back should return from the scoreboard to the menu")
	}

	step(keyMsg("q"))
	if !s.quitting || s.View() != "" {
		t.Error("q in the menu should end the session")
	}
}
