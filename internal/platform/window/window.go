// Package window runs a flappy session in a desktop window using Ebitengine.
// The playfield is drawn in world units; Ebitengine scales it to the window.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// errQuit ends the game loop without reporting an error.
var errQuit = errors.New("quit")

// Options configures a window.
type Options struct {
	Title  string
	Config config.FlappyConfig
	Seed   int64
	Scale  float64 // Window size relative to the playfield, defaults to 1

	Logger *log.Logger
	Audio  flappy.AudioSink
	Best   flappy.BestScoreStore

	// Reloads delivers validated configurations staged for the next run.
	Reloads <-chan config.FlappyConfig
}

// Host implements ebiten.Game on top of a flappy session.
type Host struct {
	session *flappy.Session
	frame   flappy.Snapshot
	painter painter
	logger  *log.Logger
	reloads <-chan config.FlappyConfig
	width   int
	height  int
}

// New creates the host and its session.
func New(opts Options) (*Host, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	h := &Host{
		logger:  opts.Logger,
		reloads: opts.Reloads,
		width:   int(opts.Config.Playfield.Width),
		height:  int(opts.Config.Playfield.Height),
	}

	sessionOpts := []flappy.Option{
		flappy.WithSeed(opts.Seed),
		flappy.WithLogger(opts.Logger),
		flappy.WithRenderSink(h),
	}
	if opts.Audio != nil {
		sessionOpts = append(sessionOpts, flappy.WithAudio(opts.Audio))
	}
	if opts.Best != nil {
		sessionOpts = append(sessionOpts, flappy.WithBestStore(opts.Best))
	}

	s, err := flappy.NewSession(opts.Config, sessionOpts...)
	if err != nil {
		return nil, err
	}
	h.session = s
	h.frame = s.Snapshot()
	return h, nil
}

// Render keeps the latest snapshot for Draw. It implements flappy.RenderSink.
func (h *Host) Render(snap flappy.Snapshot) {
	h.frame = snap
}

// Update maps input onto session commands and advances one tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	h.drainReloads()

	s := h.session
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.TogglePause()
	}

	flap := flapPressed()
	switch s.Phase() {
	case flappy.PhaseNotStarted:
		if flap || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			s.Start()
			s.Jump()
		}
	case flappy.PhaseRunning:
		if flap {
			s.Jump()
		}
	case flappy.PhaseEnded:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			s.SetSeed(time.Now().UnixNano())
			s.Restart()
		}
	}

	s.Tick(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// drainReloads stages the newest reloaded configuration, if any.
func (h *Host) drainReloads() {
	if h.reloads == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-h.reloads:
			if !ok {
				h.reloads = nil
				return
			}
			if err := h.session.SetConfig(cfg); err != nil {
				h.logger.Warn("config reload rejected", "err", err)
				continue
			}
			h.logger.Info("config reloaded, applies from the next run")
		default:
			return
		}
	}
}

func flapPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw paints the latest snapshot.
func (h *Host) Draw(screen *ebiten.Image) {
	h.painter.draw(screen, h.frame)
}

// Layout keeps the logical screen at playfield size.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

// Session exposes the hosted session.
func (h *Host) Session() *flappy.Session {
	return h.session
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	h, err := New(opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	title := opts.Title
	if title == "" {
		title = "Flappy Bird"
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(float64(h.width)*scale), int(float64(h.height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}
