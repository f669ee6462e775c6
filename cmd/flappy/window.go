package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/window"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a window and play the given variant.

Controls:
  Space/Up/W/Click  - Flap (also starts the run)
  P                 - Pause
  R/Enter           - Restart (after game over)
  Esc/Q             - Quit

Examples:
  flappy window
  flappy window flappy_classic --scale 0.8`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 500x750 playfield")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := flappy.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'flappy list' to see them", gameID)
	}

	a, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	title := gameID
	if g, err := registry.Create(gameID); err == nil {
		title = g.Title()
	}

	var reloads chan config.FlappyConfig
	if w := a.watcher; w != nil {
		reloads = make(chan config.FlappyConfig, 1)
		done := make(chan struct{})
		defer close(done)
		go forwardReloads(done, w, reloads, gameID, a.logger)
	}

	opts := window.Options{
		Title:   title,
		Config:  flappy.LoadConfig(gameID),
		Seed:    flagSeed,
		Scale:   flagScale,
		Logger:  a.logger.With("game", gameID),
		Best:    a.bestFor(gameID),
		Reloads: reloads,
	}
	if a.player != nil {
		opts.Audio = a.player
	}
	return window.Run(opts)
}

// forwardReloads hands the window each reloaded configuration, prepared
// for gameID with the current selection. It returns once done is closed.
func forwardReloads(done <-chan struct{}, w *config.Watcher, out chan<- config.FlappyConfig, gameID string, logger *log.Logger) {
	for {
		select {
		case <-done:
			return
		case err := <-w.Errors:
			logger.Warn("config reload rejected", "err", err)
		case cfg := <-w.Updates:
			select {
			case out <- flappy.Prepare(gameID, cfg):
			case <-done:
				return
			}
		}
	}
}
