package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing the given variant in the terminal.

Variants:
  flappy          - Pipes and coins (default)
  flappy_classic  - Pipes only

Controls:
  Space/Up/W  - Flap (also starts the run)
  P           - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C    - Quit

Examples:
  flappy play
  flappy play flappy_classic
  flappy play --speed fast --skin bat
  flappy play --config ./my-flappy.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := flappy.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'flappy list' to see them", gameID)
	}

	a, err := setup(io.Discard)
	if err != nil {
		return err
	}
	defer a.close()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	return tui.Run(game, terminalConfig(), tui.ModelOptions{
		Store:   a.store,
		Watcher: a.watcher,
		Logger:  a.logger,
	})
}

// terminalConfig builds the runtime config from the flags and the terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
