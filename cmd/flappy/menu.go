package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variant, speed and skin, then play",
	Long: `Start in interactive menu mode.

Use Up/Down to move between rows and Left/Right to change a setting.
Choose Play to start; Esc on the title or game-over screen returns here.

Controls:
  Up/Down/j/k     - Move
  Left/Right/h/l  - Change setting
  Enter           - Play
  Tab             - High scores
  Q               - Quit

Examples:
  flappy menu
  flappy menu --skin owl --speed slow
  flappy menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup(io.Discard)
	if err != nil {
		return err
	}
	defer a.close()

	return tui.RunSession(terminalConfig(), a.selection, tui.ModelOptions{
		Store:   a.store,
		Watcher: a.watcher,
		Logger:  a.logger,
	})
}
