// flappy is a Flappy Bird clone for the terminal, a desktop window and SSH.
//
// Usage:
//
//	flappy play [variant]    - Play in the terminal (default: flappy)
//	flappy menu              - Pick variant, speed and skin interactively
//	flappy window [variant]  - Play in a desktop window
//	flappy serve             - Start SSH server for remote play
//	flappy scores [variant]  - Show high scores
//	flappy list              - List the game variants
//	flappy config            - Inspect or create the configuration file
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.flappy/scores.db)
//	--store <kind>      - Best-score storage: sqlite, file or none
//	--config <path>     - Use a custom game config YAML
//	--speed <preset>    - Scroll speed: slow, normal or fast
//	--skin <name>       - Character skin
//	--watch             - Reload the config file when it changes
//	--mute              - Disable sound
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagStore    string
	flagConfig   string
	flagSpeed    string
	flagSkin     string
	flagWatch    bool
	flagMute     bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird flies through an endless corridor of pipes.
Flap to stay in the air, pass pipes for points and grab coins for bonuses.

Available commands:
  play     - Play in the terminal
  menu     - Interactive variant, speed and skin picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show the game variants
  config   - Inspect or create the configuration file

Examples:
  flappy play
  flappy play flappy_classic --speed fast
  flappy menu --skin owl
  flappy window --scale 1.2
  flappy serve --ssh :2222
  flappy scores flappy`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	pf.StringVar(&flagStore, "store", storeSQLite, "Best-score storage: sqlite, file or none")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	pf.StringVar(&flagSkin, "skin", "", "Character skin")
	pf.BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
