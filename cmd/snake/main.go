// snake is a terminal Snake game.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play a local game
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show the high score and recent games
//	snake backends           - List high-score store backends
//
// Global flags:
//
//	--config <path>   - Config file (default: ~/.snake/snake.yaml, ./configs/snake.yaml)
//	--store <name>    - High-score store backend (sqlite, savedata, memory)
//	--db <path>       - SQLite database path (default: ~/.snake/scores.db)
//	--seed <value>    - RNG seed for reproducible food placement
//	--log-level <lvl> - debug, info, warn, error
//	--log-file <path> - Log destination while playing (default: ~/.snake/snake.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register store backends
	_ "github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagStore    string
	flagDBPath   string
	flagSeed     int64
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
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake in your terminal. Eat the food, grow longer, and don't hit
the walls or yourself. The snake speeds up as your score grows.

Available commands:
  play      - Play a game (default)
  serve     - Start SSH server for remote play
  scores    - View the high score and game history
  backends  - List high-score store backends

Examples:
  snake
  snake play --seed 42
  snake serve --ssh :2222
  snake scores --tui`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "High-score store backend (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while playing (default: ~/.snake/snake.log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(backendsCmd)
}
