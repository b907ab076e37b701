package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Snake.

Controls:
  Arrows/WASD  - Steer
  Enter        - Start, or play again after game over
  Space        - Start, pause and resume
  R            - Play again after game over
  Ctrl+S       - Save a screenshot to ~/.snake/screenshots
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Logs are written to ~/.snake/snake.log while the game owns the screen.

Examples:
  snake play
  snake play --seed 42
  snake play --store savedata
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	if minW, minH := snake.MinScreenSize(); width < minW || height < minH+1 {
		logger.Warn("terminal is smaller than the board", "width", width, "height", height)
	}

	store := openStore(cfg.Storage, logger)
	if store == nil {
		fmt.Fprintln(os.Stderr, "Warning: could not open the high-score store, see the log for details")
	}

	logger.Info("starting game", "backend", cfg.Storage.Backend, "seed", flagSeed)
	runErr := tui.Run(tui.Options{
		Config: cfg,
		Store:  store,
		Seed:   flagSeed,
		Logger: logger,
		Width:  width,
		Height: height,
	})

	// Close store before potential exit
	closeStore(store, logger)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
