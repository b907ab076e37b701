package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagLimit    int
	flagScoreTUI bool
	flagClear    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and game history",
	Long: `Display the stored high score and, for the sqlite store, the best games.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --tui
  snake scores --clear
  snake scores --store savedata`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to list")
	scoresCmd.Flags().BoolVar(&flagScoreTUI, "tui", false, "Browse the history in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Forget the high score and the game history")
}

// runHistory is implemented by stores that keep finished games.
type runHistory interface {
	tui.RunSource
	ClearRuns() error
}

func runScores(_ *cobra.Command, _ []string) {
	if err := scores(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func scores() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	store, err := registry.Open(cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Storage.Backend, err)
	}
	defer closeStore(store, logger)

	history, _ := store.(runHistory)

	if flagClear {
		return clearScores(store, history, logger)
	}

	highScore, _ := store.LoadHighScore()

	if flagScoreTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(history, highScore, width, height)
	}

	fmt.Printf("Snake - %s store\n", cfg.Storage.Backend)
	fmt.Println()
	fmt.Printf("High score: %d\n", highScore)

	if history == nil {
		return nil
	}

	runs, err := history.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving games: %w", err)
	}

	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Length", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6s  %s\n",
			i+1, r.Score, r.Length, tui.FormatDuration(r.Duration), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := history.Stats(); err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d   Average: %.1f   Total: %d\n", stats.RunsCount, stats.AvgScore, stats.TotalScore)
	}
	return nil
}

// clearScores resets the high score and, when the store keeps one, the game history.
func clearScores(store registry.Backend, history runHistory, logger *log.Logger) error {
	var errs []error
	if err := store.ResetHighScore(); err != nil {
		errs = append(errs, err)
	}
	if history != nil {
		if err := history.ClearRuns(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	logger.Info("scores cleared")
	fmt.Println("Scores cleared.")
	return nil
}
