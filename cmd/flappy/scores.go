package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

In a terminal the scores open in a scrollable table; when output is
piped they are printed as plain text.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores | head -3
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultTopLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(flappy.GameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "db", flagDBPath)
		fmt.Println("Scores cleared.")
		return nil
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		return tui.RunScoreboard(store, flappy.GameID, flagLimit, width, height)
	}

	return tui.WriteScoreReport(os.Stdout, store, flappy.GameID, flagLimit)
}
