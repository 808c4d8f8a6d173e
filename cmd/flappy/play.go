package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W - Flap (also starts the run)
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, constant pipe speed

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := loadGameConfig(); err != nil {
		return err
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(flappy.GameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	return tui.Run(game, store, cfg, tui.WithLogger(logger))
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
