// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as "flappy play")
//	flappy play              - Play in this terminal
//	flappy scores            - Show the high score table
//	flappy serve             - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Use a custom YAML or TOML game config
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/flappy"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flap a bird through gaps in scrolling pipes. Touching a pipe, the
ceiling or the ground ends the run; every pipe passed scores a point.

Available commands:
  play     - Play in this terminal (default)
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  flappy
  flappy play --difficulty hard
  flappy scores
  flappy serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and hands the game settings to the flappy package.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "flappy",
			Level:           level,
		})
	}
	logger.SetLevel(level)

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	flappy.SetConfigPath(flagConfig)
	flappy.SetDifficultyPreset(preset)
	flappy.SetLogger(logger)

	logger.Debug("starting", "command", cmd.Name(), "fps", flagFPS, "seed", flagSeed, "db", flagDBPath)
	return nil
}

// loadGameConfig validates the config a session will use. An invalid file is
// fatal here so that no session ever starts on a fallback.
func loadGameConfig() error {
	cfg, err := flappy.LoadConfig()
	if err != nil {
		return fmt.Errorf("cannot load game config: %w", err)
	}
	logger.Debug("game config loaded",
		"gravity", cfg.Physics.Gravity,
		"flap_impulse", cfg.Physics.FlapImpulse,
		"speed", cfg.Obstacles.Speed,
		"spawn_interval", cfg.Obstacles.SpawnInterval,
		"difficulty", cfg.Difficulty.Enabled,
	)
	return nil
}
