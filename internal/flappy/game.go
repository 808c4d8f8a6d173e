package flappy

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "flappy"

// Settings applied to every game created by the registry factory.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig resolves the configuration the next Reset will use.
func LoadConfig() (config.FlappyConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg, nil
}

// Game adapts a Session to the platform's fixed-tick Game interface.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a new game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset builds a fresh session for the given screen and seed.
// An unusable config file falls back to the built-in defaults; the CLI
// rejects such files before a game is ever created.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("falling back to default config", "error", err)
		cfg = config.DefaultFlappyConfig()
	}

	session, err := NewSession(cfg, runtime.ScreenW, runtime.ScreenH, runtime.Seed, WithLogger(logger))
	if err != nil {
		logger.Warn("cannot build session for screen, using default size", "error", err,
			"width", runtime.ScreenW, "height", runtime.ScreenH)
		def := core.DefaultConfig()
		session, err = NewSession(config.DefaultFlappyConfig(), def.ScreenW, def.ScreenH, runtime.Seed, WithLogger(logger))
		if err != nil {
			panic(err)
		}
	}
	g.session = session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.session.State().Phase() == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.session.Update(g.runtime.TickDelta(), Inputs{
		Flap:    in.Has(core.ActionJump),
		Restart: in.Has(core.ActionRestart),
	})

	return core.StepResult{State: g.State(), Events: events}
}

// Resize adapts the running session to a new screen size.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.session.Resize(width, height)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score().Value(),
		GameOver: g.session.State().Over(),
		Paused:   g.paused,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
