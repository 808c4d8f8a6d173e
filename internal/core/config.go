package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDelta returns the simulated seconds covered by one tick.
func (c RuntimeConfig) TickDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventStarted   EventType = iota + 1 // Session left the menu
	EventFlap                           // Agent flapped (sound cue)
	EventScored                         // Agent passed an obstacle
	EventGameOver                       // Terminal collision (sound cue)
	EventRestarted                      // Session was reset to the menu
)

// String returns the event name used in logs.
func (e EventType) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventFlap:
		return "flap"
	case EventScored:
		return "scored"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step. Score carries the score at emission time.
type Event struct {
	Type  EventType
	Score int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given type happened during the step.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}
