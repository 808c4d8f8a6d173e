// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through gaps in scrolling pipes; touching a pipe,
// the ceiling or the ground ends the session.
//
// The rules are split the way the session uses them: GameState owns the
// phase flags, ScoreCounter the score, a Presenter the visible panel, and
// Session ties them to motion, spawning and collision detection behind a
// single Update(dt, inputs) tick.
package flappy

import (
	"errors"
	"fmt"
)

// ErrMissingDependency is returned by constructors when a collaborator is nil.
var ErrMissingDependency = errors.New("flappy: missing dependency")

// Phase is the coarse session state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState tracks whether a session has started and whether it is over.
// started and over are never both true.
type GameState struct {
	started bool
	over    bool

	ui    Presenter
	score *ScoreCounter
}

// NewGameState creates a GameState in the menu phase.
func NewGameState(ui Presenter, score *ScoreCounter) (*GameState, error) {
	if ui == nil {
		return nil, fmt.Errorf("%w: game state needs a presenter", ErrMissingDependency)
	}
	if score == nil {
		return nil, fmt.Errorf("%w: game state needs a score counter", ErrMissingDependency)
	}
	return &GameState{ui: ui, score: score}, nil
}

// Started reports whether gameplay is running.
func (g *GameState) Started() bool { return g.started }

// Over reports whether the session has ended.
func (g *GameState) Over() bool { return g.over }

// Active reports whether per-tick motion and spawning should run.
func (g *GameState) Active() bool {
	return g.started && !g.over
}

// Phase derives the coarse phase from the flags.
func (g *GameState) Phase() Phase {
	switch {
	case g.over:
		return PhaseOver
	case g.started:
		return PhasePlaying
	default:
		return PhaseMenu
	}
}

// Start moves from the menu into gameplay. It resets the score and switches
// the presenter to the gameplay panel. Outside the menu it does nothing and
// returns false.
func (g *GameState) Start() bool {
	if g.Phase() != PhaseMenu {
		return false
	}
	g.started = true
	g.over = false
	g.score.Reset()
	g.ui.ShowGameplay()
	return true
}

// End finishes a running session and shows the final score.
// It only acts while playing and returns false otherwise.
func (g *GameState) End() bool {
	if g.Phase() != PhasePlaying {
		return false
	}
	g.over = true
	g.started = false
	g.ui.ShowGameOver(g.score.Value())
	return true
}

// Restart returns the flags and the score to their initial values and
// shows the menu with a zeroed score display.
func (g *GameState) Restart() {
	g.started = false
	g.over = false
	g.score.Reset()
	g.ui.UpdateScore(0)
	g.ui.ShowMenu()
}
