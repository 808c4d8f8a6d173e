package flappy

import "fmt"

// ScoreCounter holds the session score and mirrors it to the presenter.
type ScoreCounter struct {
	value int
	ui    Presenter
}

// NewScoreCounter creates a zeroed counter bound to a presenter.
func NewScoreCounter(ui Presenter) (*ScoreCounter, error) {
	if ui == nil {
		return nil, fmt.Errorf("%w: score counter needs a presenter", ErrMissingDependency)
	}
	return &ScoreCounter{ui: ui}, nil
}

// Increment adds a point and pushes the new value to the live display.
func (s *ScoreCounter) Increment() {
	s.value++
	s.ui.UpdateScore(s.value)
}

// Reset sets the score back to zero. The display is left to the caller.
func (s *ScoreCounter) Reset() {
	s.value = 0
}

// Value returns the current score.
func (s *ScoreCounter) Value() int {
	return s.value
}
