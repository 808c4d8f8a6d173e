package flappy

import "strconv"

// Presenter receives display changes from GameState and ScoreCounter.
// Callers invoke the matching Show method on every phase transition.
type Presenter interface {
	ShowMenu()
	ShowGameplay()
	ShowGameOver(finalScore int)
	UpdateScore(value int)
}

// Panel identifies which UI panel is visible.
type Panel int

const (
	PanelMenu Panel = iota
	PanelGameplay
	PanelGameOver
)

// String returns the panel name.
func (p Panel) String() string {
	switch p {
	case PanelMenu:
		return "menu"
	case PanelGameplay:
		return "gameplay"
	case PanelGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// HUD is the display state the renderer draws from.
// A single Panel value means exactly one panel is ever visible.
type HUD struct {
	panel      Panel
	scoreText  string
	finalScore string
}

// NewHUD returns a HUD showing the menu.
func NewHUD() *HUD {
	h := &HUD{scoreText: "0"}
	h.ShowMenu()
	return h
}

// ShowMenu makes the menu panel the visible one.
func (h *HUD) ShowMenu() {
	h.panel = PanelMenu
}

// ShowGameplay makes the gameplay panel visible and zeroes the live score.
func (h *HUD) ShowGameplay() {
	h.panel = PanelGameplay
	h.UpdateScore(0)
}

// ShowGameOver makes the game-over panel visible with the final score.
func (h *HUD) ShowGameOver(finalScore int) {
	h.panel = PanelGameOver
	h.finalScore = "Score: " + strconv.Itoa(finalScore)
}

// UpdateScore sets the live score text.
func (h *HUD) UpdateScore(value int) {
	h.scoreText = strconv.Itoa(value)
}

// Panel returns the visible panel.
func (h *HUD) Panel() Panel { return h.panel }

// ScoreText returns the live score display.
func (h *HUD) ScoreText() string { return h.scoreText }

// FinalScoreText returns the game-over score display.
func (h *HUD) FinalScoreText() string { return h.finalScore }
