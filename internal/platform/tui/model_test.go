package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// stubGame replays queued step results and records what it was given.
type stubGame struct {
	resets  []core.RuntimeConfig
	jumps   []bool
	queue   []core.StepResult
	state   core.GameState
	resized [][2]int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.jumps = append(g.jumps, in.Has(core.ActionJump))
	if len(g.queue) == 0 {
		return core.StepResult{State: g.state}
	}
	res := g.queue[0]
	g.queue = g.queue[1:]
	g.state = res.State
	return res
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

// resizingGame also follows terminal resizes.
type resizingGame struct {
	stubGame
}

func (g *resizingGame) Resize(width, height int) {
	g.resized = append(g.resized, [2]int{width, height})
}

func gameOver(score int) core.StepResult {
	return core.StepResult{
		State:  core.GameState{Score: score, GameOver: true},
		Events: []core.Event{{Type: core.EventGameOver, Score: score}},
	}
}

func restarted() core.StepResult {
	return core.StepResult{Events: []core.Event{{Type: core.EventRestarted}}}
}

func newTestModel(t *testing.T, game *stubGame, withStore bool) (Model, *storage.Store) {
	t.Helper()
	var store *storage.Store
	if withStore {
		var err error
		store, err = storage.Open(filepath.Join(t.TempDir(), "scores.db"))
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { store.Close() })
	}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 7}
	return NewModel(game, store, cfg, WithScreenshotDir(t.TempDir())), store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestNewModelResetsGame(t *testing.T) {
	game := &stubGame{}
	newTestModel(t, game, false)

	if len(game.resets) != 1 {
		t.Fatalf("expected one reset, got %d", len(game.resets))
	}
	got := game.resets[0]
	if got.ScreenW != 40 || got.ScreenH != 20-helpRows || got.Seed != 7 {
		t.Errorf("reset with %+v", got)
	}
}

func TestModelQueuesInputUntilTick(t *testing.T) {
	game := &stubGame{}
	m, _ := newTestModel(t, game, false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if len(game.jumps) != 0 {
		t.Fatal("keys should not step the game")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m, _ = update(t, m, TickMsg{})

	if len(game.jumps) != 2 || !game.jumps[0] || game.jumps[1] {
		t.Errorf("jumps = %v, expected [true false]", game.jumps)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, &stubGame{}, false)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	game := &stubGame{queue: []core.StepResult{
		gameOver(5),
		{State: core.GameState{Score: 5, GameOver: true}},
		gameOver(5),
		restarted(),
		gameOver(3),
	}}
	m, store := newTestModel(t, game, true)

	for range 5 {
		m, _ = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 || scores[0].Score != 5 || scores[1].Score != 3 {
		t.Errorf("saved scores = %+v, expected [5 3]", scores)
	}
	if !m.GameState().GameOver {
		t.Error("GameState() should follow the last step")
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	game := &stubGame{queue: []core.StepResult{gameOver(0)}}
	m, store := newTestModel(t, game, true)

	update(t, m, TickMsg{})

	if high, _ := store.HighScore("stub"); high != 0 {
		t.Errorf("zero score should not be saved, high = %d", high)
	}
	if stats, _ := store.GetGameStats("stub"); stats.GamesCount != 0 {
		t.Errorf("expected no rows, got %d", stats.GamesCount)
	}
}

func TestModelWithoutStore(t *testing.T) {
	game := &stubGame{queue: []core.StepResult{gameOver(9)}}
	m, _ := newTestModel(t, game, false)

	m, _ = update(t, m, TickMsg{})
	if !m.GameState().GameOver {
		t.Error("game over should still be tracked without a store")
	}
}

func TestModelResize(t *testing.T) {
	t.Run("resizer keeps session", func(t *testing.T) {
		game := &resizingGame{}
		m, _ := newTestModel(t, &game.stubGame, false)
		m.game = game

		m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

		if len(game.resized) != 1 || game.resized[0] != [2]int{100, 30 - helpRows} {
			t.Errorf("resized = %v", game.resized)
		}
		if len(game.resets) != 1 {
			t.Errorf("resize should not reset a Resizer, resets = %d", len(game.resets))
		}
		if m.screen.Width() != 100 || m.screen.Height() != 30-helpRows {
			t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
		}
	})

	t.Run("plain game is reset", func(t *testing.T) {
		game := &stubGame{}
		m, _ := newTestModel(t, game, false)

		update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

		if len(game.resets) != 2 {
			t.Fatalf("expected a second reset, got %d", len(game.resets))
		}
		if got := game.resets[1]; got.ScreenW != 100 || got.ScreenH != 30-helpRows {
			t.Errorf("reset with %+v", got)
		}
	})
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	game := &stubGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 4, TickRate: 60, Seed: 1}, WithScreenshotDir(dir))

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "stub_") {
		t.Fatalf("expected one stub screenshot, got %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "stub") {
		t.Errorf("screenshot content = %q", data)
	}
}

func TestModelScreenshotDisabled(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 4, TickRate: 60, Seed: 1}, WithScreenshotDir(""))

	if _, err := m.saveScreenshot(); !errors.Is(err, ErrScreenshotsDisabled) {
		t.Errorf("err = %v, expected ErrScreenshotsDisabled", err)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, &stubGame{}, false)

	view := m.View()
	if !strings.Contains(view, "stub") {
		t.Errorf("view should contain the rendered game:\n%s", view)
	}
	if !strings.Contains(view, "flap") {
		t.Errorf("view should show key help:\n%s", view)
	}
}
