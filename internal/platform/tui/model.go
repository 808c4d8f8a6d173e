package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// ErrScreenshotsDisabled is returned by ctrl+s when no screenshot directory is set.
var ErrScreenshotsDisabled = errors.New("tui: screenshots disabled")

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	store         *storage.Store
	config        core.RuntimeConfig
	keys          *KeyMapper
	help          help.Model
	inputFrame    core.InputFrame
	gameState     core.GameState
	logger        *log.Logger
	screenshotDir string
	quitting      bool
	scoreSaved    bool // Whether the score has been saved for the current game over
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for game events and storage errors.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithScreenshotDir overrides where ctrl+s writes screen dumps.
// An empty dir disables screenshots.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// NewModel creates a model for the given game and resets the game.
// cfg holds the full terminal size; the bottom row shows key help.
// store may be nil, in which case scores are not persisted.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = playfieldHeight(cfg.ScreenH)

	m := Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:         store,
		config:        cfg,
		keys:          NewKeyMapper(),
		help:          help.New(),
		inputFrame:    core.NewInputFrame(),
		logger:        log.New(io.Discard),
		screenshotDir: filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots"),
	}
	m.help.Width = cfg.ScreenW
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

func playfieldHeight(termHeight int) int {
	return max(termHeight-helpRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues actions for the next tick. Quit and screenshot act at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize follows the terminal size. Games that implement
// registry.Resizer keep their session; others are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = playfieldHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else {
		m.game.Reset(m.config)
		m.scoreSaved = false
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick runs one simulation step with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.logger.Debug("game event", "game", m.game.ID(), "event", e.Type, "score", e.Score)
		switch e.Type {
		case core.EventGameOver:
			m.saveScore(e.Score)
		case core.EventRestarted:
			m.scoreSaved = false
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore persists a finished session once. Zero scores are not kept.
func (m *Model) saveScore(score int) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), score); err != nil {
		m.logger.Error("cannot save score", "game", m.game.ID(), "score", score, "error", err)
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "score", score)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", ErrScreenshotsDisabled
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the playfield and the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
