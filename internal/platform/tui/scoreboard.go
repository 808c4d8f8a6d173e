package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// dateLayout formats the Date column.
const dateLayout = "Jan 02 15:04"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
	statsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score table of one game.
type ScoreboardModel struct {
	gameID   string
	title    string
	store    *storage.Store
	limit    int
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard and loads the top scores.
func NewScoreboardModel(store *storage.Store, gameID string, limit, width, height int) ScoreboardModel {
	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		limit:  limit,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

// createTable creates a table sized for the current window.
func (m *ScoreboardModel) createTable() table.Model {
	dateWidth := max(m.width-4-22, len(dateLayout))
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: min(dateWidth, 20)},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores reads the top scores and stats from the store.
func (m *ScoreboardModel) loadScores() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.scores, m.loadErr = m.store.TopScores(m.gameID, m.limit)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(m.gameID)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(ScoreRows(m.scores))
	m.table.GotoTop()
}

// ScoreRows formats entries as rank, score and date columns.
func ScoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format(dateLayout),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES - "+m.title, m.width)))
	b.WriteString("\n\n")

	if m.stats != nil && m.stats.GamesCount > 0 {
		line := fmt.Sprintf("%d games  |  best %d  |  average %.1f", m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
		b.WriteString(statsStyle.Render(centerText(line, m.width)))
		b.WriteString("\n\n")
	}

	b.WriteString(boxStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Cannot load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsQuitting returns true if the user closed the scoreboard.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, gameID string, limit, width, height int) error {
	model := NewScoreboardModel(store, gameID, limit, width, height)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// WriteScores prints the scores as plain text, for output that is not a terminal.
func WriteScores(w io.Writer, entries []storage.ScoreEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No scores recorded yet.")
		return err
	}
	for _, row := range ScoreRows(entries) {
		if _, err := fmt.Fprintf(w, "%-5s %8s  %s\n", row[0], row[1], row[2]); err != nil {
			return err
		}
	}
	return nil
}

// WriteScoreReport prints the top scores of a game followed by its best score.
func WriteScoreReport(w io.Writer, store *storage.Store, gameID string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}
	if err := WriteScores(w, scores); err != nil {
		return err
	}
	if len(scores) == 0 {
		return nil
	}

	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\nBest: %d\n", best)
	return err
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
