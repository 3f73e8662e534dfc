package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

const (
	maxScores   = 100
	maxSessions = 50
)

// scoreView selects what the scoreboard table lists.
type scoreView int

const (
	viewTopScores scoreView = iota
	viewSessions
)

func (v scoreView) String() string {
	if v == viewSessions {
		return "RECENT SESSIONS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextGame   key.Binding
	PrevGame   key.Binding
	ToggleView key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.ToggleView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGame, k.PrevGame, k.ToggleView, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev game"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores/sessions"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists top scores or recent sessions for each game mode.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	view       scoreView
	store      *storage.Store
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	err        error
	quitting   bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.view == viewSessions {
		return []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Score", Width: 7},
			{Title: "Moves", Width: 6},
			{Title: "Casc", Width: 5},
			{Title: "Shuf", Width: 5},
			{Title: "Seed", Width: 12},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: 18},
	}
}

func (m *ScoreboardModel) newTable(rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

// reload queries the store for the current game and view.
func (m *ScoreboardModel) reload() {
	m.err = nil
	var rows []table.Row
	if m.store != nil && len(m.games) > 0 {
		rows, m.err = m.loadRows(m.games[m.gameCursor].ID)
	}
	m.table = m.newTable(rows)
}

func (m *ScoreboardModel) loadRows(gameID string) ([]table.Row, error) {
	if m.view == viewSessions {
		sessions, err := m.store.RecentSessions(gameID, maxSessions)
		if err != nil {
			return nil, err
		}
		return SessionRows(sessions), nil
	}

	scores, err := m.store.TopScores(gameID, maxScores)
	if err != nil {
		return nil, err
	}
	return ScoreRows(scores), nil
}

// ScoreRows formats score entries as ranked table rows.
func ScoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// SessionRows formats session summaries as table rows.
func SessionRows(sessions []storage.Session) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = table.Row{
			s.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Moves),
			fmt.Sprintf("%d", s.Cascades),
			fmt.Sprintf("%d", s.Shuffles),
			fmt.Sprintf("%d", s.Seed),
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
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleView):
			m.view = (m.view + 1) % 2
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	title := m.view.String()
	if len(m.games) > 0 {
		title = fmt.Sprintf("%s - %s", title, m.games[m.gameCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.tableContent()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tableContent() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	switch {
	case m.err != nil:
		return muted.Render("Could not load scores: " + m.err.Error())
	case len(m.table.Rows()) == 0:
		return muted.Render("Nothing recorded yet.\nPlay a game to fill this table!")
	default:
		return m.table.View()
	}
}

func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if width <= w {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
