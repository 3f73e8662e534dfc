package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// sessionReporter is implemented by games that keep a session summary.
type sessionReporter interface {
	Session() storage.Session
}

// resizer is implemented by games that can adapt to a new screen size
// without starting over.
type resizer interface {
	Resize(width, height int)
}

// Options configures a Model. Zero values are replaced with defaults.
type Options struct {
	Store  *storage.Store
	Theme  Theme
	Keys   KeyMap
	Logger *log.Logger
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	theme      Theme
	logger     *log.Logger
	quitting   bool
	saved      bool // result stored for the current game
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) *Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Theme.Colors == nil {
		opts.Theme = DefaultTheme()
	}
	if len(opts.Keys.Quit.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		store:      opts.Store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       opts.Keys,
		help:       h,
		theme:      opts.Theme,
		logger:     opts.Logger,
	}
}

// boardHeight leaves the last terminal line for the help bar.
func boardHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init starts the game and the tick loop.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	return tickCmd(m.config.TickRate)
}

func (m *Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = boardHeight(cfg.ScreenH)
	return cfg
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Shot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveResult()
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, boardHeight(msg.Height))
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}
	return m, nil
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.saved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveResult()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult stores the score and the session summary once per game.
func (m *Model) saveResult() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "err", err)
		}
	}
	if r, ok := m.game.(sessionReporter); ok && m.gameState.Moves > 0 {
		id, err := m.store.SaveSession(r.Session())
		if err != nil {
			m.logger.Warn("could not save session", "game", m.game.ID(), "err", err)
			return
		}
		m.logger.Info("session saved", "id", id, "score", m.gameState.Score)
	}
}

// saveScreenshot writes the current screen as text to ~/.match3/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".match3", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme) + "\n" + m.theme.Help.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
