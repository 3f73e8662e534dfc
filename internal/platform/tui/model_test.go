package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// fakeGame counts moves from confirm presses and ends after endAfter moves.
type fakeGame struct {
	cfg      core.RuntimeConfig
	state    core.GameState
	endAfter int
	resets   int
	resized  [2]int
	lastIn   []core.Action
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.state = core.GameState{}
	g.resets++
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.lastIn = g.lastIn[:0]
	for _, a := range []core.Action{core.ActionConfirm, core.ActionRight, core.ActionRestart} {
		if in.Has(a) {
			g.lastIn = append(g.lastIn, a)
		}
	}
	if in.Has(core.ActionConfirm) {
		g.state.Moves++
		g.state.Score += 30
	}
	if g.endAfter > 0 && g.state.Moves >= g.endAfter {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState   { return g.state }
func (g *fakeGame) Resize(w, h int)         { g.resized = [2]int{w, h} }

func (g *fakeGame) Session() storage.Session {
	return storage.Session{
		GameID: g.ID(),
		Seed:   g.cfg.Seed,
		Score:  g.state.Score,
		Moves:  g.state.Moves,
	}
}

func newTestModel(t *testing.T, g *fakeGame) (*Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "match3.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 30, Seed: 99}
	m := NewModel(g, cfg, Options{Store: store, Theme: MonoTheme()})
	m.Init()
	return m, store
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func tick(m *Model) {
	m.Update(TickMsg{})
}

func TestModelInitLeavesRoomForHelp(t *testing.T) {
	g := &fakeGame{}
	newTestModel(t, g)

	if g.resets != 1 {
		t.Fatalf("Reset called %d times, want 1", g.resets)
	}
	if g.cfg.ScreenH != 19 || g.cfg.ScreenW != 40 {
		t.Errorf("game screen = %dx%d, want 40x19", g.cfg.ScreenW, g.cfg.ScreenH)
	}
	if g.cfg.Seed != 99 {
		t.Errorf("seed = %d, want 99", g.cfg.Seed)
	}
}

func TestModelKeysReachGameOnTick(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestModel(t, g)

	press(m, runeKey('l'))
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	tick(m)

	if len(g.lastIn) != 2 || g.lastIn[0] != core.ActionConfirm || g.lastIn[1] != core.ActionRight {
		t.Errorf("game saw %v, want [Confirm Right]", g.lastIn)
	}

	tick(m)
	if len(g.lastIn) != 0 {
		t.Errorf("input frame should be cleared after a tick, game saw %v", g.lastIn)
	}
}

func TestModelIgnoresRestartDuringPlay(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestModel(t, g)

	press(m, runeKey('r'))
	tick(m)

	if g.resets != 1 {
		t.Errorf("restart during play reset the game")
	}
}

func TestModelQuitSavesSession(t *testing.T) {
	g := &fakeGame{}
	m, store := newTestModel(t, g)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	tick(m)

	if cmd := press(m, runeKey('q')); cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	best, err := store.HighScore("fake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("high score = %d, want 30", best)
	}

	sessions, err := store.RecentSessions("fake", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].Moves != 1 || sessions[0].Seed != 99 {
		t.Errorf("session = %+v, want 1 move and seed 99", sessions[0])
	}
}

func TestModelQuitWithoutMovesSavesNothing(t *testing.T) {
	g := &fakeGame{}
	m, store := newTestModel(t, g)

	press(m, runeKey('q'))

	sessions, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("got %d sessions, want none", len(sessions))
	}
}

func TestModelGameOverSavesOnceAndRestarts(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m, store := newTestModel(t, g)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	tick(m)
	tick(m)
	press(m, runeKey('q'))

	sessions, err := store.RecentSessions("fake", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}

	g2 := &fakeGame{endAfter: 1}
	m2, _ := newTestModel(t, g2)
	press(m2, tea.KeyMsg{Type: tea.KeyEnter})
	tick(m2)
	press(m2, runeKey('r'))
	tick(m2)

	if g2.resets != 2 {
		t.Errorf("Reset called %d times, want 2 after restart", g2.resets)
	}
	if g2.cfg.Seed == 99 {
		t.Error("restart should pick a new seed")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestModel(t, g)

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})

	if g.resized != [2]int{60, 29} {
		t.Errorf("Resize got %v, want [60 29]", g.resized)
	}
	if g.resets != 1 {
		t.Error("resize should not reset a game that can resize")
	}
	if m.screen.Width() != 60 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 60x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestModel(t, g)

	view := m.View()
	if len(view) < 4 || view[:4] != "fake" {
		t.Errorf("view should start with the game render, got %q", view)
	}
}
