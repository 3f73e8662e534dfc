// Package match3 adapts the match-3 board engine to the terminal platform:
// it ticks the orchestrator, maps actions to a cursor and a selection,
// tracks animations and renders the board.
package match3

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/games/match3/layouts"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// Mode selects how a game ends.
type Mode string

const (
	ModeEndless Mode = "endless"
	ModeMoves   Mode = "moves"
)

const (
	defaultMoveLimit = 30
	hintDuration     = 2 * time.Second
	messageDuration  = 3 * time.Second
	minScreenWidth   = 40
)

// Game implements registry.Game for the match-3 board.
type Game struct {
	mode   Mode
	cfg    config.Match3Config
	orch   *engine.Orchestrator
	anim   *animator
	logger *log.Logger

	tick    time.Duration
	elapsed time.Duration

	cursor    board.Coord
	hint      engine.Move
	hintLeft  time.Duration
	message   string
	msgLeft   time.Duration
	moveLimit int

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	layoutRef        string
	pkgLogger        = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config as loaded.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLayout overrides board.layout with a fixture file or builtin layout ID.
func SetLayout(ref string) {
	layoutRef = ref
}

// SetLogger routes engine and game logs. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	pkgLogger = l
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_moves", func() registry.Game {
		return NewMoves()
	})
}

// New creates an endless match-3 game.
func New() *Game {
	return &Game{mode: ModeEndless}
}

// NewMoves creates a match-3 game that ends after a fixed number of moves.
func NewMoves() *Game {
	return &Game{mode: ModeMoves}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeMoves {
		return "match3_moves"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeMoves {
		return "Match-3 (Moves)"
	}
	return "Match-3"
}

// Reset loads the configuration and deals a new board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.logger = pkgLogger

	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		g.logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultMatch3Config()
	}
	if difficultyPreset != "" {
		config.ApplyMatch3Preset(&cfg, difficultyPreset)
	}
	if layoutRef != "" {
		cfg.Board.Layout = layoutRef
	}
	g.cfg = cfg

	ecfg, err := EngineConfig(cfg, runtime.Seed)
	if err != nil {
		g.logger.Warn("invalid board config, using defaults", "err", err)
		ecfg, _ = EngineConfig(config.DefaultMatch3Config(), runtime.Seed)
	}

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tick = time.Second / time.Duration(tickRate)
	g.elapsed = 0

	g.moveLimit = cfg.Scoring.MoveLimit
	if g.moveLimit <= 0 {
		g.moveLimit = defaultMoveLimit
	}

	g.anim = newAnimator(ecfg.Timing)
	g.orch = engine.NewOrchestrator(ecfg, engine.Deps{
		Logger:       g.logger,
		Sink:         g.anim,
		OnTransition: g.onTransition,
	})

	g.cursor = board.At(0, 0)
	g.hint = engine.Move{}
	g.hintLeft = 0
	g.message = ""
	g.msgLeft = 0
	g.gameOver = false
	g.paused = false
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.checkScreenSize()

	g.orch.Start()
	g.logger.Info("board dealt", "game", g.ID(), "rows", ecfg.Rows, "cols", ecfg.Columns, "seed", g.orch.Seed())
}

// EngineConfig converts the YAML configuration into the orchestrator's config.
// seed is used when the config does not pin one.
func EngineConfig(cfg config.Match3Config, seed int64) (engine.Config, error) {
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}
	palette, err := cfg.Board.Categories()
	if err != nil {
		return engine.Config{}, err
	}
	if cfg.Random.Seed != 0 {
		seed = cfg.Random.Seed
	}

	ecfg := engine.Config{
		Rows:                 cfg.Board.Rows,
		Columns:              cfg.Board.Columns,
		Palette:              palette,
		MaxShuffleAttempts:   cfg.Shuffle.MaxAttempts,
		Seed:                 seed,
		IncreaseSeedOnReplay: cfg.Random.IncreaseSeedOnReplay,
		PointsPerTile:        cfg.Scoring.PointsPerTile,
		Timing: engine.Timing{
			Swap:         cfg.Animation.Swap,
			Destroy:      cfg.Animation.Destroy,
			Gravity:      cfg.Animation.Gravity,
			SpawnStagger: cfg.Animation.SpawnStagger,
			Settle:       cfg.Animation.Settle,
			Shuffle:      cfg.Animation.Shuffle,
		},
	}

	if cfg.Board.Layout != "" {
		lay, err := layouts.Resolve(cfg.Board.Layout)
		if err != nil {
			return engine.Config{}, fmt.Errorf("board layout %q: %w", cfg.Board.Layout, err)
		}
		ecfg.Rows = lay.Rows()
		ecfg.Columns = lay.Columns()
		ecfg.Layout = lay.Cells
		if len(lay.Palette) > 0 {
			ecfg.Palette = lay.Palette
		}
	}
	return ecfg, nil
}

func (g *Game) onTransition(from, to engine.State) {
	g.logger.Debug("board state", "from", from, "to", to)
	switch to {
	case engine.StateReplaying:
		g.anim.Clear()
		g.hintLeft = 0
		g.say("No moves left, dealing a new board")
	case engine.StateShuffling:
		g.hintLeft = 0
		if from == engine.StateResolving {
			g.say("No moves left, shuffling")
		}
	}
}

func (g *Game) say(msg string) {
	g.message = msg
	g.msgLeft = messageDuration
}

func (g *Game) checkScreenSize() {
	rows, cols := g.orch.Grid().Rows(), g.orch.Grid().Columns()
	minW := core.Max(cols*cellWidth+2, minScreenWidth)
	minH := rows + 2 + hudHeight + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts the layout to a new screen without dealing a new board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.orch != nil {
		g.checkScreenSize()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)

	g.orch.Advance(g.tick)
	g.anim.Advance(g.tick)
	g.elapsed += g.tick
	g.hintLeft = max(g.hintLeft-g.tick, 0)
	if g.msgLeft -= g.tick; g.msgLeft <= 0 {
		g.message = ""
		g.msgLeft = 0
	}

	if g.mode == ModeMoves && g.MovesLeft() == 0 && g.orch.State() == engine.StateIdle && !g.orch.Busy() {
		g.gameOver = true
		g.logger.Info("out of moves", "score", g.orch.Stats().Score, "moves", g.orch.Stats().Moves)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if in.Has(core.ActionBack) {
		g.orch.Selector().Cancel()
	}
	if in.Has(core.ActionHint) {
		g.showHint()
	}
	if in.Has(core.ActionConfirm) {
		g.confirm()
	}
}

func (g *Game) moveCursor(dRow, dCol int) {
	grid := g.orch.Grid()
	next := g.cursor.Add(dRow, dCol)
	next.Row = core.Clamp(next.Row, 0, grid.Rows()-1)
	next.Col = core.Clamp(next.Col, 0, grid.Columns()-1)
	g.cursor = next

	if g.orch.Selector().Dragging() {
		g.orch.UpdateDrag(g.cursor)
	}
}

// confirm picks the tile under the cursor, or completes the selection when a
// tile is already picked. Picking a non-neighbour starts over from the cursor.
func (g *Game) confirm() {
	if g.moveBudgetSpent() {
		g.say("No moves left")
		return
	}
	sel := g.orch.Selector()
	if !sel.Dragging() {
		g.orch.StartDrag(g.cursor)
		return
	}

	first := sel.First()
	if first == nil || first.Cell() == nil {
		sel.Cancel()
		return
	}
	at := first.Cell().Coord()
	switch {
	case at == g.cursor:
		sel.Cancel()
	case at.Adjacent(g.cursor):
		g.orch.UpdateDrag(g.cursor)
		g.submit(g.orch.EndDrag())
	default:
		sel.Cancel()
		g.orch.StartDrag(g.cursor)
	}
}

func (g *Game) submit(err error) {
	switch {
	case err == nil:
		g.hintLeft = 0
	case errors.Is(err, engine.ErrBusy):
		g.say("Board is busy")
	default:
		g.logger.Debug("selection rejected", "err", err)
	}
}

func (g *Game) showHint() {
	move, ok := g.orch.Hint()
	if !ok {
		return
	}
	g.hint = move
	g.hintLeft = hintDuration
}

func (g *Game) moveBudgetSpent() bool {
	return g.mode == ModeMoves && g.MovesLeft() == 0
}

// MovesLeft returns the remaining moves, or -1 in endless mode.
func (g *Game) MovesLeft() int {
	if g.mode != ModeMoves {
		return -1
	}
	return max(g.moveLimit-g.orch.Stats().Moves, 0)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var stats engine.Stats
	if g.orch != nil {
		stats = g.orch.Stats()
	}
	return core.GameState{
		Score:    stats.Score,
		Moves:    stats.Moves,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Orchestrator exposes the running board.
func (g *Game) Orchestrator() *engine.Orchestrator { return g.orch }

// Cursor returns the cursor position.
func (g *Game) Cursor() board.Coord { return g.cursor }

// Elapsed returns the simulated time since Reset.
func (g *Game) Elapsed() time.Duration { return g.elapsed }

// Session summarises the game for storage.
func (g *Game) Session() storage.Session {
	stats := g.orch.Stats()
	return storage.Session{
		GameID:   g.ID(),
		Seed:     g.orch.Seed(),
		Score:    stats.Score,
		Moves:    stats.Moves,
		Matches:  stats.Matches,
		Cascades: stats.Cascades,
		Shuffles: stats.Shuffles,
		Replays:  stats.Replays,
		Cleared:  stats.Cleared,
		Duration: g.elapsed,
	}
}
