package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// State is the orchestrator's phase.
type State int

const (
	StateIdle State = iota
	StateSwapping
	StateResolving
	StateReverting
	StateShuffling
	StateReplaying
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSwapping:
		return "swapping"
	case StateResolving:
		return "resolving"
	case StateReverting:
		return "reverting"
	case StateShuffling:
		return "shuffling"
	case StateReplaying:
		return "replaying"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// maxSteps bounds how many pending steps a single Advance or Settle call runs.
const maxSteps = 10000

// Config holds the board parameters fixed for a session.
type Config struct {
	Rows                 int
	Columns              int
	Palette              []board.Category
	MaxShuffleAttempts   int
	Seed                 int64
	IncreaseSeedOnReplay bool
	PointsPerTile        int
	Timing               Timing

	// Layout pins the categories of the first session's board, row by row.
	// Cells it does not cover are filled randomly. Replays always fill randomly.
	Layout [][]board.Category
}

// Deps are the collaborators the orchestrator is wired with.
// Every field is optional.
type Deps struct {
	Logger       *log.Logger
	Sink         AnimationSink
	NewRandom    func(seed int64) Random
	Spawner      Spawner
	OnTransition func(from, to State)
}

// Stats counts what happened during a session, replays included.
type Stats struct {
	Moves    int
	Reverts  int
	Matches  int
	Cascades int
	Shuffles int
	Replays  int
	Cleared  int
	Score    int
}

type pending struct {
	remaining time.Duration
	next      func()
}

// Orchestrator sequences swaps, refills, shuffles and replays. It is the single
// writer of the board: input is accepted only in StateIdle and each operation
// runs to completion before the next decision is taken.
type Orchestrator struct {
	cfg  Config
	deps Deps
	log  *log.Logger

	seed     int64
	rnd      Random
	grid     *board.Grid
	tiles    *TileManager
	detector *Detector
	refill   *Refill
	shuffle  *Shuffle
	swap     *Swap
	selector *Selector

	state        State
	pending      *pending
	shuffleCount int
	chain        int
	layoutUsed   bool
	stats        Stats

	sameSeedWarned bool
}

// NewOrchestrator validates cfg, fills in defaults and builds the first board.
// Call Start to run the initial policy.
func NewOrchestrator(cfg Config, deps Deps) *Orchestrator {
	if cfg.Rows < 1 {
		cfg.Rows = 1
	}
	if cfg.Columns < 1 {
		cfg.Columns = 1
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = board.DefaultPalette
	}
	if cfg.MaxShuffleAttempts < 1 {
		cfg.MaxShuffleAttempts = 1
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Sink == nil {
		deps.Sink = NopSink{}
	}
	if deps.NewRandom == nil {
		deps.NewRandom = func(seed int64) Random { return NewRandom(seed) }
	}
	if deps.Spawner == nil {
		deps.Spawner = NewTilePool()
	}

	o := &Orchestrator{
		cfg:      cfg,
		deps:     deps,
		log:      deps.Logger,
		seed:     cfg.Seed,
		selector: NewSelector(deps.Logger),
		state:    StateReplaying,
	}
	o.build()
	return o
}

func (o *Orchestrator) build() {
	o.rnd = o.deps.NewRandom(o.seed)
	o.grid = board.NewGrid(o.cfg.Rows, o.cfg.Columns, o.log)
	o.tiles = NewTileManager(o.grid, o.rnd, o.deps.Spawner, o.cfg.Palette, o.log)
	o.detector = NewDetector(o.grid)
	o.refill = NewRefill(o.tiles, o.deps.Sink, o.cfg.Timing, o.log)
	o.shuffle = NewShuffle(o.tiles, o.rnd, o.deps.Sink, o.cfg.Timing, o.log)
	o.swap = NewSwap(o.grid, o.deps.Sink, o.cfg.Timing, o.log)
}

func (o *Orchestrator) fill() {
	if !o.layoutUsed && len(o.cfg.Layout) > 0 {
		o.layoutUsed = true
		for r, row := range o.cfg.Layout {
			for c, cat := range row {
				if cell, err := o.grid.Lookup(board.At(r, c)); err == nil {
					o.tiles.SpawnAt(cell, cat)
				}
			}
		}
	}
	spawned := o.tiles.FillGrid()
	for _, t := range spawned {
		o.deps.Sink.Appeared(t, t.Cell().Position())
	}
}

// Start fills the board and applies the initial policy.
func (o *Orchestrator) Start() {
	o.fill()
	o.initialPolicy()
}

func (o *Orchestrator) initialPolicy() {
	o.shuffleCount = 0
	if found, _ := o.detector.FindMatch(); found {
		o.log.Debug("initial board has a match, shuffling")
		o.enterShuffling()
		return
	}
	if !o.detector.HasPossibleMoves() {
		o.log.Debug("initial board has no moves, shuffling")
		o.enterShuffling()
		return
	}
	o.enterIdle()
}

// State returns the current phase.
func (o *Orchestrator) State() State { return o.state }

// InputEnabled reports whether a selection would be accepted.
func (o *Orchestrator) InputEnabled() bool { return o.state == StateIdle }

// Busy reports whether an operation is waiting on its presentation delay.
func (o *Orchestrator) Busy() bool { return o.pending != nil }

// Grid returns the current board. A replay replaces it.
func (o *Orchestrator) Grid() *board.Grid { return o.grid }

// Tiles returns the current tile manager. A replay replaces it.
func (o *Orchestrator) Tiles() *TileManager { return o.tiles }

// Detector returns the detector bound to the current board.
func (o *Orchestrator) Detector() *Detector { return o.detector }

// Selector returns the drag selection state.
func (o *Orchestrator) Selector() *Selector { return o.selector }

// Seed returns the seed of the current session.
func (o *Orchestrator) Seed() int64 { return o.seed }

// Stats returns the running counters.
func (o *Orchestrator) Stats() Stats { return o.stats }

// Hint returns a possible move when the board is idle.
func (o *Orchestrator) Hint() (Move, bool) {
	if o.state != StateIdle {
		return Move{}, false
	}
	return o.detector.FindPossibleMove()
}

// StartDrag opens a drag on the tile at c.
func (o *Orchestrator) StartDrag(c board.Coord) bool {
	if !o.InputEnabled() {
		return false
	}
	t := o.grid.TileAt(c.Row, c.Col)
	o.selector.StartDrag(t)
	return t != nil
}

// UpdateDrag moves an open drag over the tile at c.
func (o *Orchestrator) UpdateDrag(c board.Coord) {
	if !o.InputEnabled() {
		return
	}
	o.selector.UpdateDrag(o.grid.TileAt(c.Row, c.Col))
}

// EndDrag closes the drag and submits the selection when it is complete.
func (o *Orchestrator) EndDrag() error {
	first, last, ok := o.selector.EndDrag()
	if !ok {
		return nil
	}
	return o.SelectionCompleted(first, last)
}

// Select submits the pair of tiles at from and to.
func (o *Orchestrator) Select(from, to board.Coord) error {
	a := o.grid.TileAt(from.Row, from.Col)
	b := o.grid.TileAt(to.Row, to.Col)
	if a == nil || b == nil {
		o.log.Warn("selection on empty or missing cell", "from", from, "to", to)
		return fmt.Errorf("select %s -> %s: %w", from, to, ErrNilTile)
	}
	return o.SelectionCompleted(a, b)
}

// SelectionCompleted swaps a and b. The pair is rejected before anything moves
// if the board is busy or the tiles are not orthogonal neighbours.
func (o *Orchestrator) SelectionCompleted(a, b *board.Tile) error {
	if o.state != StateIdle || o.pending != nil {
		return ErrBusy
	}
	if a == nil || b == nil {
		return ErrNilTile
	}
	if !a.IsAdjacent(b) {
		o.log.Warn("selection rejected, tiles not adjacent", "a", a, "b", b)
		return fmt.Errorf("%v -> %v: %w", a, b, ErrNotAdjacent)
	}

	o.setState(StateSwapping)
	wait, err := o.swap.Run(a, b)
	if err != nil {
		o.log.Error("swap failed", "err", err)
		o.enterIdle()
		return err
	}
	o.stats.Moves++
	o.schedule(wait, func() { o.swapCompleted(a, b) })
	return nil
}

func (o *Orchestrator) swapCompleted(a, b *board.Tile) {
	if found, matched := o.detector.FindMatch(); found {
		o.setState(StateResolving)
		o.chain = 0
		o.stats.Matches++
		o.resolve(matched)
		return
	}

	o.setState(StateReverting)
	o.stats.Reverts++
	wait, err := o.swap.Run(a, b)
	if err != nil {
		o.log.Error("revert failed", "err", err)
	}
	o.schedule(wait, o.enterIdle)
}

func (o *Orchestrator) resolve(matched []*board.Tile) {
	o.chain++
	o.stats.Cleared += len(matched)
	o.stats.Score += len(matched) * o.cfg.PointsPerTile * o.chain
	res := o.refill.Run(matched)
	o.schedule(res.Wait, o.refillCompleted)
}

func (o *Orchestrator) refillCompleted() {
	if found, matched := o.detector.FindMatch(); found {
		o.log.Debug("cascade match", "tiles", len(matched), "chain", o.chain+1)
		o.stats.Cascades++
		o.resolve(matched)
		return
	}
	if !o.detector.HasPossibleMoves() {
		o.log.Debug("no possible moves after refill")
		o.shuffleCount = 0
		o.enterShuffling()
		return
	}
	o.enterIdle()
}

func (o *Orchestrator) enterShuffling() {
	o.setState(StateShuffling)
	o.stats.Shuffles++
	res := o.shuffle.Run()
	o.schedule(res.Wait, o.shuffleCompleted)
}

func (o *Orchestrator) shuffleCompleted() {
	o.shuffleCount++
	o.log.Debug("shuffle completed", "attempt", o.shuffleCount, "max", o.cfg.MaxShuffleAttempts)

	if found, _ := o.detector.FindMatch(); found {
		if o.shuffleCount < o.cfg.MaxShuffleAttempts {
			o.enterShuffling()
			return
		}
		o.log.Info("shuffle attempts exhausted with a match on the board, replaying", "attempts", o.shuffleCount)
		o.replay()
		return
	}
	if !o.detector.HasPossibleMoves() {
		if o.shuffleCount < o.cfg.MaxShuffleAttempts {
			o.enterShuffling()
			return
		}
		o.log.Info("shuffle attempts exhausted without a possible move, replaying", "attempts", o.shuffleCount)
		o.replay()
		return
	}
	o.enterIdle()
}

func (o *Orchestrator) replay() {
	o.setState(StateReplaying)
	o.pending = nil
	o.selector.Cancel()
	o.tiles.DestroyAll()

	if o.cfg.IncreaseSeedOnReplay {
		o.seed++
	} else if !o.sameSeedWarned {
		o.sameSeedWarned = true
		o.log.Warn("replay reproduces the same board; enable increase_seed_on_replay", "seed", o.seed)
	}
	o.stats.Replays++
	o.log.Info("replaying board", "seed", o.seed)

	o.build()
	o.fill()
	o.initialPolicy()
}

func (o *Orchestrator) enterIdle() {
	o.shuffleCount = 0
	o.chain = 0
	o.setState(StateIdle)
}

func (o *Orchestrator) setState(to State) {
	from := o.state
	if from == to {
		return
	}
	if from == StateIdle && o.selector.Dragging() {
		o.log.Debug("input disabled, discarding open drag")
		o.selector.Cancel()
	}
	o.state = to
	o.log.Debug("state transition", "from", from, "to", to)
	if o.deps.OnTransition != nil {
		o.deps.OnTransition(from, to)
	}
}

func (o *Orchestrator) schedule(wait time.Duration, next func()) {
	if wait < 0 {
		wait = 0
	}
	o.pending = &pending{remaining: wait, next: next}
}

// Advance consumes dt of presentation time, running every step whose delay
// has elapsed.
func (o *Orchestrator) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	for steps := 0; o.pending != nil; steps++ {
		if steps >= maxSteps {
			o.log.Error("advance step limit reached", "state", o.state)
			return
		}
		if o.pending.remaining > dt {
			o.pending.remaining -= dt
			return
		}
		dt -= o.pending.remaining
		next := o.pending.next
		o.pending = nil
		next()
	}
}

// Settle runs pending steps until the board rests, ignoring their delays.
// It returns the number of steps run.
func (o *Orchestrator) Settle() int {
	steps := 0
	for o.pending != nil {
		if steps >= maxSteps {
			o.log.Error("settle step limit reached", "state", o.state)
			break
		}
		next := o.pending.next
		o.pending = nil
		next()
		steps++
	}
	return steps
}
