package engine

import (
	"cmp"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// ShuffleResult describes one shuffle pass.
type ShuffleResult struct {
	Tiles []*board.Tile
	Wait  time.Duration
}

// Shuffle redistributes the placed tiles over the cells they occupy. It
// performs exactly one permutation per call and never checks the outcome.
type Shuffle struct {
	grid   *board.Grid
	tiles  *TileManager
	rnd    Random
	sink   AnimationSink
	timing Timing
	logger *log.Logger
}

// NewShuffle creates a shuffle engine.
func NewShuffle(tiles *TileManager, rnd Random, sink AnimationSink, timing Timing, logger *log.Logger) *Shuffle {
	if sink == nil {
		sink = NopSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shuffle{
		grid:   tiles.Grid(),
		tiles:  tiles,
		rnd:    rnd,
		sink:   sink,
		timing: timing,
		logger: logger,
	}
}

// Run permutes the tiles.
func (s *Shuffle) Run() ShuffleResult {
	tiles := slices.DeleteFunc(s.tiles.ActiveTiles(), func(t *board.Tile) bool {
		return t.Cell() == nil
	})
	if len(tiles) == 0 {
		s.logger.Warn("no tiles to shuffle")
		return ShuffleResult{}
	}

	if expected := s.grid.Size(); len(tiles) != expected {
		s.logger.Warn("tile count mismatch before shuffle", "expected", expected, "got", len(tiles))
		s.reportDuplicates(tiles)
	}

	cells := make([]*board.Cell, len(tiles))
	for i, t := range tiles {
		cells[i] = t.Cell()
	}
	for _, t := range tiles {
		t.Release()
		s.grid.RemoveOccupant(t)
	}

	type keyed struct {
		cell *board.Cell
		key  float64
	}
	order := make([]keyed, len(cells))
	for i, c := range cells {
		order[i] = keyed{cell: c, key: s.rnd.Float()}
	}
	slices.SortStableFunc(order, func(a, b keyed) int { return cmp.Compare(a.key, b.key) })

	for i, t := range tiles {
		target := order[i].cell
		if err := t.Occupy(target); err != nil {
			s.logger.Error("shuffled tile could not occupy cell", "tile", t, "err", err)
			continue
		}
		if err := s.grid.AddOccupant(t); err != nil {
			continue
		}
		s.sink.MovedTo(t, target.Position(), s.timing.Shuffle)
	}

	s.logger.Debug("board shuffled", "tiles", len(tiles))
	return ShuffleResult{Tiles: tiles, Wait: s.timing.Shuffle}
}

func (s *Shuffle) reportDuplicates(tiles []*board.Tile) {
	seen := make(map[board.Coord]int, len(tiles))
	for _, t := range tiles {
		seen[t.Cell().Coord()]++
	}
	for pos, n := range seen {
		if n > 1 {
			s.logger.Error("duplicate tile position", "pos", pos, "count", n)
		}
	}
}
