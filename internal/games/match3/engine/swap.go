package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// Swap exchanges the cells of two tiles. Running it twice on the same pair
// restores the previous placement, so it serves for the revert as well.
type Swap struct {
	grid   *board.Grid
	sink   AnimationSink
	timing Timing
	logger *log.Logger
}

// NewSwap creates a swap engine.
func NewSwap(grid *board.Grid, sink AnimationSink, timing Timing, logger *log.Logger) *Swap {
	if sink == nil {
		sink = NopSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Swap{grid: grid, sink: sink, timing: timing, logger: logger}
}

// Run swaps a and b and returns the presentation delay.
func (s *Swap) Run(a, b *board.Tile) (time.Duration, error) {
	if a == nil || b == nil {
		return 0, ErrNilTile
	}
	ca, cb := a.Cell(), b.Cell()
	if ca == nil || cb == nil {
		return 0, fmt.Errorf("swap %v and %v: %w", a, b, board.ErrUnplaced)
	}

	a.Release()
	s.grid.RemoveOccupant(a)
	b.Release()
	s.grid.RemoveOccupant(b)

	if err := s.place(a, cb); err != nil {
		return 0, err
	}
	if err := s.place(b, ca); err != nil {
		return 0, err
	}

	s.sink.MovedTo(a, cb.Position(), s.timing.Swap)
	s.sink.MovedTo(b, ca.Position(), s.timing.Swap)
	s.logger.Debug("tiles swapped", "a", a, "b", b)
	return s.timing.Swap, nil
}

func (s *Swap) place(t *board.Tile, cell *board.Cell) error {
	if err := t.Occupy(cell); err != nil {
		return fmt.Errorf("swap: %w", err)
	}
	if err := s.grid.AddOccupant(t); err != nil {
		return fmt.Errorf("swap: %w", err)
	}
	return nil
}
