package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// Selector tracks a drag selection: the tile the drag started on and the
// adjacent tile it currently points at.
type Selector struct {
	first    *board.Tile
	last     *board.Tile
	dragging bool
	logger   *log.Logger
}

// NewSelector creates an idle selector.
func NewSelector(logger *log.Logger) *Selector {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Selector{logger: logger}
}

// Dragging reports whether a drag is open.
func (s *Selector) Dragging() bool { return s.dragging }

// First returns the tile the drag started on.
func (s *Selector) First() *board.Tile { return s.first }

// Last returns the currently selected partner, or nil.
func (s *Selector) Last() *board.Tile { return s.last }

// StartDrag opens a drag on t. A nil tile is ignored.
func (s *Selector) StartDrag(t *board.Tile) {
	if t == nil {
		s.logger.Warn("no tile under pointer, drag not started")
		return
	}
	s.dragging = true
	s.first = t
	s.last = nil
}

// UpdateDrag moves the drag over t. Returning to the first tile drops the
// partner; only tiles adjacent to the first tile become the partner.
func (s *Selector) UpdateDrag(t *board.Tile) {
	if !s.dragging || t == nil || t == s.last {
		return
	}
	if t == s.first {
		s.last = nil
		return
	}
	if s.first == nil {
		s.logger.Warn("no first tile to compare with")
		return
	}
	if !s.first.IsAdjacent(t) {
		return
	}
	s.last = t
}

// EndDrag closes the drag. It returns the pair only when both ends are set.
func (s *Selector) EndDrag() (first, last *board.Tile, ok bool) {
	first, last = s.first, s.last
	s.Cancel()
	if first == nil || last == nil {
		return nil, nil, false
	}
	return first, last, true
}

// Cancel discards the drag without emitting a selection.
func (s *Selector) Cancel() {
	s.dragging = false
	s.first = nil
	s.last = nil
}
