package engine

import (
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

const minRun = 3

// Move is an adjacent swap. B is always right of or below A.
type Move struct {
	A board.Coord
	B board.Coord
}

// Detector finds runs and possible moves on a grid.
//
// Runs compare categories with plain equality: a wildcard tile only extends a
// run of other wildcard tiles.
type Detector struct {
	grid *board.Grid
	run  []*board.Tile
}

// NewDetector creates a detector over grid.
func NewDetector(grid *board.Grid) *Detector {
	return &Detector{grid: grid, run: make([]*board.Tile, 0, 8)}
}

// FindMatch scans every row left to right and every column top to bottom and
// returns the union of all runs of three or more. A tile on both a horizontal
// and a vertical run appears once. found is true when the union holds at least
// three tiles.
func (d *Detector) FindMatch() (bool, []*board.Tile) {
	rows, cols := d.grid.Rows(), d.grid.Columns()
	var acc []*board.Tile

	for r := 0; r < rows; r++ {
		acc = d.collectLine(cols, func(i int) *board.Tile { return d.grid.TileAt(r, i) }, acc)
	}
	for c := 0; c < cols; c++ {
		acc = d.collectLine(rows, func(i int) *board.Tile { return d.grid.TileAt(i, c) }, acc)
	}

	seen := make(map[*board.Tile]struct{}, len(acc))
	out := make([]*board.Tile, 0, len(acc))
	for _, t := range acc {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return len(out) >= minRun, out
}

func (d *Detector) collectLine(length int, at func(int) *board.Tile, acc []*board.Tile) []*board.Tile {
	d.run = d.run[:0]
	flush := func() {
		if len(d.run) >= minRun {
			acc = append(acc, d.run...)
		}
		d.run = d.run[:0]
	}

	for i := 0; i < length; i++ {
		t := at(i)
		if t == nil {
			flush()
			continue
		}
		if len(d.run) > 0 && d.run[0].Category() != t.Category() {
			flush()
		}
		d.run = append(d.run, t)
	}
	flush()
	return acc
}

// HasPossibleMoves reports whether some adjacent swap would create a run.
func (d *Detector) HasPossibleMoves() bool {
	_, ok := d.FindPossibleMove()
	return ok
}

// FindPossibleMove returns the first swap that would create a run, scanning
// cells row-major and trying the right neighbour before the one below.
func (d *Detector) FindPossibleMove() (Move, bool) {
	rows, cols := d.grid.Rows(), d.grid.Columns()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t := d.grid.TileAt(r, c)
			if t == nil || t.Cell() == nil {
				continue
			}
			if c+1 < cols {
				if right := d.grid.TileAt(r, c+1); right != nil && right.Cell() != nil && d.wouldSwapCreateMatch(t, right) {
					return Move{A: board.At(r, c), B: board.At(r, c+1)}, true
				}
			}
			if r+1 < rows {
				if down := d.grid.TileAt(r+1, c); down != nil && down.Cell() != nil && d.wouldSwapCreateMatch(t, down) {
					return Move{A: board.At(r, c), B: board.At(r+1, c)}, true
				}
			}
		}
	}
	return Move{}, false
}

// wouldSwapCreateMatch exchanges the categories of a and b, probes both cells
// and always restores the categories before returning.
func (d *Detector) wouldSwapCreateMatch(a, b *board.Tile) bool {
	if a == nil || b == nil || a.Cell() == nil || b.Cell() == nil {
		return false
	}
	ca, cb := a.Category(), b.Category()
	a.SetCategory(cb)
	b.SetCategory(ca)

	result := d.hasLineMatchAt(a.Cell().Row(), a.Cell().Column()) ||
		d.hasLineMatchAt(b.Cell().Row(), b.Cell().Column())

	a.SetCategory(ca)
	b.SetCategory(cb)
	return result
}

// hasLineMatchAt reports whether the tile at (row, col) sits on a horizontal or
// vertical run of three or more, counting outward from the centre.
func (d *Detector) hasLineMatchAt(row, col int) bool {
	center := d.grid.TileAt(row, col)
	if center == nil {
		return false
	}
	cat := center.Category()

	if 1+d.countDirection(row, col, 0, -1, cat)+d.countDirection(row, col, 0, 1, cat) >= minRun {
		return true
	}
	return 1+d.countDirection(row, col, -1, 0, cat)+d.countDirection(row, col, 1, 0, cat) >= minRun
}

func (d *Detector) countDirection(row, col, dRow, dCol int, cat board.Category) int {
	n := 0
	for r, c := row+dRow, col+dCol; d.grid.InBounds(r, c); r, c = r+dRow, c+dCol {
		t := d.grid.TileAt(r, c)
		if t == nil || t.Category() != cat {
			break
		}
		n++
	}
	return n
}
