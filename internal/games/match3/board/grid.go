package board

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Grid is a rows x columns matrix of cells plus the occupancy map.
// Cells and the occupancy map are stored in row-major order: index = row*cols + col.
//
// Invariants:
//   - an occupant is in the map at a cell iff its own cell reference is that cell
//   - a cell maps to at most one occupant
//   - only placed occupants whose cell belongs to this grid can be added
type Grid struct {
	rows      int
	cols      int
	cells     []*Cell
	occupants []Occupant
	active    map[Occupant]struct{}
	logger    *log.Logger
}

// NewGrid creates a grid with all cells empty. A nil logger discards output.
func NewGrid(rows, cols int, logger *log.Logger) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Grid{
		rows:      rows,
		cols:      cols,
		cells:     make([]*Cell, rows*cols),
		occupants: make([]Occupant, rows*cols),
		active:    make(map[Occupant]struct{}, rows*cols),
		logger:    logger,
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[g.index(r, c)] = newCell(g, r, c)
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

// Size returns rows * columns.
func (g *Grid) Size() int { return g.rows * g.cols }

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// InBounds returns true if (row, col) is inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellAt returns the cell at (row, col).
// Out-of-bounds lookups log a warning and return nil.
func (g *Grid) CellAt(row, col int) *Cell {
	if !g.InBounds(row, col) {
		g.logger.Warn("cell position out of bounds", "row", row, "col", col)
		return nil
	}
	return g.cells[g.index(row, col)]
}

// Lookup is CellAt without the warning, for callers probing neighbours.
func (g *Grid) Lookup(c Coord) (*Cell, error) {
	if !g.InBounds(c.Row, c.Col) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return g.cells[g.index(c.Row, c.Col)], nil
}

// Cells returns all cells in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Contains reports whether the cell is one of this grid's cells.
func (g *Grid) Contains(cell *Cell) bool {
	if cell == nil || cell.grid != g {
		return false
	}
	if !g.InBounds(cell.Row(), cell.Column()) {
		return false
	}
	return g.cells[g.index(cell.Row(), cell.Column())] == cell
}

// FindEmptyCell returns the first cell in row-major order with no occupant.
func (g *Grid) FindEmptyCell() (*Cell, bool) {
	for i, o := range g.occupants {
		if o == nil {
			return g.cells[i], true
		}
	}
	return nil, false
}

// AddOccupant registers a placed occupant at its own cell.
// Rejections are logged and leave the grid untouched.
func (g *Grid) AddOccupant(o Occupant) error {
	if isNilOccupant(o) {
		g.logger.Error("occupant cannot be nil")
		return ErrNilOccupant
	}
	if _, ok := g.active[o]; ok {
		g.logger.Error("occupant already exists", "occupant", o)
		return fmt.Errorf("%w: %v", ErrAlreadyRegistered, o)
	}
	cell := o.Cell()
	if cell == nil {
		g.logger.Error("occupant does not have a cell", "occupant", o)
		return fmt.Errorf("%w: %v", ErrUnplaced, o)
	}
	if !g.Contains(cell) {
		g.logger.Error("cell does not belong to this grid", "row", cell.Row(), "col", cell.Column())
		return fmt.Errorf("%w: %s", ErrForeignCell, cell)
	}
	idx := g.index(cell.Row(), cell.Column())
	if current := g.occupants[idx]; current != nil {
		g.logger.Error("cell already occupied", "cell", cell, "occupant", current, "incoming", o)
		return fmt.Errorf("%w: %s holds %v", ErrCellOccupied, cell, current)
	}

	g.occupants[idx] = o
	g.active[o] = struct{}{}
	return nil
}

// OccupantAt returns the occupant at the cell, or nil.
func (g *Grid) OccupantAt(cell *Cell) Occupant {
	if !g.Contains(cell) {
		return nil
	}
	return g.occupants[g.index(cell.Row(), cell.Column())]
}

// TileAt returns the tile at (row, col), or nil when the position is empty,
// out of bounds or holds a non-tile occupant.
func (g *Grid) TileAt(row, col int) *Tile {
	if !g.InBounds(row, col) {
		return nil
	}
	t, _ := g.occupants[g.index(row, col)].(*Tile)
	return t
}

// RemoveOccupant unregisters the occupant. If the occupant still references
// its cell the matching entry is cleared directly; if the caller has already
// released it, the map is scanned for the stale entry.
// Removing an unregistered occupant is a no-op with a warning.
func (g *Grid) RemoveOccupant(o Occupant) {
	if isNilOccupant(o) {
		return
	}
	if _, ok := g.active[o]; !ok {
		g.logger.Warn("removing unregistered occupant", "occupant", o)
		return
	}

	if cell := o.Cell(); cell != nil {
		if g.InBounds(cell.Row(), cell.Column()) {
			idx := g.index(cell.Row(), cell.Column())
			if g.occupants[idx] == o {
				g.occupants[idx] = nil
			}
		}
	} else {
		g.clearStale(o)
	}

	delete(g.active, o)
}

func (g *Grid) clearStale(o Occupant) {
	for i, cur := range g.occupants {
		if cur == o {
			g.occupants[i] = nil
			return
		}
	}
}

// IsRegistered reports whether the occupant is in the active set.
func (g *Grid) IsRegistered(o Occupant) bool {
	_, ok := g.active[o]
	return ok
}

// RegisteredCount returns the number of registered occupants.
func (g *Grid) RegisteredCount() int {
	return len(g.active)
}

// OccupiedCount returns the number of non-empty occupancy entries.
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, o := range g.occupants {
		if o != nil {
			n++
		}
	}
	return n
}

// Consistent reports whether every registered occupant sits in the map exactly
// at its own cell and nothing else is in the map.
func (g *Grid) Consistent() bool {
	if g.OccupiedCount() != len(g.active) {
		return false
	}
	for i, o := range g.occupants {
		if o == nil {
			continue
		}
		if _, ok := g.active[o]; !ok {
			return false
		}
		if o.Cell() != g.cells[i] {
			return false
		}
	}
	return true
}

// Clear unregisters every occupant without touching their cell references.
func (g *Grid) Clear() {
	for i := range g.occupants {
		g.occupants[i] = nil
	}
	clear(g.active)
}

func isNilOccupant(o Occupant) bool {
	if o == nil {
		return true
	}
	if t, ok := o.(*Tile); ok && t == nil {
		return true
	}
	return false
}
