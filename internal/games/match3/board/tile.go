package board

import "fmt"

// Occupant is anything that can be placed on a cell and tracked by a Grid.
//
// Occupy and Release only change the occupant's own cell reference; callers
// register and unregister the occupant with the Grid separately.
type Occupant interface {
	Cell() *Cell
	Occupy(cell *Cell) error
	Release()
}

// Tile is the matchable occupant. Its identity (ID) is independent from its
// category, which may be changed temporarily during move search.
type Tile struct {
	id       int
	category Category
	cell     *Cell
}

// NewTile creates an unplaced tile.
func NewTile(id int, category Category) *Tile {
	return &Tile{id: id, category: category}
}

// Reset reinitialises a recycled tile. The tile must be unplaced.
func (t *Tile) Reset(id int, category Category) {
	t.id = id
	t.category = category
	t.cell = nil
}

// ID returns the tile's identity.
func (t *Tile) ID() int { return t.id }

// Category returns the tile's match category.
func (t *Tile) Category() Category { return t.category }

// SetCategory changes the tile's match category.
func (t *Tile) SetCategory(c Category) { t.category = c }

// Cell returns the cell the tile occupies, or nil when unplaced.
func (t *Tile) Cell() *Cell { return t.cell }

// Placed reports whether the tile currently references a cell.
func (t *Tile) Placed() bool { return t.cell != nil }

// Occupy sets the tile's cell reference. Occupying while already placed is
// rejected with ErrAlreadyPlaced.
func (t *Tile) Occupy(cell *Cell) error {
	if cell == nil {
		return ErrNilCell
	}
	if t.cell != nil {
		return fmt.Errorf("%w: %s is on %s", ErrAlreadyPlaced, t, t.cell)
	}
	t.cell = cell
	return nil
}

// Release clears the tile's cell reference.
func (t *Tile) Release() {
	t.cell = nil
}

// Matches reports whether the tile matches the given category, honouring the
// wildcard on either side.
func (t *Tile) Matches(c Category) bool {
	return t.category.Matches(c)
}

// IsAdjacent reports whether both tiles are placed on orthogonally neighbouring cells.
func (t *Tile) IsAdjacent(other *Tile) bool {
	if t == nil || other == nil || t.cell == nil || other.cell == nil {
		return false
	}
	return t.cell.coord.Adjacent(other.cell.coord)
}

// String returns a debug name such as "Tile#7(red@Cell_1_2)".
func (t *Tile) String() string {
	if t == nil {
		return "<nil tile>"
	}
	if t.cell == nil {
		return fmt.Sprintf("Tile#%d(%s)", t.id, t.category)
	}
	return fmt.Sprintf("Tile#%d(%s@%s)", t.id, t.category, t.cell.name)
}
