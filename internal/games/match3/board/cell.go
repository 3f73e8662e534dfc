package board

import "fmt"

// Position is the fixed spatial location of a cell, in cell units.
// X grows to the right and Y grows downward.
type Position struct {
	X float64
	Y float64
}

// Cell is one fixed position of a Grid. Cells are created by NewGrid and are
// immutable afterwards.
type Cell struct {
	coord    Coord
	position Position
	name     string
	grid     *Grid
}

// Row returns the cell's row.
func (c *Cell) Row() int { return c.coord.Row }

// Column returns the cell's column.
func (c *Cell) Column() int { return c.coord.Col }

// Coord returns the cell's coordinate.
func (c *Cell) Coord() Coord { return c.coord }

// Position returns the spatial position assigned at construction.
func (c *Cell) Position() Position { return c.position }

// Name returns a debug name such as "Cell_2_3".
func (c *Cell) Name() string { return c.name }

// String implements fmt.Stringer.
func (c *Cell) String() string {
	if c == nil {
		return "<nil cell>"
	}
	return c.name
}

func newCell(g *Grid, row, col int) *Cell {
	return &Cell{
		coord:    At(row, col),
		position: Position{X: float64(col), Y: float64(row)},
		name:     fmt.Sprintf("Cell_%d_%d", row, col),
		grid:     g,
	}
}
