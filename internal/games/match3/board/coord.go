package board

import "fmt"

// Coord addresses a cell by row and column.
// Row 0 is the top row; rows grow downward (screen coordinates).
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dRow, dCol).
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Adjacent reports whether other is exactly one step away horizontally or
// vertically. Diagonal neighbours are not adjacent.
func (c Coord) Adjacent(other Coord) bool {
	dr := abs(c.Row - other.Row)
	dc := abs(c.Col - other.Col)
	return (dr == 1 && dc == 0) || (dr == 0 && dc == 1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
