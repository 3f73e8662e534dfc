package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeTile(t *testing.T, g *Grid, id int, cat Category, row, col int) *Tile {
	t.Helper()
	tile := NewTile(id, cat)
	require.NoError(t, tile.Occupy(g.CellAt(row, col)))
	require.NoError(t, g.AddOccupant(tile))
	return tile
}

func TestNewGridCells(t *testing.T) {
	g := NewGrid(3, 4, nil)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Columns())
	assert.Len(t, g.Cells(), 12)

	cell := g.CellAt(2, 1)
	require.NotNil(t, cell)
	assert.Equal(t, 2, cell.Row())
	assert.Equal(t, 1, cell.Column())
	assert.Equal(t, Position{X: 1, Y: 2}, cell.Position())
	assert.Equal(t, "Cell_2_1", cell.Name())
	assert.Same(t, cell, g.CellAt(2, 1), "cells are created once")
}

func TestCellAtOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3, nil)

	for _, c := range []Coord{At(-1, 0), At(0, -1), At(3, 0), At(0, 3)} {
		assert.Nil(t, g.CellAt(c.Row, c.Col), "CellAt%v", c)
		_, err := g.Lookup(c)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
}

func TestFindEmptyCellRowMajor(t *testing.T) {
	g := NewGrid(2, 2, nil)

	cell, ok := g.FindEmptyCell()
	require.True(t, ok)
	assert.Equal(t, At(0, 0), cell.Coord())

	placeTile(t, g, 1, Red, 0, 0)
	placeTile(t, g, 2, Red, 0, 1)

	cell, ok = g.FindEmptyCell()
	require.True(t, ok)
	assert.Equal(t, At(1, 0), cell.Coord())

	placeTile(t, g, 3, Red, 1, 0)
	placeTile(t, g, 4, Red, 1, 1)

	_, ok = g.FindEmptyCell()
	assert.False(t, ok)
}

func TestAddOccupantRejections(t *testing.T) {
	g := NewGrid(3, 3, nil)
	other := NewGrid(3, 3, nil)

	var nilTile *Tile
	assert.ErrorIs(t, g.AddOccupant(nil), ErrNilOccupant)
	assert.ErrorIs(t, g.AddOccupant(nilTile), ErrNilOccupant)

	unplaced := NewTile(1, Red)
	assert.ErrorIs(t, g.AddOccupant(unplaced), ErrUnplaced)

	foreign := NewTile(2, Blue)
	require.NoError(t, foreign.Occupy(other.CellAt(0, 0)))
	assert.ErrorIs(t, g.AddOccupant(foreign), ErrForeignCell)

	placed := placeTile(t, g, 3, Green, 1, 1)
	assert.ErrorIs(t, g.AddOccupant(placed), ErrAlreadyRegistered)

	squatter := NewTile(4, Green)
	require.NoError(t, squatter.Occupy(g.CellAt(1, 1)))
	assert.ErrorIs(t, g.AddOccupant(squatter), ErrCellOccupied)

	assert.Equal(t, 1, g.RegisteredCount())
	assert.Equal(t, 1, g.OccupiedCount())
	assert.Same(t, placed, g.TileAt(1, 1))
	assert.True(t, g.Consistent())
}

func TestAddRemoveRoundTrip(t *testing.T) {
	g := NewGrid(3, 3, nil)
	placeTile(t, g, 1, Red, 0, 0)
	before := snapshotOccupancy(g)

	tile := placeTile(t, g, 2, Blue, 2, 2)
	assert.Equal(t, 2, g.OccupiedCount())

	g.RemoveOccupant(tile)
	assert.Equal(t, before, snapshotOccupancy(g))
	assert.Equal(t, 1, g.RegisteredCount())
	assert.True(t, g.Consistent())
}

func TestRemoveReleasedOccupantClearsStaleEntry(t *testing.T) {
	g := NewGrid(3, 3, nil)
	tile := placeTile(t, g, 1, Red, 1, 2)

	tile.Release()
	assert.Same(t, tile, g.TileAt(1, 2), "release alone does not touch the grid")

	g.RemoveOccupant(tile)
	assert.Nil(t, g.TileAt(1, 2))
	assert.Equal(t, 0, g.RegisteredCount())
	assert.Equal(t, 0, g.OccupiedCount())
}

func TestRemoveUnregisteredIsNoop(t *testing.T) {
	g := NewGrid(2, 2, nil)
	placeTile(t, g, 1, Red, 0, 0)

	stranger := NewTile(9, Red)
	require.NoError(t, stranger.Occupy(g.CellAt(0, 0)))
	g.RemoveOccupant(stranger)
	g.RemoveOccupant(nil)

	assert.NotNil(t, g.TileAt(0, 0))
	assert.Equal(t, 1, g.RegisteredCount())
}

func TestTileOccupyTwiceRejected(t *testing.T) {
	g := NewGrid(2, 2, nil)
	tile := NewTile(1, Yellow)

	require.NoError(t, tile.Occupy(g.CellAt(0, 0)))
	err := tile.Occupy(g.CellAt(0, 1))
	assert.ErrorIs(t, err, ErrAlreadyPlaced)
	assert.Equal(t, At(0, 0), tile.Cell().Coord())

	assert.ErrorIs(t, NewTile(2, Red).Occupy(nil), ErrNilCell)
}

func TestTileAdjacency(t *testing.T) {
	g := NewGrid(3, 3, nil)
	center := placeTile(t, g, 1, Red, 1, 1)
	right := placeTile(t, g, 2, Red, 1, 2)
	diag := placeTile(t, g, 3, Red, 0, 0)
	below := placeTile(t, g, 4, Red, 2, 1)

	assert.True(t, center.IsAdjacent(right))
	assert.True(t, center.IsAdjacent(below))
	assert.False(t, center.IsAdjacent(diag))
	assert.False(t, center.IsAdjacent(center))
	assert.False(t, center.IsAdjacent(NewTile(5, Red)))
}

func TestClear(t *testing.T) {
	g := NewGrid(2, 2, nil)
	placeTile(t, g, 1, Red, 0, 0)
	placeTile(t, g, 2, Red, 1, 1)

	g.Clear()
	assert.Equal(t, 0, g.RegisteredCount())
	assert.Equal(t, 0, g.OccupiedCount())
}

func snapshotOccupancy(g *Grid) map[Coord]int {
	out := make(map[Coord]int)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			if tile := g.TileAt(r, c); tile != nil {
				out[At(r, c)] = tile.ID()
			}
		}
	}
	return out
}
