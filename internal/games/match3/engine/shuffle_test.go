package engine

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

type identity struct {
	id  int
	cat board.Category
}

func identities(tm *TileManager) []identity {
	var out []identity
	for _, t := range tm.ActiveTiles() {
		out = append(out, identity{id: t.ID(), cat: t.Category()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func TestShufflePreservesTiles(t *testing.T) {
	g, tm := newBoard(t,
		"RGBY",
		"OPRG",
		"BYOP",
	)
	before := identities(tm)
	sink := &recordingSink{}

	res := NewShuffle(tm, NewRandom(42), sink, DefaultTiming(), nil).Run()

	assert.Equal(t, before, identities(tm))
	assert.Len(t, res.Tiles, 12)
	assert.Equal(t, DefaultTiming().Shuffle, res.Wait)
	assert.Equal(t, 12, g.OccupiedCount())
	assert.Equal(t, 12, sink.count("moved"))
	requireConsistent(t, tm)
}

func TestShuffleUsesKeyOrder(t *testing.T) {
	g, tm := newBoard(t, "RGB")
	r, gr, b := g.TileAt(0, 0), g.TileAt(0, 1), g.TileAt(0, 2)

	// keys 0.9, 0.1, 0.5 sort the cells as (0,1), (0,2), (0,0)
	rnd := &fixedRandom{floats: []float64{0.9, 0.1, 0.5}}
	NewShuffle(tm, rnd, nil, Timing{}, nil).Run()

	assert.Same(t, r, g.TileAt(0, 1))
	assert.Same(t, gr, g.TileAt(0, 2))
	assert.Same(t, b, g.TileAt(0, 0))
	requireConsistent(t, tm)
}

func TestShuffleEmptyBoard(t *testing.T) {
	_, tm := newBoard(t, "...")
	res := NewShuffle(tm, NewRandom(1), nil, DefaultTiming(), nil).Run()
	assert.Empty(t, res.Tiles)
	assert.Zero(t, res.Wait)
}

func TestShufflePartialBoardKeepsCells(t *testing.T) {
	g, tm := newBoard(t,
		"R.G",
		".B.",
	)
	occupied := map[board.Coord]bool{}
	for _, tile := range tm.ActiveTiles() {
		occupied[tile.Cell().Coord()] = true
	}

	NewShuffle(tm, NewRandom(7), nil, Timing{}, nil).Run()

	for _, tile := range tm.ActiveTiles() {
		require.NotNil(t, tile.Cell())
		assert.True(t, occupied[tile.Cell().Coord()], "tile moved to a cell that was empty")
	}
	assert.Equal(t, 3, g.OccupiedCount())
	requireConsistent(t, tm)
}
