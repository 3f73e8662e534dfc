package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

func ids(ts []*board.Tile) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = t.ID()
	}
	return out
}

func TestFindMatchFiveRun(t *testing.T) {
	g, _ := newBoard(t, ".RRRRR.")
	found, tiles := NewDetector(g).FindMatch()

	require.True(t, found)
	assert.Len(t, tiles, 5)
	for _, tile := range tiles {
		assert.Equal(t, board.Red, tile.Category())
	}
}

func TestFindMatchTwoAdjacentRuns(t *testing.T) {
	g, _ := newBoard(t, "RRRGGG")
	found, tiles := NewDetector(g).FindMatch()

	require.True(t, found)
	assert.Len(t, tiles, 6)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, ids(tiles))
}

func TestFindMatchCrossCountsIntersectionOnce(t *testing.T) {
	g, _ := newBoard(t,
		"GRG",
		"RRR",
		"YRY",
	)
	found, tiles := NewDetector(g).FindMatch()

	require.True(t, found)
	assert.Len(t, tiles, 5)
	seen := map[*board.Tile]bool{}
	for _, tile := range tiles {
		assert.False(t, seen[tile], "duplicate %v", tile)
		seen[tile] = true
	}
}

func TestFindMatchNoRun(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"gap breaks run", []string{"RR.R"}},
		{"pair only", []string{"RRGG"}},
		{"wildcard does not extend run", []string{"RR*R"}},
		{"empty board", []string{"...", "..."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newBoard(t, tt.rows...)
			found, tiles := NewDetector(g).FindMatch()
			assert.False(t, found)
			assert.Empty(t, tiles)
		})
	}
}

func TestFindMatchVertical(t *testing.T) {
	g, _ := newBoard(t,
		"RG",
		"BG",
		"RG",
		"BY",
	)
	found, tiles := NewDetector(g).FindMatch()
	require.True(t, found)
	assert.Len(t, tiles, 3)
	for _, tile := range tiles {
		assert.Equal(t, 1, tile.Cell().Column())
	}
}

func TestHasPossibleMovesFlips(t *testing.T) {
	g, tm := newBoard(t,
		"RGR",
		"BYB",
		"RGR",
	)
	d := NewDetector(g)
	assert.False(t, d.HasPossibleMoves())

	tm.TileAt(1, 1).SetCategory(board.Red)
	found, _ := d.FindMatch()
	require.False(t, found, "board must not already contain a run")
	assert.True(t, d.HasPossibleMoves())

	move, ok := d.FindPossibleMove()
	require.True(t, ok)
	assert.Equal(t, Move{A: board.At(0, 1), B: board.At(1, 1)}, move)
}

func TestHasPossibleMovesSingleRow(t *testing.T) {
	g, tm := newBoard(t, "RGRB")
	d := NewDetector(g)
	assert.False(t, d.HasPossibleMoves())

	tm.TileAt(0, 3).SetCategory(board.Red)
	assert.True(t, d.HasPossibleMoves())
}

func TestPossibleMoveSearchRestoresCategories(t *testing.T) {
	g, _ := newBoard(t,
		"RGBY",
		"BRYG",
		"YRGB",
		"GBRY",
	)
	before := glyphs(g)

	d := NewDetector(g)
	require.True(t, d.HasPossibleMoves())
	assert.Equal(t, before, glyphs(g))

	d.HasPossibleMoves()
	assert.Equal(t, before, glyphs(g))
}

func TestPossibleMovesSkipsEmptyCells(t *testing.T) {
	g, _ := newBoard(t,
		"R.R",
		"...",
	)
	assert.False(t, NewDetector(g).HasPossibleMoves())
}
