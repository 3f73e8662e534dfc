package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// newBoard builds a grid from glyph rows. '.' leaves the cell empty.
func newBoard(t *testing.T, rows ...string) (*board.Grid, *TileManager) {
	t.Helper()
	require.NotEmpty(t, rows)
	g := board.NewGrid(len(rows), len(rows[0]), nil)
	tm := NewTileManager(g, NewRandom(1), NewTilePool(), nil, nil)
	for r, line := range rows {
		require.Len(t, line, g.Columns(), "row %d", r)
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			cat, ok := board.CategoryFromGlyph(ch)
			require.True(t, ok, "glyph %q", ch)
			require.NotNil(t, tm.SpawnAt(g.CellAt(r, c), cat))
		}
	}
	return g, tm
}

// glyphs renders the grid back into glyph rows.
func glyphs(g *board.Grid) []string {
	out := make([]string, g.Rows())
	for r := range out {
		line := make([]rune, g.Columns())
		for c := range line {
			if t := g.TileAt(r, c); t != nil {
				line[c] = t.Category().Glyph()
			} else {
				line[c] = '.'
			}
		}
		out[r] = string(line)
	}
	return out
}

func parseLayout(t *testing.T, rows ...string) [][]board.Category {
	t.Helper()
	out := make([][]board.Category, len(rows))
	for r, line := range rows {
		for _, ch := range line {
			cat, ok := board.CategoryFromGlyph(ch)
			require.True(t, ok, "glyph %q", ch)
			out[r] = append(out[r], cat)
		}
	}
	return out
}

func requireConsistent(t *testing.T, tm *TileManager) {
	t.Helper()
	g := tm.Grid()
	require.True(t, g.Consistent(), "grid occupancy is inconsistent")
	require.Equal(t, g.RegisteredCount(), g.OccupiedCount())
	require.Equal(t, tm.ActiveCount(), g.OccupiedCount())
}

type sinkEvent struct {
	kind string
	id   int
	pos  board.Position
}

type recordingSink struct {
	events []sinkEvent
}

func (s *recordingSink) MovedTo(t *board.Tile, pos board.Position, _ time.Duration) {
	s.events = append(s.events, sinkEvent{kind: "moved", id: t.ID(), pos: pos})
}

func (s *recordingSink) Destroyed(t *board.Tile, pos board.Position) {
	s.events = append(s.events, sinkEvent{kind: "destroyed", id: t.ID(), pos: pos})
}

func (s *recordingSink) Appeared(t *board.Tile, pos board.Position) {
	s.events = append(s.events, sinkEvent{kind: "appeared", id: t.ID(), pos: pos})
}

func (s *recordingSink) count(kind string) int {
	n := 0
	for _, e := range s.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

// fixedRandom replays a float sequence and always picks the first palette entry.
type fixedRandom struct {
	floats []float64
	i      int
}

func (r *fixedRandom) Float() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	f := r.floats[r.i%len(r.floats)]
	r.i++
	return f
}

func (r *fixedRandom) IntRange(min, _ int) int { return min }

// seqRandom picks palette indices from a fixed script. Float is always 0,
// so a shuffle keeps the collected order.
type seqRandom struct {
	picks []int
	i     int
}

func (r *seqRandom) Float() float64 { return 0 }

func (r *seqRandom) IntRange(min, max int) int {
	if r.i >= len(r.picks) {
		return min
	}
	v := min + r.picks[r.i]
	r.i++
	if v >= max {
		return min
	}
	return v
}
