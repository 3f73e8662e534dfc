package match3

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/games/match3/layouts"
)

func gridFromLayout(t *testing.T, id string) *board.Grid {
	t.Helper()
	lay, err := layouts.Builtin().LoadByID(id)
	if err != nil {
		t.Fatal(err)
	}
	g := board.NewGrid(lay.Rows(), lay.Columns(), nil)
	n := 0
	for r, row := range lay.Cells {
		for c, cat := range row {
			n++
			tile := board.NewTile(n, cat)
			if err := tile.Occupy(g.CellAt(r, c)); err != nil {
				t.Fatal(err)
			}
			if err := g.AddOccupant(tile); err != nil {
				t.Fatal(err)
			}
		}
	}
	return g
}

func TestBoardASCIIGolden(t *testing.T) {
	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	tests := []struct {
		name   string
		layout string
		marks  map[board.Coord]Mark
	}{
		{name: "deadlock", layout: "deadlock"},
		{
			name:   "quiet_marks",
			layout: "quiet",
			marks: map[board.Coord]Mark{
				board.At(0, 0): MarkCursor,
				board.At(1, 1): MarkSelected,
				board.At(0, 2): MarkHint,
				board.At(0, 3): MarkHint,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromLayout(t, tt.layout)
			gold.Assert(t, tt.name, []byte(BoardASCII(g, tt.marks)))
		})
	}
}

func TestBoardASCIIEmptyCells(t *testing.T) {
	g := gridFromLayout(t, "deadlock")
	g.RemoveOccupant(g.TileAt(1, 1))

	want := " R  G  R\n B  .  B\n R  G  R\n"
	if got := BoardASCII(g, nil); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestGameBoardGolden(t *testing.T) {
	g := newTestGame(t, New(), quietConfig)

	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	gold.Assert(t, "quiet_game", []byte(BoardASCII(g.Orchestrator().Grid(), g.marks())))
}
