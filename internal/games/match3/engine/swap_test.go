package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

func TestSwapIsSelfInverse(t *testing.T) {
	g, tm := newBoard(t,
		"RG",
		"BY",
	)
	a, b := g.TileAt(0, 0), g.TileAt(0, 1)
	ca, cb := a.Cell(), b.Cell()
	s := NewSwap(g, nil, DefaultTiming(), nil)

	wait, err := s.Run(a, b)
	require.NoError(t, err)
	assert.Equal(t, DefaultTiming().Swap, wait)
	assert.Same(t, cb, a.Cell())
	assert.Same(t, ca, b.Cell())
	assert.Same(t, a, g.TileAt(0, 1))
	requireConsistent(t, tm)

	_, err = s.Run(a, b)
	require.NoError(t, err)
	assert.Same(t, ca, a.Cell())
	assert.Same(t, cb, b.Cell())
	assert.Equal(t, []string{"RG", "BY"}, glyphs(g))
	requireConsistent(t, tm)
}

func TestSwapNotifiesSink(t *testing.T) {
	g, _ := newBoard(t, "RG")
	sink := &recordingSink{}
	_, err := NewSwap(g, sink, Timing{}, nil).Run(g.TileAt(0, 0), g.TileAt(0, 1))
	require.NoError(t, err)

	require.Len(t, sink.events, 2)
	assert.Equal(t, board.Position{X: 1, Y: 0}, sink.events[0].pos)
	assert.Equal(t, board.Position{X: 0, Y: 0}, sink.events[1].pos)
}

func TestSwapRejectsBadInput(t *testing.T) {
	g, _ := newBoard(t, "RG")
	s := NewSwap(g, nil, Timing{}, nil)

	_, err := s.Run(nil, g.TileAt(0, 0))
	assert.ErrorIs(t, err, ErrNilTile)

	_, err = s.Run(g.TileAt(0, 0), board.NewTile(50, board.Blue))
	assert.ErrorIs(t, err, board.ErrUnplaced)
	assert.Equal(t, []string{"RG"}, glyphs(g))
}
