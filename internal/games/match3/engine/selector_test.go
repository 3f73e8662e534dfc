package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorDrag(t *testing.T) {
	g, _ := newBoard(t,
		"RGB",
		"YOP",
	)
	first, right, far, below := g.TileAt(0, 0), g.TileAt(0, 1), g.TileAt(0, 2), g.TileAt(1, 0)

	s := NewSelector(nil)
	s.StartDrag(first)
	assert.True(t, s.Dragging())

	s.UpdateDrag(far)
	assert.Nil(t, s.Last(), "non-adjacent tile is ignored")

	s.UpdateDrag(right)
	assert.Same(t, right, s.Last())

	s.UpdateDrag(first)
	assert.Nil(t, s.Last(), "returning to the first tile drops the partner")

	s.UpdateDrag(below)
	a, b, ok := s.EndDrag()
	assert.True(t, ok)
	assert.Same(t, first, a)
	assert.Same(t, below, b)
	assert.False(t, s.Dragging())
}

func TestSelectorEndWithoutPartner(t *testing.T) {
	g, _ := newBoard(t, "RG")
	s := NewSelector(nil)

	s.StartDrag(g.TileAt(0, 0))
	_, _, ok := s.EndDrag()
	assert.False(t, ok)

	_, _, ok = s.EndDrag()
	assert.False(t, ok, "ending twice emits nothing")
}

func TestSelectorIgnoresNilStart(t *testing.T) {
	g, _ := newBoard(t, "RG")
	s := NewSelector(nil)

	s.StartDrag(nil)
	assert.False(t, s.Dragging())

	s.UpdateDrag(g.TileAt(0, 1))
	assert.Nil(t, s.Last())
}

func TestSelectorCancel(t *testing.T) {
	g, _ := newBoard(t, "RG")
	s := NewSelector(nil)

	s.StartDrag(g.TileAt(0, 0))
	s.UpdateDrag(g.TileAt(0, 1))
	s.Cancel()

	_, _, ok := s.EndDrag()
	assert.False(t, ok)
	assert.Nil(t, s.First())
}
