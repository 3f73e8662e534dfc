package match3

import (
	"time"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// effectKind is the visual effect shown on a cell.
type effectKind uint8

const (
	effectSlide effectKind = iota
	effectPop
	effectVanish
)

type effect struct {
	kind     effectKind
	at       board.Coord
	category board.Category
	left     time.Duration
}

// animator receives engine notifications and keeps short-lived cell effects
// for the renderer. Effects never touch the board.
type animator struct {
	effects []effect
	vanish  time.Duration
	pop     time.Duration
}

var _ engine.AnimationSink = (*animator)(nil)

func newAnimator(t engine.Timing) *animator {
	return &animator{
		vanish: t.Destroy,
		pop:    t.Destroy + t.Gravity,
	}
}

func coordOf(p board.Position) board.Coord {
	return board.At(int(p.Y), int(p.X))
}

func (a *animator) add(e effect) {
	if e.left <= 0 {
		return
	}
	a.effects = append(a.effects, e)
}

func (a *animator) MovedTo(t *board.Tile, pos board.Position, d time.Duration) {
	a.add(effect{kind: effectSlide, at: coordOf(pos), category: t.Category(), left: d})
}

func (a *animator) Destroyed(t *board.Tile, pos board.Position) {
	a.add(effect{kind: effectVanish, at: coordOf(pos), category: t.Category(), left: a.vanish})
}

func (a *animator) Appeared(t *board.Tile, pos board.Position) {
	a.add(effect{kind: effectPop, at: coordOf(pos), category: t.Category(), left: a.pop})
}

// Advance ages every effect by dt and drops the finished ones.
func (a *animator) Advance(dt time.Duration) {
	kept := a.effects[:0]
	for _, e := range a.effects {
		e.left -= dt
		if e.left > 0 {
			kept = append(kept, e)
		}
	}
	clear(a.effects[len(kept):])
	a.effects = kept
}

// At returns the effect shown at c. A vanishing tile wins over whatever
// has already taken its place.
func (a *animator) At(c board.Coord) (effect, bool) {
	var found effect
	ok := false
	for _, e := range a.effects {
		if e.at != c {
			continue
		}
		if e.kind == effectVanish {
			return e, true
		}
		found, ok = e, true
	}
	return found, ok
}

// Active reports whether any effect is still running.
func (a *animator) Active() bool { return len(a.effects) > 0 }

// Clear drops every effect.
func (a *animator) Clear() { a.effects = a.effects[:0] }
