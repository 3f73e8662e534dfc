package engine

import (
	"time"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// AnimationSink receives presentation notifications for tiles touched by the
// engines. It has no authority over board state; every notification is sent
// after the corresponding mutation has been applied.
type AnimationSink interface {
	// MovedTo reports that the tile now sits at pos and should glide there over d.
	MovedTo(t *board.Tile, pos board.Position, d time.Duration)
	// Destroyed reports that the tile left the board from pos.
	Destroyed(t *board.Tile, pos board.Position)
	// Appeared reports that a freshly spawned tile should drop in at pos.
	Appeared(t *board.Tile, pos board.Position)
}

// NopSink discards all notifications.
type NopSink struct{}

// MovedTo does nothing.
func (NopSink) MovedTo(*board.Tile, board.Position, time.Duration) {}

// Destroyed does nothing.
func (NopSink) Destroyed(*board.Tile, board.Position) {}

// Appeared does nothing.
func (NopSink) Appeared(*board.Tile, board.Position) {}
