package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// RefillResult describes one refill pass.
// Removed tiles have already been despawned; their pointers may be reused by
// the spawns of the same pass.
type RefillResult struct {
	Removed []*board.Tile
	Moved   []*board.Tile
	Spawned []*board.Tile
	Wait    time.Duration
}

// Refill removes matched tiles, lets the survivors fall and spawns new tiles
// into the gaps left at the top of each column.
type Refill struct {
	grid   *board.Grid
	tiles  *TileManager
	sink   AnimationSink
	timing Timing
	logger *log.Logger
}

// NewRefill creates a refill engine. A nil sink discards notifications.
func NewRefill(tiles *TileManager, sink AnimationSink, timing Timing, logger *log.Logger) *Refill {
	if sink == nil {
		sink = NopSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Refill{
		grid:   tiles.Grid(),
		tiles:  tiles,
		sink:   sink,
		timing: timing,
		logger: logger,
	}
}

// Run applies the whole refill to the board before returning.
func (r *Refill) Run(matched []*board.Tile) RefillResult {
	var res RefillResult

	var from []board.Position
	for _, t := range matched {
		if t == nil || !r.grid.IsRegistered(t) {
			continue
		}
		var pos board.Position
		if cell := t.Cell(); cell != nil {
			pos = cell.Position()
		}
		from = append(from, pos)
		t.Release()
		r.grid.RemoveOccupant(t)
		res.Removed = append(res.Removed, t)
	}
	for i, t := range res.Removed {
		r.sink.Destroyed(t, from[i])
	}
	r.tiles.DestroyTiles(res.Removed)

	for col := 0; col < r.grid.Columns(); col++ {
		r.processColumn(col, &res)
	}

	for _, t := range res.Moved {
		if cell := t.Cell(); cell != nil {
			r.sink.MovedTo(t, cell.Position(), r.timing.Gravity)
		}
	}
	for _, t := range res.Spawned {
		if cell := t.Cell(); cell != nil {
			r.sink.Appeared(t, cell.Position())
		}
	}

	res.Wait = r.timing.refill(len(res.Moved), len(res.Spawned))
	r.logger.Debug("refill applied",
		"removed", len(res.Removed), "moved", len(res.Moved), "spawned", len(res.Spawned))
	return res
}

func (r *Refill) processColumn(col int, res *RefillResult) {
	rows := r.grid.Rows()
	write := rows - 1

	for read := rows - 1; read >= 0; read-- {
		t := r.grid.TileAt(read, col)
		if t == nil {
			continue
		}
		if read != write {
			r.fall(t, write, col, res)
		}
		write--
	}

	for row := write; row >= 0; row-- {
		cell := r.grid.CellAt(row, col)
		if cell == nil {
			continue
		}
		if ghost := r.grid.OccupantAt(cell); ghost != nil {
			r.logger.Error("cell above survivors still occupied", "cell", cell, "occupant", ghost)
			r.evict(ghost)
		}
		if t := r.tiles.SpawnRandomAt(cell); t != nil {
			res.Spawned = append(res.Spawned, t)
		}
	}
}

func (r *Refill) fall(t *board.Tile, row, col int, res *RefillResult) {
	t.Release()
	r.grid.RemoveOccupant(t)

	target := r.grid.CellAt(row, col)
	if target == nil {
		r.tiles.DestroyTile(t)
		return
	}
	if err := t.Occupy(target); err != nil {
		r.logger.Error("falling tile could not occupy cell", "tile", t, "err", err)
		r.tiles.DestroyTile(t)
		return
	}
	if err := r.grid.AddOccupant(t); err != nil {
		r.tiles.DestroyTile(t)
		return
	}
	res.Moved = append(res.Moved, t)
}

// evict clears an occupant the column scan did not account for, in favour of
// the tile about to be spawned there.
func (r *Refill) evict(o board.Occupant) {
	if t, ok := o.(*board.Tile); ok {
		r.tiles.DestroyTile(t)
		if !r.grid.IsRegistered(t) {
			return
		}
	}
	o.Release()
	r.grid.RemoveOccupant(o)
}
