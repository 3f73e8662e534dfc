package engine

import "github.com/vovakirdan/tui-match3/internal/games/match3/board"

// Spawner supplies and reclaims tiles. Spawned tiles are returned unplaced;
// the caller occupies the cell and registers the tile with the grid.
type Spawner interface {
	SpawnAt(cell *board.Cell, category board.Category) *board.Tile
	Despawn(t *board.Tile)
}

// TilePool is the default Spawner. It recycles despawned tiles and hands out
// a fresh identity on every spawn.
type TilePool struct {
	free   []*board.Tile
	nextID int

	spawned   int
	despawned int
}

// NewTilePool creates an empty pool.
func NewTilePool() *TilePool {
	return &TilePool{nextID: 1}
}

// SpawnAt returns a tile of the given category. The cell is not occupied.
func (p *TilePool) SpawnAt(_ *board.Cell, category board.Category) *board.Tile {
	id := p.nextID
	p.nextID++
	p.spawned++

	if n := len(p.free); n > 0 {
		t := p.free[n-1]
		p.free = p.free[:n-1]
		t.Reset(id, category)
		return t
	}
	return board.NewTile(id, category)
}

// Despawn returns the tile to the pool.
func (p *TilePool) Despawn(t *board.Tile) {
	if t == nil {
		return
	}
	t.Release()
	p.despawned++
	p.free = append(p.free, t)
}

// Live returns the number of tiles spawned and not yet despawned.
func (p *TilePool) Live() int {
	return p.spawned - p.despawned
}

// Free returns the number of tiles waiting for reuse.
func (p *TilePool) Free() int {
	return len(p.free)
}
