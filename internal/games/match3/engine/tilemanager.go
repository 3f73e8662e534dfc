package engine

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// TileManager owns the live set of tiles on a grid. It is the only component
// that spawns or despawns tiles, so the live set and the grid's occupancy map
// move together.
type TileManager struct {
	grid    *board.Grid
	rnd     Random
	spawner Spawner
	palette []board.Category
	active  []*board.Tile
	logger  *log.Logger
}

// NewTileManager creates a manager for grid. An empty palette falls back to
// board.DefaultPalette.
func NewTileManager(grid *board.Grid, rnd Random, spawner Spawner, palette []board.Category, logger *log.Logger) *TileManager {
	if len(palette) == 0 {
		palette = board.DefaultPalette
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TileManager{
		grid:    grid,
		rnd:     rnd,
		spawner: spawner,
		palette: slices.Clone(palette),
		active:  make([]*board.Tile, 0, grid.Size()),
		logger:  logger,
	}
}

// Grid returns the managed grid.
func (m *TileManager) Grid() *board.Grid { return m.grid }

// Palette returns the categories random spawns draw from.
func (m *TileManager) Palette() []board.Category { return slices.Clone(m.palette) }

// ActiveTiles returns a copy of the live set, in spawn order.
func (m *TileManager) ActiveTiles() []*board.Tile {
	return slices.Clone(m.active)
}

// ActiveCount returns the size of the live set.
func (m *TileManager) ActiveCount() int { return len(m.active) }

// TileAt returns the tile registered at (row, col), or nil.
func (m *TileManager) TileAt(row, col int) *board.Tile {
	return m.grid.TileAt(row, col)
}

// FillGrid spawns random tiles into every empty cell, in row-major order.
func (m *TileManager) FillGrid() []*board.Tile {
	var spawned []*board.Tile
	for {
		cell, ok := m.grid.FindEmptyCell()
		if !ok {
			break
		}
		t := m.SpawnRandomAt(cell)
		if t == nil {
			// a failed spawn would leave the same cell empty forever
			break
		}
		spawned = append(spawned, t)
	}
	return spawned
}

// RandomCategory draws a category from the palette.
func (m *TileManager) RandomCategory() board.Category {
	return m.palette[m.rnd.IntRange(0, len(m.palette))]
}

// SpawnRandomAt spawns a tile with a random palette category at cell.
func (m *TileManager) SpawnRandomAt(cell *board.Cell) *board.Tile {
	return m.SpawnAt(cell, m.RandomCategory())
}

// SpawnAt spawns a tile of the given category, occupies cell and registers it.
// On any rejection the tile is handed back to the spawner and nil is returned.
func (m *TileManager) SpawnAt(cell *board.Cell, category board.Category) *board.Tile {
	if cell == nil {
		m.logger.Warn("spawn requested without a cell")
		return nil
	}
	t := m.spawner.SpawnAt(cell, category)
	if t == nil {
		m.logger.Error("spawner returned no tile", "cell", cell)
		return nil
	}
	if err := t.Occupy(cell); err != nil {
		m.logger.Error("spawned tile could not occupy cell", "cell", cell, "err", err)
		m.spawner.Despawn(t)
		return nil
	}
	if err := m.grid.AddOccupant(t); err != nil {
		t.Release()
		m.spawner.Despawn(t)
		return nil
	}
	m.active = append(m.active, t)
	return t
}

// DestroyTile unregisters the tile, drops it from the live set and despawns it.
func (m *TileManager) DestroyTile(t *board.Tile) {
	if t == nil {
		return
	}
	i := slices.Index(m.active, t)
	if i < 0 {
		m.logger.Warn("destroying tile that is not active", "tile", t)
		return
	}
	m.active = slices.Delete(m.active, i, i+1)

	if m.grid.IsRegistered(t) {
		m.grid.RemoveOccupant(t)
	}
	t.Release()
	m.spawner.Despawn(t)
}

// DestroyTiles destroys every tile in ts.
func (m *TileManager) DestroyTiles(ts []*board.Tile) {
	for _, t := range ts {
		m.DestroyTile(t)
	}
}

// DestroyAll tears the live set down, newest first.
func (m *TileManager) DestroyAll() {
	for i := len(m.active) - 1; i >= 0; i-- {
		t := m.active[i]
		if m.grid.IsRegistered(t) {
			m.grid.RemoveOccupant(t)
		}
		t.Release()
		m.spawner.Despawn(t)
	}
	m.active = m.active[:0]
}

// Consistency is a snapshot of the tile bookkeeping.
type Consistency struct {
	Active     int
	Placed     int
	Occupied   int
	Expected   int
	Duplicates map[board.Coord][]*board.Tile
}

// OK reports whether every count agrees and no cell is claimed twice.
func (c Consistency) OK() bool {
	return c.Active == c.Occupied &&
		c.Placed == c.Active &&
		c.Occupied == c.Expected &&
		len(c.Duplicates) == 0
}

// CheckConsistency compares the live set with the grid and logs any mismatch.
// Nothing is repaired.
func (m *TileManager) CheckConsistency() Consistency {
	c := Consistency{
		Active:   len(m.active),
		Occupied: m.grid.OccupiedCount(),
		Expected: m.grid.Size(),
	}

	byCell := make(map[board.Coord][]*board.Tile, len(m.active))
	for _, t := range m.active {
		if cell := t.Cell(); cell != nil {
			c.Placed++
			byCell[cell.Coord()] = append(byCell[cell.Coord()], t)
		}
	}
	for pos, ts := range byCell {
		if len(ts) > 1 {
			if c.Duplicates == nil {
				c.Duplicates = make(map[board.Coord][]*board.Tile)
			}
			c.Duplicates[pos] = ts
		}
	}

	if c.Active != c.Occupied {
		m.logger.Error("active tile count does not match occupancy", "active", c.Active, "occupied", c.Occupied)
	}
	if c.Placed != c.Expected {
		m.logger.Error("placed tile count does not match board size", "placed", c.Placed, "expected", c.Expected)
	}
	for pos, ts := range c.Duplicates {
		m.logger.Error("duplicate tile position", "pos", pos, "count", len(ts), "tiles", ts)
	}
	if c.OK() {
		m.logger.Debug("tile bookkeeping consistent", "active", c.Active)
	}
	return c
}
