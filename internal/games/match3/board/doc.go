// Package board holds the authoritative match-3 board state: the fixed cell
// matrix, the tiles placed on it and the occupancy map tying the two together.
//
// A Grid never moves tiles on its own. Engines release a tile, remove it from
// the grid, occupy the target cell and add it back, in that order. The grid only
// enforces that a cell maps to at most one occupant and that an occupant is
// registered exactly where its own cell reference points.
package board
