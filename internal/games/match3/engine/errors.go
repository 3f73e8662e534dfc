package engine

import "errors"

var (
	// ErrBusy is returned for a selection made while an operation is running.
	ErrBusy = errors.New("engine: board is busy")
	// ErrNotAdjacent is returned when the selected tiles are not orthogonal neighbours.
	ErrNotAdjacent = errors.New("engine: tiles are not adjacent")
	// ErrNilTile is returned when a selection names an empty or missing cell.
	ErrNilTile = errors.New("engine: tile is nil")
)
