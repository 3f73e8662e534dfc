package board

import "errors"

// Sentinel errors returned by Grid and Tile operations.
// None of them is fatal: the rejected operation leaves state untouched.
var (
	ErrOutOfBounds       = errors.New("board: position out of bounds")
	ErrNilOccupant       = errors.New("board: occupant is nil")
	ErrNilCell           = errors.New("board: cell is nil")
	ErrAlreadyRegistered = errors.New("board: occupant already registered")
	ErrUnplaced          = errors.New("board: occupant has no cell")
	ErrForeignCell       = errors.New("board: cell does not belong to this grid")
	ErrCellOccupied      = errors.New("board: cell already occupied")
	ErrAlreadyPlaced     = errors.New("board: occupant already placed")
)
