package gridgraph

import "errors"

var (
	// ErrInvalidSize indicates a non-positive grid dimension or a non-square map.
	ErrInvalidSize = errors.New("gridgraph: grid size must be positive")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrUnknownSymbol indicates Parse met a character it cannot map to a CellState.
	ErrUnknownSymbol = errors.New("gridgraph: unknown map symbol")
)
