package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadGlyph indicates a character Parse does not understand.
	ErrBadGlyph = errors.New("gridgraph: unknown cell glyph")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrNotEndpoint indicates a cell type other than start or end.
	ErrNotEndpoint = errors.New("gridgraph: cell type is not an endpoint")
	// ErrBlocked indicates a target cell that is a wall or the other endpoint.
	ErrBlocked = errors.New("gridgraph: target cell is blocked")
)
