// Package gridgraph treats a snapshot.Grid as an implicit graph of open cells
// and provides the grid model shared by the search and maze generators.
//
// What:
//
//   - Validate checks a grid and its endpoints before a generator accepts it.
//   - Locate finds the start and end tags, Normalize builds a clean working copy.
//   - Neighbors yields the fixed 4-neighbourhood (right, down, left, up).
//   - Manhattan is the A* heuristic.
//   - Region and Regions find the open cells reachable from a cell, or all
//     connected open areas of a grid.
//   - Bridge finds the path between two cells that crosses the fewest walls
//     (0-1 BFS), used to carve solvable instances.
//   - Parse and Format convert grids to and from a compact text layout
//     ('.' empty, '#' wall, 'S' start, 'E' end).
//   - Paint and MoveEndpoint are the copy-on-write editing operations of an
//     interactive grid: a wall brush/eraser and endpoint dragging.
//
// Why:
//
//   - Every grid generator needs the same validation and the same neighbour
//     order; keeping them here makes runs comparable across algorithms.
//   - Editing never mutates the caller's grid, so a grid held by a running
//     generator is never disturbed.
//
// Complexity:
//
//   - Validate, Locate, Normalize: O(R×C) time, Normalize O(R×C) memory.
//   - Region, Regions: O(R×C×4) time, O(R×C) memory.
//   - Bridge: O(R×C×4) time, O(R×C) memory.
//   - Paint, MoveEndpoint: O(R×C) for the copy.
//
// Errors:
//
//   - Validate returns a *snapshot.InvalidInputError (errors.Is
//     snapshot.ErrInvalidInput).
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadGlyph: Parse met an unknown character.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrNotEndpoint: MoveEndpoint was asked to move a non-endpoint type.
//   - ErrBlocked: the target cell is a wall or the opposite endpoint.
package gridgraph
