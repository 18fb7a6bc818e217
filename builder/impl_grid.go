// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// impl_grid.go: RandomGrid(rows, cols, p) and its presets.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows×cols ≥ 2 (else ErrTooSmall).
//   • p ∈ [0,1] (else ErrInvalidProbability).
//   • Each cell becomes a wall with probability p, drawn in row-major order.
//   • (0,0) is then tagged start and (rows-1,cols-1) end, overriding walls.
//   • WithSolvable clears the fewest walls on a start→end route when end is
//     not already reachable from start.
//
// Complexity: O(rows×cols) time and space.

package builder

import (
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

// RandomGrid returns a rows×cols grid with random walls, start at the top
// left and end at the bottom right.
func RandomGrid(rows, cols int, p float64, opts ...BuilderOption) (snapshot.Grid, error) {
	if err := validateMin(MethodRandomGrid, "rows", rows, MinGridDim); err != nil {
		return nil, err
	}
	if err := validateMin(MethodRandomGrid, "cols", cols, MinGridDim); err != nil {
		return nil, err
	}
	if err := validateMin(MethodRandomGrid, "rows×cols", rows*cols, MinGridCells); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodRandomGrid, p); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	g := snapshot.NewGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cfg.rng.Float64() < p {
				g[r][c].Type = snapshot.CellWall
			}
		}
	}
	start, end := GridEndpoints(rows, cols)
	g.At(start).Type = snapshot.CellStart
	g.At(end).Type = snapshot.CellEnd

	if cfg.solvable && !gridgraph.Connected(g, start, end) {
		carved, _, err := gridgraph.Carve(g, start, end)
		if err != nil {
			return nil, err
		}
		g = carved
	}
	return g, nil
}

// GridEndpoints returns the start and end positions RandomGrid uses.
func GridEndpoints(rows, cols int) (start, end snapshot.Coord) {
	return snapshot.Coord{}, snapshot.Coord{Row: rows - 1, Col: cols - 1}
}

// PathfindingGrid is RandomGrid at PathfindingWallProbability.
func PathfindingGrid(rows, cols int, opts ...BuilderOption) (snapshot.Grid, error) {
	return RandomGrid(rows, cols, PathfindingWallProbability, opts...)
}

// MazeGrid is RandomGrid at MazeWallProbability.
func MazeGrid(rows, cols int, opts ...BuilderOption) (snapshot.Grid, error) {
	return RandomGrid(rows, cols, MazeWallProbability, opts...)
}
