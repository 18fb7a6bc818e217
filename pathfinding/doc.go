// Package pathfinding turns grid searches into resumable step generators.
//
// What
//
//   - NewBFS: breadth-first search with a FIFO frontier. Finds a shortest
//     start→end path by edge count.
//   - NewDFS: depth-first search with a LIFO frontier. Finds some path, with
//     no optimality guarantee.
//   - NewAStar: A* with the Manhattan heuristic. Finds a shortest path and
//     attaches g/h/f costs to open and closed cells.
//
// Every generator is driven with Next. Each call performs exactly one
// expansion and returns a snapshot.GridStep that owns all of its data:
//
//   - KindVisit: one frontier entry was taken. Visited lists every cell
//     marked so far in marking order (the closed set for A*).
//   - KindFound: emitted once, right after the visit step of the end cell.
//     Path is the start→end path, both ends included.
//
// When the end is unreachable the run finishes after the frontier drains,
// without a KindFound step.
//
// Determinism
//
//	Neighbours are expanded right, down, left, up (gridgraph.Directions).
//	BFS and DFS mark a cell visited when it is pushed, never twice. A*
//	selects the first open entry with the smallest f in insertion order;
//	updating an open entry keeps its position. Two runs over the same input
//	are therefore identical.
//
// Complexity (N = rows×cols)
//
//   - BFS, DFS: O(N) steps, O(N) per step for the snapshot copy.
//   - A*:       O(N) steps, O(N) per step for selection and the copy.
//   - Memory:   O(N) working state plus the caller's retained steps.
//
// Usage
//
//	s, err := pathfinding.NewBFS(grid, start, end)
//	if err != nil {
//		// errors.Is(err, snapshot.ErrInvalidInput)
//	}
//	for step := range snapshot.Seq(s.Next) {
//		render(step)
//	}
//
// Errors
//
//   - Constructors reject empty or ragged grids, cells whose coordinates do
//     not match their position, and endpoints that are out of bounds or on a
//     wall. The error wraps a *snapshot.InvalidInputError.
package pathfinding
