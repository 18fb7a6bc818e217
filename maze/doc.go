// Package maze solves grid mazes by recursive backtracking and exposes the
// solver as a resumable step generator.
//
// The recursion lives on an explicit frame stack, so a solve of any depth
// suspends after each step and never grows the goroutine stack.
//
// Steps:
//
//   - KindExplore: a cell was entered. Current is tagged current, the live
//     path path, and every other entered cell visited.
//   - KindBacktrack: all four directions of a cell failed. The cell is tagged
//     backtracked and removed from the path.
//   - KindFound: the end was reached. Path ends with the end cell and the run
//     is complete.
//
// WithBacktracking(false) suppresses the backtrack steps; the solver still
// unwinds, the run just shows less of it.
//
// Depth is the recursion depth of Current (0 for the start). An unsolvable
// maze finishes with the backtrack step of the start and no KindFound step.
//
// Complexity: O(N) frames, each cell entered at most once, O(N) per step for
// the snapshot copy (N = rows×cols).
package maze
