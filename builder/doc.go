// Package builder provides the random instance builders that feed the step
// generators: arrays for the sorting algorithms, grids for pathfinding and
// maze solving, and the initial linked list.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds the RNG and the solvability policy.
//   - Constructors:
//     – RandomArray:     values uniform in [1,max].
//     – RandomGrid:      walls with probability p, start top-left, end bottom-right.
//     – PathfindingGrid: RandomGrid at PathfindingWallProbability.
//     – MazeGrid:        RandomGrid at MazeWallProbability.
//     – DefaultList:     the list [3 7 2 9 5].
//   - Validation helpers:
//     – validateMin:         ensure integer ≥ minimum.
//     – validateProbability: ensure p ∈ [0.0,1.0].
//
// Guarantees:
//
//   - Determinism: without WithSeed/WithRand a fixed default seed is used, so
//     the same call always yields the same instance.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (builderErrorf) wrapping the sentinels
//     ErrTooSmall and ErrInvalidProbability.
//   - O(n) for arrays and lists, O(rows×cols) for grids (plus O(rows×cols)
//     for WithSolvable).
package builder
