// Package snapshot defines the value types every stepviz generator emits.
//
// What
//
//   - Bar / BarState:     one array element during a sorting run.
//   - Cell / CellType:    one grid cell during a pathfinding or maze run.
//   - Grid, Coord, Cost:  rectangular cell matrix, identity keys, A* costs.
//   - ArrayStep, GridStep, ListStep: complete snapshots plus metadata.
//   - StepKind:           what the algorithm did to produce a step.
//
// Contract
//
//   - Steps are full snapshots, never diffs. Every slice reachable from a
//     yielded step is a fresh copy; mutating it cannot affect the generator.
//   - State and Type tags are presentational. No generator consults them when
//     comparing, partitioning or choosing a traversal order.
//   - Unused index metadata is reported as NoIndex.
//
// Stepping
//
//	Generators expose Next() (S, bool). Seq adapts such a method into an
//	iter.Seq so a run can be consumed with range:
//
//		for step := range snapshot.Seq(gen.Next) {
//		    render(step)
//		}
//
// Errors
//
//   - ErrInvalidInput is the sentinel behind every *InvalidInputError returned
//     by generator constructors. Construction failures happen before the
//     first step; a generator that was built never fails mid-run.
package snapshot
