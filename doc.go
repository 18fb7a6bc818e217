// Package stepviz turns classic algorithms into resumable step generators
// that a view can replay one frame at a time.
//
// What is in the box?
//
//	Every generator is an explicit state machine with Next() (Step, bool).
//	Each call performs one algorithmic action and returns a snapshot that
//	owns its data, so a caller may keep, compare or render any step later.
//
//		• Sorting:      bubble, merge (top-down) and quick (Lomuto) sort
//		• Pathfinding:  BFS, DFS and A* (Manhattan) on a 4-connected grid
//		• Maze:         recursive backtracking solver
//		• Linked list:  insert head/tail, delete and search on a singly list
//
// Why stepviz?
//
//   - Deterministic: no clock and no randomness during a run
//   - Self-contained steps: no aliasing between snapshots or with the input
//   - Explicit errors: malformed input is rejected before the first step
//
// Packages
//
//	snapshot/     Bar, Cell, Grid, step types and the Seq/Collect adapters
//	sorting/      bubble, merge and quick sort generators
//	gridgraph/    grid validation, neighbours, regions, editing, text layout
//	pathfinding/  BFS, DFS and A* generators
//	maze/         backtracking maze solver
//	linkedlist/   singly linked list with step-by-step operations
//	builder/      seeded random arrays, grids and the default list
//	driver/       registry, runs, sessions, playback interval and metrics
//	config/       viper configuration with STEPVIZ_* overrides
//	render/       terminal frames, algorithm table and run summary
//	cmd/stepviz/  the CLI: run, list, grid, config, version
//
// Quick example:
//
//	s, _ := pathfinding.NewBFS(grid, start, end)
//	for step := range snapshot.Seq(s.Next) {
//		draw(step.Grid)
//	}
//
//	go install github.com/katalvlaran/stepviz/cmd/stepviz@latest
//	stepviz run astar --speed 80
package stepviz
