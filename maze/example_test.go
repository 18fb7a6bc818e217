package maze_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/maze"
	"github.com/katalvlaran/stepviz/snapshot"
)

// ExampleNewSolver prints the recursion as it enters and abandons cells.
func ExampleNewSolver() {
	g, _ := gridgraph.Parse(
		"S..",
		"#.#",
		"..E",
	)
	start, end := gridgraph.Locate(g)
	s, _ := maze.NewSolver(g, start, end)
	for step := range snapshot.Seq(s.Next) {
		fmt.Printf("%*s%s %v\n", 2*step.Depth, "", step.Kind, step.Current)
	}
	fmt.Println("solved:", s.Solved())
	// Output:
	// explore 0,0
	//   explore 0,1
	//     explore 0,2
	//     backtrack 0,2
	//     explore 1,1
	//       explore 2,1
	//         found 2,2
	// solved: true
}
