package pathfinding_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/pathfinding"
	"github.com/katalvlaran/stepviz/snapshot"
)

// ExampleNewBFS walks a small grid one step at a time.
func ExampleNewBFS() {
	g, _ := gridgraph.Parse(
		"S.#",
		"..#",
		"#.E",
	)
	start, end := gridgraph.Locate(g)
	s, _ := pathfinding.NewBFS(g, start, end)
	for step := range snapshot.Seq(s.Next) {
		fmt.Printf("%-5s current=%v visited=%d\n", step.Kind, step.Current, len(step.Visited))
		if step.HasPath() {
			fmt.Println("path:", step.Path)
		}
	}
	// Output:
	// visit current=0,0 visited=1
	// visit current=0,1 visited=3
	// visit current=1,0 visited=4
	// visit current=1,1 visited=4
	// visit current=2,1 visited=5
	// visit current=2,2 visited=6
	// found current=2,2 visited=6
	// path: [0,0 0,1 1,1 2,1 2,2]
}

// ExampleNewAStar prints the f costs A* attaches after closing two cells.
func ExampleNewAStar() {
	g := snapshot.NewGrid(2, 3)
	a, _ := pathfinding.NewAStar(g, snapshot.Coord{}, snapshot.Coord{Row: 1, Col: 2})
	a.Next()
	step, _ := a.Next()
	for _, row := range step.Grid {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell.Type.String()
			if cell.Cost != nil {
				cells[i] += fmt.Sprintf(":%d", cell.Cost.F)
			}
		}
		fmt.Println(strings.Join(cells, " "))
	}
	// Output:
	// start:3 closed:3 empty
	// open:3 empty end
}
