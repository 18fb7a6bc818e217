package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

// ExampleRegions lists the open areas of a small grid.
func ExampleRegions() {
	g, _ := gridgraph.Parse(
		"..#.",
		"###.",
		".#..",
	)
	for i, comp := range gridgraph.Regions(g) {
		fmt.Printf("area %d:", i)
		for _, c := range comp {
			fmt.Printf(" (%v)", c)
		}
		fmt.Println()
	}
	// Output:
	// area 0: (0,0) (0,1)
	// area 1: (0,3) (1,3) (2,3) (2,2)
	// area 2: (2,0)
}

// ExampleCarve opens the cheapest route to an enclosed end.
func ExampleCarve() {
	g, _ := gridgraph.Parse(
		"S.#.",
		"..#.",
		"###E",
	)
	start, end := gridgraph.Locate(g)
	out, removed, _ := gridgraph.Carve(g, start, end)
	fmt.Println("walls removed:", removed)
	fmt.Println(gridgraph.Format(out))
	// Output:
	// walls removed: 1
	// S.#.
	// ....
	// ###E
}

// ExampleMoveEndpoint drags the start marker.
func ExampleMoveEndpoint() {
	g, _ := gridgraph.Parse("S..", "..E")
	out, err := gridgraph.MoveEndpoint(g, snapshot.Coord{Row: 1, Col: 0}, snapshot.CellStart)
	fmt.Println(err)
	fmt.Println(gridgraph.Format(out))
	// Output:
	// <nil>
	// ...
	// S.E
}
