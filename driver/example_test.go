package driver_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/driver"
	"github.com/katalvlaran/stepviz/linkedlist"
)

func ExampleAlgorithms() {
	for _, info := range driver.Algorithms() {
		fmt.Println(info.ID, info.Category)
	}
	// Output:
	// bubble-sort sorting
	// merge-sort sorting
	// quick-sort sorting
	// bfs pathfinding
	// dfs pathfinding
	// astar pathfinding
	// maze maze
	// linked-list data-structure
}

// ExampleCreate searches a list for 9 one step at a time.
func ExampleCreate() {
	run, err := driver.Create(driver.LinkedList, driver.Input{
		List:   linkedlist.New(3, 7, 2, 9, 5),
		ListOp: driver.ListOp{Kind: driver.ListSearch, Value: 9},
	})
	if err != nil {
		panic(err)
	}
	for step, ok := run.Advance(); ok; step, ok = run.Advance() {
		fmt.Println(step.Index, step.Kind(), step.List.Cursor)
	}
	fmt.Println(run.Outcome())
	// Output:
	// 0 traverse 0
	// 1 traverse 1
	// 2 traverse 2
	// 3 found 3
	// found
}

func ExampleInterval() {
	for _, speed := range []int{0, 50, 100} {
		fmt.Println(speed, driver.Interval(speed))
	}
	// Output:
	// 0 200ms
	// 50 105ms
	// 100 10ms
}
