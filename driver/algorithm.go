package driver

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned for an id that is not registered.
var ErrUnknownAlgorithm = errors.New("driver: unknown algorithm")

// Algorithm identifies a runnable algorithm.
type Algorithm string

const (
	BubbleSort Algorithm = "bubble-sort"
	MergeSort  Algorithm = "merge-sort"
	QuickSort  Algorithm = "quick-sort"
	BFS        Algorithm = "bfs"
	DFS        Algorithm = "dfs"
	AStar      Algorithm = "astar"
	Maze       Algorithm = "maze"
	LinkedList Algorithm = "linked-list"
)

// Category groups algorithms by the kind of instance they run on.
type Category string

const (
	CategorySorting     Category = "sorting"
	CategoryPathfinding Category = "pathfinding"
	CategoryMaze        Category = "maze"
	CategoryData        Category = "data-structure"
)

// Info describes an algorithm for display.
type Info struct {
	ID          Algorithm
	Name        string
	Category    Category
	Time        string
	Space       string
	Description string
}

// registry is ordered by category, then by the order the algorithms are
// offered in a selector.
var registry = []Info{
	{
		ID: BubbleSort, Name: "Bubble Sort", Category: CategorySorting,
		Time: "O(N^2)", Space: "O(1)",
		Description: "Repeatedly compares adjacent elements and swaps them until the array is sorted.",
	},
	{
		ID: MergeSort, Name: "Merge Sort", Category: CategorySorting,
		Time: "O(N log N)", Space: "O(N)",
		Description: "Divide and conquer: splits the array, sorts both halves recursively, then merges them.",
	},
	{
		ID: QuickSort, Name: "Quick Sort", Category: CategorySorting,
		Time: "O(N log N) avg", Space: "O(log N)",
		Description: "Picks the last element as pivot, partitions around it, then sorts both sides.",
	},
	{
		ID: BFS, Name: "Breadth-First Search", Category: CategoryPathfinding,
		Time: "O(V + E)", Space: "O(V)",
		Description: "Explores level by level, guaranteeing a shortest path.",
	},
	{
		ID: DFS, Name: "Depth-First Search", Category: CategoryPathfinding,
		Time: "O(V + E)", Space: "O(V)",
		Description: "Explores as deep as possible before backtracking.",
	},
	{
		ID: AStar, Name: "A* Search", Category: CategoryPathfinding,
		Time: "O(V^2)", Space: "O(V)",
		Description: "Expands the open cell with the lowest g + Manhattan distance, guaranteeing a shortest path.",
	},
	{
		ID: Maze, Name: "Maze Solver", Category: CategoryMaze,
		Time: "O(V + E)", Space: "O(V)",
		Description: "Recursive backtracking: walks forward until stuck, then retreats to the last open branch.",
	},
	{
		ID: LinkedList, Name: "Singly Linked List", Category: CategoryData,
		Time: "O(1) insert head, O(N) tail/delete/search", Space: "O(N)",
		Description: "Nodes holding a value and a next pointer; tail insert, delete and search walk from the head.",
	},
}

// Algorithms returns the registry in display order.
func Algorithms() []Info {
	return append([]Info(nil), registry...)
}

// Lookup returns the registry entry for id.
func Lookup(id string) (Info, error) {
	for _, info := range registry {
		if string(info.ID) == id {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
}

// Info returns the registry entry of a.
func (a Algorithm) Info() (Info, bool) {
	info, err := Lookup(string(a))
	return info, err == nil
}

// Category returns the category of a, or "" when a is not registered.
func (a Algorithm) Category() Category {
	info, _ := a.Info()
	return info.Category
}
