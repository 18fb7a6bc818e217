package snapshot

import (
	"fmt"
	"iter"
)

// StepKind names the algorithmic event a step records.
type StepKind uint8

const (
	// KindDone is the terminal step of a sorting run or list operation.
	KindDone StepKind = iota

	// Sorting.
	KindCompare
	KindSwap
	KindPassSorted
	KindRange
	KindMerge
	KindMergeDone
	KindPivot
	KindPivotPlaced
	KindSingleton

	// Grid search.
	KindVisit
	KindFound
	KindExplore
	KindBacktrack

	// Linked list.
	KindTraverse
	KindInsert
	KindDelete
	KindNotFound
)

var stepKindNames = [...]string{
	KindDone:        "done",
	KindCompare:     "compare",
	KindSwap:        "swap",
	KindPassSorted:  "pass-sorted",
	KindRange:       "range",
	KindMerge:       "merge",
	KindMergeDone:   "merge-done",
	KindPivot:       "pivot",
	KindPivotPlaced: "pivot-placed",
	KindSingleton:   "singleton",
	KindVisit:       "visit",
	KindFound:       "found",
	KindExplore:     "explore",
	KindBacktrack:   "backtrack",
	KindTraverse:    "traverse",
	KindInsert:      "insert",
	KindDelete:      "delete",
	KindNotFound:    "not-found",
}

// String returns the hyphenated name of k.
func (k StepKind) String() string {
	if int(k) < len(stepKindNames) {
		return stepKindNames[k]
	}
	return fmt.Sprintf("StepKind(%d)", k)
}

// ArrayStep is one snapshot of a sorting run.
//
// Pass and J are set by bubble sort; Left, Right and Mid by merge sort;
// Left, Right, Pivot and Comparing by quick sort. Fields that do not apply
// hold NoIndex (Comparing is nil).
type ArrayStep struct {
	Kind      StepKind
	Bars      []Bar
	Pass      int
	J         int
	Left      int
	Right     int
	Mid       int
	Pivot     int
	Comparing []int
	Merging   bool
}

// NewArrayStep returns an ArrayStep of kind k over bars with every index
// field set to NoIndex. bars is stored as given.
func NewArrayStep(k StepKind, bars []Bar) ArrayStep {
	return ArrayStep{
		Kind:  k,
		Bars:  bars,
		Pass:  NoIndex,
		J:     NoIndex,
		Left:  NoIndex,
		Right: NoIndex,
		Mid:   NoIndex,
		Pivot: NoIndex,
	}
}

// Values returns the bar values of s in order.
func (s ArrayStep) Values() []int {
	out := make([]int, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Value
	}
	return out
}

// GridStep is one snapshot of a pathfinding or maze run.
//
// For BFS, DFS and A*, Visited lists the visited (or closed) coordinates in
// the order they were marked and Path is nil on every step except the
// terminal KindFound step. For the maze solver, Path is the live recursion
// path and Depth the recursion depth of Current.
type GridStep struct {
	Kind    StepKind
	Grid    Grid
	Visited []Coord
	Path    []Coord
	Current Coord
	Depth   int
}

// HasPath reports whether s carries a reconstructed start→end path.
func (s GridStep) HasPath() bool {
	return s.Kind == KindFound && len(s.Path) > 0
}

// NodeState is the presentational tag of a linked-list node.
type NodeState uint8

const (
	NodeDefault NodeState = iota
	NodeHighlight
	NodeInserting
	NodeDeleting
)

var nodeStateNames = [...]string{
	NodeDefault:   "default",
	NodeHighlight: "highlight",
	NodeInserting: "inserting",
	NodeDeleting:  "deleting",
}

// String returns the lower-case name of s.
func (s NodeState) String() string {
	if int(s) < len(nodeStateNames) {
		return nodeStateNames[s]
	}
	return fmt.Sprintf("NodeState(%d)", s)
}

// ListNode is one linked-list node as rendered in a step.
type ListNode struct {
	ID    int
	Value int
	State NodeState
}

// ListStep is one snapshot of a linked-list operation. Cursor is the
// position the operation is looking at, or NoIndex.
type ListStep struct {
	Kind   StepKind
	Nodes  []ListNode
	Cursor int
	Value  int
}

// Seq adapts a Next-style stepper into an iter.Seq. Iteration stops when
// next reports completion or the consumer breaks out of the loop.
func Seq[S any](next func() (S, bool)) iter.Seq[S] {
	return func(yield func(S) bool) {
		for {
			s, ok := next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Collect drains next and returns every step it produced.
func Collect[S any](next func() (S, bool)) []S {
	var out []S
	for s := range Seq(next) {
		out = append(out, s)
	}
	return out
}
