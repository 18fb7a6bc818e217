package driver

import (
	"fmt"

	"github.com/katalvlaran/stepviz/linkedlist"
	"github.com/katalvlaran/stepviz/maze"
	"github.com/katalvlaran/stepviz/pathfinding"
	"github.com/katalvlaran/stepviz/snapshot"
	"github.com/katalvlaran/stepviz/sorting"
)

// ListOpKind names a linked-list operation.
type ListOpKind string

const (
	ListInsertHead ListOpKind = "insert-head"
	ListInsertTail ListOpKind = "insert-tail"
	ListDelete     ListOpKind = "delete"
	ListSearch     ListOpKind = "search"
)

// ListOp is the operation a linked-list run performs.
type ListOp struct {
	Kind  ListOpKind
	Value int
}

// Input is the instance a run works on. Sorting reads Array; pathfinding and
// the maze solver read Grid, Start and End; the linked list reads List and
// ListOp.
type Input struct {
	Array []int

	Grid       snapshot.Grid
	Start, End snapshot.Coord

	// HideBacktracking suppresses the maze solver's backtrack steps.
	HideBacktracking bool

	List   *linkedlist.List
	ListOp ListOp
}

// Step is one snapshot of a run. Exactly one of Array, Grid and List is set,
// according to the algorithm's category. Index counts from zero.
type Step struct {
	Index int
	Array *snapshot.ArrayStep
	Grid  *snapshot.GridStep
	List  *snapshot.ListStep
}

// Kind returns the kind of the carried snapshot.
func (s Step) Kind() snapshot.StepKind {
	switch {
	case s.Array != nil:
		return s.Array.Kind
	case s.Grid != nil:
		return s.Grid.Kind
	case s.List != nil:
		return s.List.Kind
	default:
		return snapshot.KindDone
	}
}

// Outcome summarises how a finished run ended.
type Outcome string

const (
	OutcomeRunning   Outcome = "running"
	OutcomeCompleted Outcome = "completed"
	OutcomeFound     Outcome = "found"
	OutcomeNotFound  Outcome = "not-found"
	OutcomeAbandoned Outcome = "abandoned"
)

// Run is one execution of an algorithm over a fixed input.
type Run struct {
	alg   Algorithm
	next  func() (Step, bool)
	steps int
	found bool
	miss  bool
	done  bool

	// op is kept for linked-list runs to expose the resulting list.
	op *linkedlist.Op
}

// Create validates in for alg and returns a run that has not produced any
// step yet.
func Create(alg Algorithm, in Input) (*Run, error) {
	r := &Run{alg: alg}

	var err error
	switch alg {
	case BubbleSort:
		var g *sorting.Bubble
		if g, err = sorting.NewBubble(in.Array); err == nil {
			r.next = arraySteps(g.Next)
		}
	case MergeSort:
		var g *sorting.Merge
		if g, err = sorting.NewMerge(in.Array); err == nil {
			r.next = arraySteps(g.Next)
		}
	case QuickSort:
		var g *sorting.Quick
		if g, err = sorting.NewQuick(in.Array); err == nil {
			r.next = arraySteps(g.Next)
		}
	case BFS:
		var g *pathfinding.Search
		if g, err = pathfinding.NewBFS(in.Grid, in.Start, in.End); err == nil {
			r.next = gridSteps(g.Next)
		}
	case DFS:
		var g *pathfinding.Search
		if g, err = pathfinding.NewDFS(in.Grid, in.Start, in.End); err == nil {
			r.next = gridSteps(g.Next)
		}
	case AStar:
		var g *pathfinding.AStar
		if g, err = pathfinding.NewAStar(in.Grid, in.Start, in.End); err == nil {
			r.next = gridSteps(g.Next)
		}
	case Maze:
		var g *maze.Solver
		g, err = maze.NewSolver(in.Grid, in.Start, in.End, maze.WithBacktracking(!in.HideBacktracking))
		if err == nil {
			r.next = gridSteps(g.Next)
		}
	case LinkedList:
		r.op, err = listOp(in.List, in.ListOp)
		if err == nil {
			r.next = listSteps(r.op.Next)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s run: %w", alg, err)
	}
	return r, nil
}

func listOp(l *linkedlist.List, op ListOp) (*linkedlist.Op, error) {
	if l == nil {
		l = linkedlist.New()
	}
	switch op.Kind {
	case ListInsertHead:
		return l.InsertHead(op.Value), nil
	case ListInsertTail:
		return l.InsertTail(op.Value), nil
	case ListDelete:
		return l.Delete(op.Value), nil
	case ListSearch:
		return l.Search(op.Value), nil
	default:
		return nil, snapshot.Invalid("driver.Create", "unknown list operation %q", op.Kind)
	}
}

func arraySteps(next func() (snapshot.ArrayStep, bool)) func() (Step, bool) {
	return func() (Step, bool) {
		s, ok := next()
		if !ok {
			return Step{}, false
		}
		return Step{Array: &s}, true
	}
}

func gridSteps(next func() (snapshot.GridStep, bool)) func() (Step, bool) {
	return func() (Step, bool) {
		s, ok := next()
		if !ok {
			return Step{}, false
		}
		return Step{Grid: &s}, true
	}
}

func listSteps(next func() (snapshot.ListStep, bool)) func() (Step, bool) {
	return func() (Step, bool) {
		s, ok := next()
		if !ok {
			return Step{}, false
		}
		return Step{List: &s}, true
	}
}

// Advance returns the next step, or false once the run is complete. A
// completed run keeps returning false.
func (r *Run) Advance() (Step, bool) {
	if r.done {
		return Step{}, false
	}
	step, ok := r.next()
	if !ok {
		r.done = true
		return Step{}, false
	}
	step.Index = r.steps
	r.steps++
	switch step.Kind() {
	case snapshot.KindFound:
		r.found = true
	case snapshot.KindNotFound:
		r.miss = true
	}
	return step, true
}

// Algorithm returns the algorithm r executes.
func (r *Run) Algorithm() Algorithm { return r.alg }

// Steps returns the number of steps produced so far.
func (r *Run) Steps() int { return r.steps }

// Done reports whether Advance has reported completion.
func (r *Run) Done() bool { return r.done }

// Outcome returns OutcomeRunning until the run is done. A finished run is
// found when it emitted a found step. Grid searches that never found the
// end, and list operations that missed their value, are not-found.
func (r *Run) Outcome() Outcome {
	switch {
	case !r.done:
		return OutcomeRunning
	case r.found:
		return OutcomeFound
	case r.miss:
		return OutcomeNotFound
	case r.alg.Category() == CategoryPathfinding || r.alg.Category() == CategoryMaze:
		return OutcomeNotFound
	default:
		return OutcomeCompleted
	}
}

// List returns the list a finished linked-list run produced.
func (r *Run) List() (*linkedlist.List, bool) {
	if r.op == nil {
		return nil, false
	}
	return r.op.Result()
}

// Drain advances r to completion and returns every remaining step.
func (r *Run) Drain() []Step {
	return snapshot.Collect(r.Advance)
}
