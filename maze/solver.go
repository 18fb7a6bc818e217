package maze

import (
	"fmt"

	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

// frame is one activation of the recursive solve: the cell, its depth and
// the next direction to try. entered is false until the cell has been
// visited.
type frame struct {
	at      snapshot.Coord
	depth   int
	dir     int
	entered bool
}

// Solver is a step generator for recursive backtracking from start to end.
type Solver struct {
	base       snapshot.Grid
	rows, cols int
	start, end snapshot.Coord
	visited    [][]bool
	order      []snapshot.Coord
	path       []snapshot.Coord
	stack      []frame
	solved     bool
	quiet      bool
}

// Option customizes a Solver.
type Option func(*Solver)

// WithBacktracking controls whether KindBacktrack steps are emitted.
// They are on by default; when off the solver unwinds silently and only
// explore and found steps remain.
func WithBacktracking(show bool) Option {
	return func(s *Solver) {
		s.quiet = !show
	}
}

// NewSolver returns a maze solver from start to end. grid is copied.
func NewSolver(grid snapshot.Grid, start, end snapshot.Coord, opts ...Option) (*Solver, error) {
	if err := gridgraph.Validate(grid, start, end); err != nil {
		return nil, fmt.Errorf("maze.NewSolver: %w", err)
	}
	s := &Solver{
		base:  gridgraph.Normalize(grid, start, end),
		rows:  len(grid),
		cols:  len(grid[0]),
		start: start,
		end:   end,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.visited = make([][]bool, s.rows)
	for r := range s.visited {
		s.visited[r] = make([]bool, s.cols)
	}
	s.stack = append(s.stack, frame{at: start})
	return s, nil
}

// Solved reports whether the run reached the end.
func (s *Solver) Solved() bool { return s.solved }

// Next returns the next step, or false when the run is complete.
func (s *Solver) Next() (snapshot.GridStep, bool) {
	for len(s.stack) > 0 {
		f := &s.stack[len(s.stack)-1]
		if !f.entered {
			if f.at == s.end {
				step := s.foundStep(f.at, f.depth)
				s.stack = nil
				s.solved = true
				return step, true
			}
			f.entered = true
			s.visited[f.at.Row][f.at.Col] = true
			s.order = append(s.order, f.at)
			s.path = append(s.path, f.at)
			return s.exploreStep(f.at, f.depth), true
		}

		if next, ok := s.advance(f); ok {
			s.stack = append(s.stack, frame{at: next, depth: f.depth + 1})
			continue
		}

		at, depth := f.at, f.depth
		s.path = s.path[:len(s.path)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if s.quiet {
			continue
		}
		return s.backtrackStep(at, depth), true
	}
	return snapshot.GridStep{}, false
}

// advance moves f to its next open, unvisited neighbour.
func (s *Solver) advance(f *frame) (snapshot.Coord, bool) {
	for f.dir < len(gridgraph.Directions) {
		d := gridgraph.Directions[f.dir]
		f.dir++
		n := snapshot.Coord{Row: f.at.Row + d.Row, Col: f.at.Col + d.Col}
		if gridgraph.Open(s.base, n) && !s.visited[n.Row][n.Col] {
			return n, true
		}
	}
	return snapshot.Coord{}, false
}

// paint tags every entered cell visited and the live path path.
func (s *Solver) paint() snapshot.Grid {
	g := s.base.Clone()
	for _, c := range s.order {
		g.At(c).Type = snapshot.CellVisited
	}
	for _, c := range s.path {
		g.At(c).Type = snapshot.CellPath
	}
	return g
}

func (s *Solver) retag(g snapshot.Grid) {
	g.At(s.start).Type = snapshot.CellStart
	g.At(s.end).Type = snapshot.CellEnd
}

func (s *Solver) step(kind snapshot.StepKind, g snapshot.Grid, at snapshot.Coord, depth int) snapshot.GridStep {
	return snapshot.GridStep{
		Kind:    kind,
		Grid:    g,
		Visited: snapshot.CopyCoords(s.order),
		Path:    snapshot.CopyCoords(s.path),
		Current: at,
		Depth:   depth,
	}
}

func (s *Solver) exploreStep(at snapshot.Coord, depth int) snapshot.GridStep {
	g := s.paint()
	g.At(at).Type = snapshot.CellCurrent
	s.retag(g)
	return s.step(snapshot.KindExplore, g, at, depth)
}

func (s *Solver) backtrackStep(at snapshot.Coord, depth int) snapshot.GridStep {
	g := s.paint()
	g.At(at).Type = snapshot.CellBacktracked
	s.retag(g)
	return s.step(snapshot.KindBacktrack, g, at, depth)
}

// foundStep shows only the solution: the path plus the end.
func (s *Solver) foundStep(at snapshot.Coord, depth int) snapshot.GridStep {
	g := s.base.Clone()
	for _, c := range s.path {
		g.At(c).Type = snapshot.CellPath
	}
	s.retag(g)
	step := s.step(snapshot.KindFound, g, at, depth)
	step.Path = append(step.Path, at)
	return step
}
