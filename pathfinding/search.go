package pathfinding

import (
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

// Search is an uninformed grid search. BFS takes entries from the front of
// the frontier, DFS from the back; everything else is shared.
type Search struct {
	*walker
	lifo     bool
	frontier []snapshot.Coord
	found    bool
	done     bool
}

// NewBFS returns a breadth-first search generator from start to end.
// grid is copied; later changes to it do not affect the run.
func NewBFS(grid snapshot.Grid, start, end snapshot.Coord) (*Search, error) {
	return newSearch("pathfinding.NewBFS", grid, start, end, false)
}

// NewDFS returns a depth-first search generator from start to end.
// grid is copied; later changes to it do not affect the run.
func NewDFS(grid snapshot.Grid, start, end snapshot.Coord) (*Search, error) {
	return newSearch("pathfinding.NewDFS", grid, start, end, true)
}

func newSearch(op string, grid snapshot.Grid, start, end snapshot.Coord, lifo bool) (*Search, error) {
	w, err := newWalker(op, grid, start, end)
	if err != nil {
		return nil, err
	}
	s := &Search{walker: w, lifo: lifo}
	w.mark(start)
	s.frontier = append(s.frontier, start)
	return s, nil
}

// Next returns the next step, or false when the run is complete.
func (s *Search) Next() (snapshot.GridStep, bool) {
	if s.done {
		return snapshot.GridStep{}, false
	}
	if s.found {
		s.done = true
		return s.foundStep(s.pathTo(s.end), snapshot.CellVisited), true
	}
	if len(s.frontier) == 0 {
		s.done = true
		return snapshot.GridStep{}, false
	}

	cur := s.take()
	step := s.visitStep(cur)
	if cur == s.end {
		s.found = true
	} else {
		s.expand(cur)
	}
	return step, true
}

// take removes the next frontier entry.
func (s *Search) take() snapshot.Coord {
	if s.lifo {
		last := len(s.frontier) - 1
		c := s.frontier[last]
		s.frontier = s.frontier[:last]
		return c
	}
	c := s.frontier[0]
	s.frontier = s.frontier[1:]
	return c
}

// expand pushes every passable neighbour of cur, marking it on the way in.
func (s *Search) expand(cur snapshot.Coord) {
	for _, n := range gridgraph.Neighbors(s.rows, s.cols, cur) {
		if !s.passable(n) {
			continue
		}
		s.mark(n)
		s.parent[n.Row][n.Col] = cur
		s.frontier = append(s.frontier, n)
	}
}

// visitStep tags marked cells visited. BFS then shows the waiting frontier,
// DFS the path of the entry just taken.
func (s *Search) visitStep(cur snapshot.Coord) snapshot.GridStep {
	g := s.base.Clone()
	for _, c := range s.visited {
		tag(g, c, snapshot.CellVisited)
	}
	path := s.pathTo(cur)
	if s.lifo {
		for _, c := range path {
			tag(g, c, snapshot.CellPath)
		}
	} else {
		for _, c := range s.frontier {
			tag(g, c, snapshot.CellFrontier)
		}
	}
	s.retag(g)
	return snapshot.GridStep{
		Kind:    snapshot.KindVisit,
		Grid:    g,
		Visited: snapshot.CopyCoords(s.visited),
		Current: cur,
		Depth:   len(path) - 1,
	}
}
