package pathfinding

import (
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

// openEntry is one cell of the A* open set.
type openEntry struct {
	at   snapshot.Coord
	g, h int
}

func (e openEntry) f() int { return e.g + e.h }

// AStar is an A* search using the Manhattan distance to the end.
//
// The open set keeps insertion order. Selection takes the first entry with
// the strictly smallest f, so ties go to the entry inserted earliest. An
// improved entry keeps its position. Closed cells keep the g they were
// closed with.
type AStar struct {
	*walker
	open    []openEntry
	inOpen  [][]int // index into open, or -1
	closedG [][]int
	found   bool
	done    bool
}

// NewAStar returns an A* generator from start to end.
// grid is copied; later changes to it do not affect the run.
func NewAStar(grid snapshot.Grid, start, end snapshot.Coord) (*AStar, error) {
	w, err := newWalker("pathfinding.NewAStar", grid, start, end)
	if err != nil {
		return nil, err
	}
	a := &AStar{walker: w}
	a.inOpen = make([][]int, w.rows)
	a.closedG = make([][]int, w.rows)
	for r := 0; r < w.rows; r++ {
		a.inOpen[r] = make([]int, w.cols)
		a.closedG[r] = make([]int, w.cols)
		for c := range a.inOpen[r] {
			a.inOpen[r][c] = -1
		}
	}
	a.push(openEntry{at: start, g: 0, h: gridgraph.Manhattan(start, end)})
	return a, nil
}

// Next returns the next step, or false when the run is complete.
func (a *AStar) Next() (snapshot.GridStep, bool) {
	if a.done {
		return snapshot.GridStep{}, false
	}
	if a.found {
		a.done = true
		return a.foundStep(a.pathTo(a.end), snapshot.CellClosed), true
	}
	if len(a.open) == 0 {
		a.done = true
		return snapshot.GridStep{}, false
	}

	cur := a.pop(a.best())
	a.mark(cur.at)
	a.closedG[cur.at.Row][cur.at.Col] = cur.g
	step := a.visitStep(cur)
	if cur.at == a.end {
		a.found = true
	} else {
		a.relax(cur)
	}
	return step, true
}

// best returns the index of the first entry with minimal f.
func (a *AStar) best() int {
	idx := 0
	for i := 1; i < len(a.open); i++ {
		if a.open[i].f() < a.open[idx].f() {
			idx = i
		}
	}
	return idx
}

func (a *AStar) push(e openEntry) {
	a.inOpen[e.at.Row][e.at.Col] = len(a.open)
	a.open = append(a.open, e)
}

// pop removes open[i] preserving the order of the rest.
func (a *AStar) pop(i int) openEntry {
	e := a.open[i]
	a.open = append(a.open[:i], a.open[i+1:]...)
	a.inOpen[e.at.Row][e.at.Col] = -1
	for j := i; j < len(a.open); j++ {
		at := a.open[j].at
		a.inOpen[at.Row][at.Col] = j
	}
	return e
}

// relax offers g+1 to every passable neighbour of cur.
func (a *AStar) relax(cur openEntry) {
	for _, n := range gridgraph.Neighbors(a.rows, a.cols, cur.at) {
		if !a.passable(n) {
			continue
		}
		g := cur.g + 1
		if i := a.inOpen[n.Row][n.Col]; i >= 0 {
			if g < a.open[i].g {
				a.open[i].g = g
				a.parent[n.Row][n.Col] = cur.at
			}
			continue
		}
		a.parent[n.Row][n.Col] = cur.at
		a.push(openEntry{at: n, g: g, h: gridgraph.Manhattan(n, a.end)})
	}
}

// visitStep tags the closed set closed and the open set open, both with
// their costs.
func (a *AStar) visitStep(cur openEntry) snapshot.GridStep {
	g := a.base.Clone()
	for _, c := range a.visited {
		cg := a.closedG[c.Row][c.Col]
		h := gridgraph.Manhattan(c, a.end)
		tag(g, c, snapshot.CellClosed).Cost = &snapshot.Cost{G: cg, H: h, F: cg + h}
	}
	for _, e := range a.open {
		tag(g, e.at, snapshot.CellOpen).Cost = &snapshot.Cost{G: e.g, H: e.h, F: e.f()}
	}
	a.retag(g)
	return snapshot.GridStep{
		Kind:    snapshot.KindVisit,
		Grid:    g,
		Visited: snapshot.CopyCoords(a.visited),
		Current: cur.at,
		Depth:   cur.g,
	}
}
