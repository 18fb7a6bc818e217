package pathfinding

import (
	"fmt"

	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

// walker holds the state shared by every search: the normalized base grid,
// the endpoints, the parent links and the marking order.
type walker struct {
	base       snapshot.Grid
	rows, cols int
	start, end snapshot.Coord
	parent     [][]snapshot.Coord
	marked     [][]bool
	visited    []snapshot.Coord
}

// newWalker validates the input and prepares a working copy of grid.
func newWalker(op string, grid snapshot.Grid, start, end snapshot.Coord) (*walker, error) {
	if err := gridgraph.Validate(grid, start, end); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	w := &walker{
		base:  gridgraph.Normalize(grid, start, end),
		rows:  len(grid),
		cols:  len(grid[0]),
		start: start,
		end:   end,
	}
	w.parent = make([][]snapshot.Coord, w.rows)
	w.marked = make([][]bool, w.rows)
	for r := 0; r < w.rows; r++ {
		w.parent[r] = make([]snapshot.Coord, w.cols)
		w.marked[r] = make([]bool, w.cols)
	}
	w.parent[start.Row][start.Col] = start
	return w, nil
}

// mark records c in the marking order. It reports false when c was
// already marked.
func (w *walker) mark(c snapshot.Coord) bool {
	if w.marked[c.Row][c.Col] {
		return false
	}
	w.marked[c.Row][c.Col] = true
	w.visited = append(w.visited, c)
	return true
}

// passable reports whether the in-bounds cell c is neither a wall nor
// marked.
func (w *walker) passable(c snapshot.Coord) bool {
	return !w.marked[c.Row][c.Col] && w.base.At(c).Type != snapshot.CellWall
}

// pathTo follows parent links back to start and returns start→c.
func (w *walker) pathTo(c snapshot.Coord) []snapshot.Coord {
	var rev []snapshot.Coord
	for {
		rev = append(rev, c)
		p := w.parent[c.Row][c.Col]
		if p == c {
			break
		}
		c = p
	}
	path := make([]snapshot.Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// tag sets the type of c in g unless c is an endpoint.
func tag(g snapshot.Grid, c snapshot.Coord, t snapshot.CellType) *snapshot.Cell {
	cell := g.At(c)
	if !cell.Type.IsEndpoint() {
		cell.Type = t
	}
	return cell
}

// retag restores the endpoint tags of g.
func (w *walker) retag(g snapshot.Grid) {
	g.At(w.start).Type = snapshot.CellStart
	g.At(w.end).Type = snapshot.CellEnd
}

// foundStep paints path over the marked cells, which are tagged marked.
func (w *walker) foundStep(path []snapshot.Coord, marked snapshot.CellType) snapshot.GridStep {
	g := w.base.Clone()
	for _, c := range w.visited {
		tag(g, c, marked)
	}
	for _, c := range path {
		tag(g, c, snapshot.CellPath)
	}
	w.retag(g)
	return snapshot.GridStep{
		Kind:    snapshot.KindFound,
		Grid:    g,
		Visited: snapshot.CopyCoords(w.visited),
		Path:    path,
		Current: w.end,
		Depth:   len(path) - 1,
	}
}
