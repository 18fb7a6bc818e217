package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/stepviz/snapshot"
)

// Paint applies the wall brush (wall=true) or the eraser (wall=false) to c.
// Endpoints and out-of-bounds coordinates are left alone. It returns a new
// grid and whether anything changed; g itself is never modified. When
// nothing changes the returned grid is g.
func Paint(g snapshot.Grid, c snapshot.Coord, wall bool) (snapshot.Grid, bool) {
	if !InBounds(g.Rows(), g.Cols(), c) {
		return g, false
	}
	cur := g.At(c).Type
	if cur.IsEndpoint() {
		return g, false
	}
	want := snapshot.CellEmpty
	if wall {
		want = snapshot.CellWall
	}
	if cur == want {
		return g, false
	}
	out := g.Clone()
	out.At(c).Type = want
	return out, true
}

// MoveEndpoint moves the endpoint of type t (CellStart or CellEnd) to c and
// returns the edited copy. The old position becomes empty. Moving onto a
// wall or onto the opposite endpoint fails with ErrBlocked; moving onto
// itself returns an unchanged copy.
func MoveEndpoint(g snapshot.Grid, c snapshot.Coord, t snapshot.CellType) (snapshot.Grid, error) {
	if !t.IsEndpoint() {
		return nil, fmt.Errorf("MoveEndpoint(%v): %w", t, ErrNotEndpoint)
	}
	if g.Rows() == 0 || g.Cols() == 0 {
		return nil, ErrEmptyGrid
	}
	if !InBounds(g.Rows(), g.Cols(), c) {
		return nil, fmt.Errorf("MoveEndpoint(%v, %v): %w", t, c, ErrOutOfBounds)
	}
	switch target := g.At(c).Type; {
	case target == snapshot.CellWall, target.IsEndpoint() && target != t:
		return nil, fmt.Errorf("MoveEndpoint(%v, %v) onto %v: %w", t, c, target, ErrBlocked)
	}

	out := g.Clone()
	if old, ok := out.Find(t); ok {
		out.At(old).Type = snapshot.CellEmpty
	}
	out.At(c).Type = t
	return out, nil
}
