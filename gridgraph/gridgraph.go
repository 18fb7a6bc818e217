package gridgraph

import (
	"github.com/katalvlaran/stepviz/snapshot"
)

// Directions is the fixed neighbour order: right, down, left, up.
// Every traversal in this module expands neighbours in this order.
var Directions = [4]snapshot.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: -1, Col: 0}}

// InBounds reports whether c lies within a rows×cols grid.
// Complexity: O(1).
func InBounds(rows, cols int, c snapshot.Coord) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// Neighbors returns the in-bounds neighbours of c in Directions order.
// Walls are not filtered; callers decide what is traversable.
// Complexity: O(1).
func Neighbors(rows, cols int, c snapshot.Coord) []snapshot.Coord {
	out := make([]snapshot.Coord, 0, len(Directions))
	for _, d := range Directions {
		n := snapshot.Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if InBounds(rows, cols, n) {
			out = append(out, n)
		}
	}
	return out
}

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(a, b snapshot.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Validate checks that g is a non-empty rectangular grid whose cells carry
// their own coordinates, and that start and end are distinct, in bounds and
// not walls.
// Complexity: O(R×C).
func Validate(g snapshot.Grid, start, end snapshot.Coord) error {
	const op = "gridgraph.Validate"
	if len(g) == 0 || len(g[0]) == 0 {
		return snapshot.Invalid(op, "grid is empty")
	}
	cols := len(g[0])
	for r, row := range g {
		if len(row) != cols {
			return snapshot.Invalid(op, "row %d has %d cells, want %d", r, len(row), cols)
		}
		for c, cell := range row {
			if cell.Row != r || cell.Col != c {
				return snapshot.Invalid(op, "cell at %d,%d reports coordinate %d,%d", r, c, cell.Row, cell.Col)
			}
		}
	}
	for _, ep := range []struct {
		name string
		at   snapshot.Coord
	}{{"start", start}, {"end", end}} {
		if !InBounds(len(g), cols, ep.at) {
			return snapshot.Invalid(op, "%s %v is outside the %dx%d grid", ep.name, ep.at, len(g), cols)
		}
		if g.At(ep.at).Type == snapshot.CellWall {
			return snapshot.Invalid(op, "%s %v is a wall", ep.name, ep.at)
		}
	}
	if start == end {
		return snapshot.Invalid(op, "start %v equals end", start)
	}
	return nil
}

// Locate returns the first start and end tagged cells of g in row-major
// order. A missing start defaults to (0,0), a missing end to the
// bottom-right cell. g must be non-empty.
func Locate(g snapshot.Grid) (start, end snapshot.Coord) {
	start, _ = g.Find(snapshot.CellStart)
	end, ok := g.Find(snapshot.CellEnd)
	if !ok {
		end = snapshot.Coord{Row: g.Rows() - 1, Col: g.Cols() - 1}
	}
	return start, end
}

// Normalize returns a copy of g in which every non-wall cell is empty and
// carries no cost, with start and end retagged. Presentational tags left by
// an earlier run are dropped.
func Normalize(g snapshot.Grid, start, end snapshot.Coord) snapshot.Grid {
	out := g.Clone()
	for r := range out {
		for c := range out[r] {
			cell := &out[r][c]
			cell.Cost = nil
			if cell.Type != snapshot.CellWall {
				cell.Type = snapshot.CellEmpty
			}
		}
	}
	out.At(start).Type = snapshot.CellStart
	out.At(end).Type = snapshot.CellEnd
	return out
}

// Open reports whether c is inside g and not a wall.
func Open(g snapshot.Grid, c snapshot.Coord) bool {
	return InBounds(g.Rows(), g.Cols(), c) && g.At(c).Type != snapshot.CellWall
}
