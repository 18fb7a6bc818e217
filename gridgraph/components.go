package gridgraph

import "github.com/katalvlaran/stepviz/snapshot"

// Region returns every open cell reachable from `from` through open cells,
// in breadth-first order using Directions. It returns nil when from is out
// of bounds or a wall.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for the seen flags and output.
func Region(g snapshot.Grid, from snapshot.Coord) []snapshot.Coord {
	if !Open(g, from) {
		return nil
	}
	seen := make([][]bool, g.Rows())
	for r := range seen {
		seen[r] = make([]bool, g.Cols())
	}
	return flood(g, from, seen)
}

// Regions finds all connected areas of open cells. Areas are ordered by
// their first cell in row-major order; each area lists its cells in
// breadth-first order from that cell.
//
// Time:   O(R·C·4).
// Memory: O(R·C).
func Regions(g snapshot.Grid) [][]snapshot.Coord {
	seen := make([][]bool, g.Rows())
	for r := range seen {
		seen[r] = make([]bool, g.Cols())
	}
	var comps [][]snapshot.Coord
	for r := range g {
		for c := range g[r] {
			if g[r][c].Type == snapshot.CellWall || seen[r][c] {
				continue
			}
			comps = append(comps, flood(g, snapshot.Coord{Row: r, Col: c}, seen))
		}
	}
	return comps
}

// flood collects the unseen open area around from and marks it seen.
func flood(g snapshot.Grid, from snapshot.Coord, seen [][]bool) []snapshot.Coord {
	rows, cols := g.Rows(), g.Cols()
	queue := []snapshot.Coord{from}
	seen[from.Row][from.Col] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range Neighbors(rows, cols, queue[qi]) {
			if seen[n.Row][n.Col] || g.At(n).Type == snapshot.CellWall {
				continue
			}
			seen[n.Row][n.Col] = true
			queue = append(queue, n)
		}
	}
	return queue
}

// Connected reports whether a and b lie in the same open area.
func Connected(g snapshot.Grid, a, b snapshot.Coord) bool {
	if !Open(g, b) {
		return false
	}
	for _, c := range Region(g, a) {
		if c == b {
			return true
		}
	}
	return false
}
