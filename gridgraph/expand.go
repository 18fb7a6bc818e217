package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/stepviz/snapshot"
)

// Bridge finds a path from `from` to `to` that crosses the fewest walls.
// Entering an open cell costs 0 and entering a wall costs 1, so the
// returned count is the number of walls on the path, excluding from.
// The path includes both ends.
//
// Behavior:
//  1. Validate the grid shape and both coordinates.
//  2. 0-1 BFS from `from`: zero-cost moves go to the deque front, unit-cost
//     moves to the back.
//  3. Stop when `to` leaves the deque; its distance is then final.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(R·C·4) time, O(R·C) memory.
func Bridge(g snapshot.Grid, from, to snapshot.Coord) (path []snapshot.Coord, walls int, err error) {
	rows, cols := g.Rows(), g.Cols()
	if rows == 0 || cols == 0 {
		return nil, 0, ErrEmptyGrid
	}
	if !InBounds(rows, cols, from) || !InBounds(rows, cols, to) {
		return nil, 0, ErrOutOfBounds
	}

	n := rows * cols
	index := func(c snapshot.Coord) int { return c.Row*cols + c.Col }
	coord := func(i int) snapshot.Coord { return snapshot.Coord{Row: i / cols, Col: i % cols} }

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dq := list.New()
	dist[index(from)] = 0
	dq.PushFront(index(from))
	target := index(to)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			break
		}
		for _, nb := range Neighbors(rows, cols, coord(u)) {
			v := index(nb)
			step := 0
			if g.At(nb).Type == snapshot.CellWall {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := target; at >= 0; at = prev[at] {
		path = append(path, coord(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}

// Carve returns a copy of g with every wall on Bridge(from, to) cleared,
// so that to is reachable from from. The second result is the number of
// walls removed.
func Carve(g snapshot.Grid, from, to snapshot.Coord) (snapshot.Grid, int, error) {
	path, _, err := Bridge(g, from, to)
	if err != nil {
		return nil, 0, err
	}
	out := g.Clone()
	removed := 0
	for _, c := range path {
		if cell := out.At(c); cell.Type == snapshot.CellWall {
			cell.Type = snapshot.CellEmpty
			removed++
		}
	}
	return out, removed, nil
}
