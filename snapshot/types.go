package snapshot

import "fmt"

// NoIndex marks index metadata that does not apply to a step.
const NoIndex = -1

// BarState is the presentational tag of a Bar.
type BarState uint8

const (
	BarDefault BarState = iota
	BarComparing
	BarPivot
	BarSubarray
	BarSorted
	BarSwapping
)

var barStateNames = [...]string{
	BarDefault:   "default",
	BarComparing: "comparing",
	BarPivot:     "pivot",
	BarSubarray:  "subarray",
	BarSorted:    "sorted",
	BarSwapping:  "swapping",
}

// String returns the lower-case name of s.
func (s BarState) String() string {
	if int(s) < len(barStateNames) {
		return barStateNames[s]
	}
	return fmt.Sprintf("BarState(%d)", s)
}

// Bar is one array element. Index is the element's position in the input
// array and travels with the value when bars are reordered.
type Bar struct {
	Value int
	State BarState
	Index int
}

// CellType is both the structural kind of a cell (wall) and its
// presentational tag for the current step.
type CellType uint8

const (
	CellEmpty CellType = iota
	CellWall
	CellStart
	CellEnd
	CellPath
	CellVisited
	CellCurrent
	CellBacktracked
	CellFrontier
	CellOpen
	CellClosed
)

var cellTypeNames = [...]string{
	CellEmpty:       "empty",
	CellWall:        "wall",
	CellStart:       "start",
	CellEnd:         "end",
	CellPath:        "path",
	CellVisited:     "visited",
	CellCurrent:     "current",
	CellBacktracked: "backtracked",
	CellFrontier:    "frontier",
	CellOpen:        "open",
	CellClosed:      "closed",
}

// String returns the lower-case name of t.
func (t CellType) String() string {
	if int(t) < len(cellTypeNames) {
		return cellTypeNames[t]
	}
	return fmt.Sprintf("CellType(%d)", t)
}

// IsEndpoint reports whether t is CellStart or CellEnd.
func (t CellType) IsEndpoint() bool {
	return t == CellStart || t == CellEnd
}

// Coord identifies a grid cell.
type Coord struct {
	Row, Col int
}

// String renders c as "r,c".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Cost carries the A* accounting of a cell: cost so far, heuristic estimate
// and their sum.
type Cost struct {
	G, H, F int
}

// Cell is one grid cell. Row and Col never change during a run.
// Cost is non-nil only on cells of A* steps.
type Cell struct {
	Row, Col int
	Type     CellType
	Cost     *Cost
}

// Coord returns the identity of c.
func (c Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// Grid is a rectangular, row-major matrix of cells.
type Grid [][]Cell

// NewGrid returns a rows×cols grid of empty cells with coordinates set.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := 0; r < rows; r++ {
		g[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			g[r][c] = Cell{Row: r, Col: c}
		}
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns of the first row, or 0.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns a pointer to the cell at c. The caller must ensure c is in bounds.
func (g Grid) At(c Coord) *Cell {
	return &g[c.Row][c.Col]
}

// Clone returns a deep copy of g, including Cost values.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]Cell, len(row))
		copy(out[r], row)
		for c := range out[r] {
			if cost := row[c].Cost; cost != nil {
				cp := *cost
				out[r][c].Cost = &cp
			}
		}
	}
	return out
}

// CountType returns how many cells of g carry type t.
func (g Grid) CountType(t CellType) int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell.Type == t {
				n++
			}
		}
	}
	return n
}

// Find returns the first coordinate (row-major) whose cell has type t.
func (g Grid) Find(t CellType) (Coord, bool) {
	for _, row := range g {
		for _, cell := range row {
			if cell.Type == t {
				return cell.Coord(), true
			}
		}
	}
	return Coord{}, false
}

// CopyCoords returns an independent copy of cs, or nil for a nil input.
func CopyCoords(cs []Coord) []Coord {
	if cs == nil {
		return nil
	}
	out := make([]Coord, len(cs))
	copy(out, cs)
	return out
}
