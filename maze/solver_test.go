package maze_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/maze"
	"github.com/katalvlaran/stepviz/snapshot"
)

func at(r, c int) snapshot.Coord { return snapshot.Coord{Row: r, Col: c} }

func solve(t *testing.T, lines ...string) (*maze.Solver, []snapshot.GridStep) {
	t.Helper()
	g, err := gridgraph.Parse(lines...)
	require.NoError(t, err)
	start, end := gridgraph.Locate(g)
	s, err := maze.NewSolver(g, start, end)
	require.NoError(t, err)
	return s, snapshot.Collect(s.Next)
}

func kinds(steps []snapshot.GridStep) []snapshot.StepKind {
	out := make([]snapshot.StepKind, len(steps))
	for i, s := range steps {
		out[i] = s.Kind
	}
	return out
}

// TestSolver_Straight: no dead ends, so only explore steps and the found step.
func TestSolver_Straight(t *testing.T) {
	s, steps := solve(t, "S.", "#E")
	require.Equal(t, []snapshot.StepKind{snapshot.KindExplore, snapshot.KindExplore, snapshot.KindFound}, kinds(steps))
	assert.True(t, s.Solved())

	assert.Equal(t, snapshot.CellStart, steps[0].Grid.At(at(0, 0)).Type, "start keeps its tag while current")
	assert.Equal(t, snapshot.CellCurrent, steps[1].Grid.At(at(0, 1)).Type)
	assert.Equal(t, 1, steps[1].Depth)

	found := steps[2]
	assert.Equal(t, []snapshot.Coord{at(0, 0), at(0, 1), at(1, 1)}, found.Path)
	assert.Equal(t, 2, found.Depth)
	assert.Equal(t, at(1, 1), found.Current)
	assert.Equal(t, snapshot.CellStart, found.Grid.At(at(0, 0)).Type)
	assert.Equal(t, snapshot.CellPath, found.Grid.At(at(0, 1)).Type)
	assert.Equal(t, snapshot.CellEnd, found.Grid.At(at(1, 1)).Type)
}

// TestSolver_DeadEnd pins a run with one backtrack.
//
//	S . .
//	# . #
//	. . E
func TestSolver_DeadEnd(t *testing.T) {
	_, steps := solve(t, "S..", "#.#", "..E")
	require.Equal(t, []snapshot.StepKind{
		snapshot.KindExplore, snapshot.KindExplore, snapshot.KindExplore,
		snapshot.KindBacktrack,
		snapshot.KindExplore, snapshot.KindExplore,
		snapshot.KindFound,
	}, kinds(steps))

	back := steps[3]
	assert.Equal(t, at(0, 2), back.Current)
	assert.Equal(t, 2, back.Depth)
	assert.Equal(t, []snapshot.Coord{at(0, 0), at(0, 1)}, back.Path)
	assert.Equal(t, snapshot.CellBacktracked, back.Grid.At(at(0, 2)).Type)
	assert.Equal(t, snapshot.CellPath, back.Grid.At(at(0, 1)).Type)

	next := steps[4]
	assert.Equal(t, at(1, 1), next.Current)
	assert.Equal(t, snapshot.CellVisited, next.Grid.At(at(0, 2)).Type, "abandoned cells stay visited")
	assert.Equal(t, []snapshot.Coord{at(0, 0), at(0, 1), at(0, 2), at(1, 1)}, next.Visited)

	found := steps[6]
	assert.Equal(t, []snapshot.Coord{at(0, 0), at(0, 1), at(1, 1), at(2, 1), at(2, 2)}, found.Path)
	assert.Equal(t, 4, found.Depth)
	assert.Equal(t, snapshot.CellEmpty, found.Grid.At(at(0, 2)).Type, "found step shows the solution only")
}

// TestSolver_Unsolvable: the run unwinds to the start without a found step.
func TestSolver_Unsolvable(t *testing.T) {
	s, steps := solve(t, "S#", "#E")
	require.Equal(t, []snapshot.StepKind{snapshot.KindExplore, snapshot.KindBacktrack}, kinds(steps))
	assert.False(t, s.Solved())
	assert.Empty(t, steps[1].Path)
	assert.Equal(t, snapshot.CellStart, steps[1].Grid.At(at(0, 0)).Type)

	_, ok := s.Next()
	assert.False(t, ok)
}

// TestSolver_StartIsEnd: endpoints on the same cell are rejected.
func TestSolver_StartIsEnd(t *testing.T) {
	_, err := maze.NewSolver(snapshot.NewGrid(2, 2), at(1, 0), at(1, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, snapshot.ErrInvalidInput))
}

// TestSolver_Properties checks random mazes against reachability.
func TestSolver_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 60; i++ {
		n := 3 + i%8
		g := snapshot.NewGrid(n, n)
		for r := range g {
			for c := range g[r] {
				if rng.Float64() < 0.3 {
					g[r][c].Type = snapshot.CellWall
				}
			}
		}
		start, end := at(0, 0), at(n-1, n-1)
		g[0][0].Type, g[n-1][n-1].Type = snapshot.CellStart, snapshot.CellEnd

		s, err := maze.NewSolver(g, start, end)
		require.NoError(t, err)
		steps := snapshot.Collect(s.Next)
		reachable := gridgraph.Connected(g, start, end)
		assert.Equalf(t, reachable, s.Solved(), "grid %d", i)

		explores, backtracks := 0, 0
		for _, st := range steps {
			assert.Equal(t, snapshot.CellStart, st.Grid.At(start).Type)
			assert.Equal(t, snapshot.CellEnd, st.Grid.At(end).Type)
			switch st.Kind {
			case snapshot.KindExplore:
				explores++
				assert.Equal(t, len(st.Path)-1, st.Depth)
				assert.Equal(t, st.Current, st.Path[len(st.Path)-1])
			case snapshot.KindBacktrack:
				backtracks++
				assert.Equal(t, len(st.Path), st.Depth)
			case snapshot.KindFound:
				assert.Equal(t, len(st.Path)-1, st.Depth)
				for j := 1; j < len(st.Path); j++ {
					assert.Equal(t, 1, gridgraph.Manhattan(st.Path[j-1], st.Path[j]))
					assert.NotEqual(t, snapshot.CellWall, g.At(st.Path[j]).Type)
				}
			}
		}
		assert.LessOrEqual(t, explores, len(gridgraph.Region(g, start)))
		if !reachable {
			assert.Equal(t, explores, backtracks, "every entered cell is abandoned")
			assert.Equal(t, len(gridgraph.Region(g, start)), explores, "the whole region is explored")
		}
	}
}

// TestSolver_DeepCorridor: a long corridor solves without recursion.
func TestSolver_DeepCorridor(t *testing.T) {
	const n = 400
	g := snapshot.NewGrid(1, n)
	s, err := maze.NewSolver(g, at(0, 0), at(0, n-1))
	require.NoError(t, err)
	var last snapshot.GridStep
	count := 0
	for st := range snapshot.Seq(s.Next) {
		last = st
		count++
	}
	assert.Equal(t, n, count)
	assert.Equal(t, snapshot.KindFound, last.Kind)
	assert.Equal(t, n-1, last.Depth)
}

// TestSolver_HiddenBacktracking drops backtrack steps and nothing else.
func TestSolver_HiddenBacktracking(t *testing.T) {
	g, err := gridgraph.Parse("S..", "#.#", "..E")
	require.NoError(t, err)
	s, err := maze.NewSolver(g, at(0, 0), at(2, 2), maze.WithBacktracking(false))
	require.NoError(t, err)
	got := snapshot.Collect(s.Next)

	_, full := solve(t, "S..", "#.#", "..E")
	var want []snapshot.GridStep
	for _, st := range full {
		if st.Kind != snapshot.KindBacktrack {
			want = append(want, st)
		}
	}
	assert.Equal(t, want, got)
	assert.True(t, s.Solved())
}

func TestNewSolver_Invalid(t *testing.T) {
	g, err := gridgraph.Parse("S#", ".E")
	require.NoError(t, err)
	_, err = maze.NewSolver(g, at(0, 1), at(1, 1))
	assert.True(t, errors.Is(err, snapshot.ErrInvalidInput))
	_, err = maze.NewSolver(nil, at(0, 0), at(0, 0))
	assert.True(t, errors.Is(err, snapshot.ErrInvalidInput))
}

// TestSolver_Determinism: two solves of one maze are identical.
func TestSolver_Determinism(t *testing.T) {
	_, a := solve(t, "S...", ".##.", "...#", "#..E")
	_, b := solve(t, "S...", ".##.", "...#", "#..E")
	assert.Equal(t, a, b)
}
