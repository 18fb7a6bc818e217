package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

func TestPaint(t *testing.T) {
	g := mustParse(t, "S..", "..E")

	out, changed := gridgraph.Paint(g, at(0, 1), true)
	require.True(t, changed)
	assert.Equal(t, snapshot.CellWall, out[0][1].Type)
	assert.Equal(t, snapshot.CellEmpty, g[0][1].Type, "input untouched")

	_, changed = gridgraph.Paint(out, at(0, 1), true)
	assert.False(t, changed, "already a wall")

	erased, changed := gridgraph.Paint(out, at(0, 1), false)
	require.True(t, changed)
	assert.Equal(t, snapshot.CellEmpty, erased[0][1].Type)

	for _, c := range []snapshot.Coord{at(0, 0), at(1, 2), at(4, 4)} {
		_, changed = gridgraph.Paint(g, c, true)
		assert.Falsef(t, changed, "%v must not be painted", c)
	}
}

func TestMoveEndpoint(t *testing.T) {
	g := mustParse(t, "S.#", "..E")

	out, err := gridgraph.MoveEndpoint(g, at(1, 0), snapshot.CellStart)
	require.NoError(t, err)
	assert.Equal(t, "..#\nS.E", gridgraph.Format(out))
	assert.Equal(t, "S.#\n..E", gridgraph.Format(g), "input untouched")

	out, err = gridgraph.MoveEndpoint(g, at(1, 2), snapshot.CellEnd)
	require.NoError(t, err)
	assert.Equal(t, "S.#\n..E", gridgraph.Format(out), "moving onto itself")
}

func TestMoveEndpoint_Errors(t *testing.T) {
	g := mustParse(t, "S.#", "..E")

	_, err := gridgraph.MoveEndpoint(g, at(0, 2), snapshot.CellStart)
	assert.ErrorIs(t, err, gridgraph.ErrBlocked, "wall")
	_, err = gridgraph.MoveEndpoint(g, at(1, 2), snapshot.CellStart)
	assert.ErrorIs(t, err, gridgraph.ErrBlocked, "opposite endpoint")
	_, err = gridgraph.MoveEndpoint(g, at(9, 0), snapshot.CellEnd)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = gridgraph.MoveEndpoint(g, at(0, 1), snapshot.CellWall)
	assert.ErrorIs(t, err, gridgraph.ErrNotEndpoint)
	_, err = gridgraph.MoveEndpoint(nil, at(0, 0), snapshot.CellEnd)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}
