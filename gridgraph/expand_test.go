package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

// TestBridge_OpenPath: with an open route no wall is crossed.
func TestBridge_OpenPath(t *testing.T) {
	g := mustParse(t, "S..", "##.", "..E")
	path, walls, err := gridgraph.Bridge(g, at(0, 0), at(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 0, walls)
	assert.Equal(t, []snapshot.Coord{at(0, 0), at(0, 1), at(0, 2), at(1, 2), at(2, 2)}, path)
}

// TestBridge_SingleWall: the cheapest route crosses exactly one wall.
func TestBridge_SingleWall(t *testing.T) {
	g := mustParse(t, "S#E")
	path, walls, err := gridgraph.Bridge(g, at(0, 0), at(0, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, walls)
	assert.Equal(t, []snapshot.Coord{at(0, 0), at(0, 1), at(0, 2)}, path)
}

func TestBridge_SameCell(t *testing.T) {
	path, walls, err := gridgraph.Bridge(mustParse(t, "S."), at(0, 0), at(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, walls)
	assert.Equal(t, []snapshot.Coord{at(0, 0)}, path)
}

func TestBridge_Errors(t *testing.T) {
	_, _, err := gridgraph.Bridge(nil, at(0, 0), at(0, 0))
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, _, err = gridgraph.Bridge(mustParse(t, ".."), at(0, 0), at(1, 0))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// TestCarve connects an enclosed end and leaves the input alone.
func TestCarve(t *testing.T) {
	g := mustParse(t, "S..", "..#", ".#E")
	require.False(t, gridgraph.Connected(g, at(0, 0), at(2, 2)))

	out, removed, err := gridgraph.Carve(g, at(0, 0), at(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.True(t, gridgraph.Connected(out, at(0, 0), at(2, 2)))
	assert.Equal(t, 1, out.CountType(snapshot.CellWall))
	assert.Equal(t, 2, g.CountType(snapshot.CellWall), "input untouched")
}
