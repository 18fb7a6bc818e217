package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

// TestRegion_BreadthFirstOrder checks reachability and the visiting order
// on a 3×3 grid split by a wall column:
//
//	S # .
//	. # .
//	. # E
func TestRegion_BreadthFirstOrder(t *testing.T) {
	g := mustParse(t, "S#.", ".#.", ".#E")
	assert.Equal(t, []snapshot.Coord{at(0, 0), at(1, 0), at(2, 0)}, gridgraph.Region(g, at(0, 0)))
	assert.Equal(t, []snapshot.Coord{at(2, 2), at(1, 2), at(0, 2)}, gridgraph.Region(g, at(2, 2)))
	assert.Nil(t, gridgraph.Region(g, at(0, 1)), "wall")
	assert.Nil(t, gridgraph.Region(g, at(5, 5)), "out of bounds")
}

func TestRegions(t *testing.T) {
	g := mustParse(t, "..#.", "###.", ".#..")
	comps := gridgraph.Regions(g)
	if assert.Len(t, comps, 3) {
		assert.Equal(t, []snapshot.Coord{at(0, 0), at(0, 1)}, comps[0])
		assert.Len(t, comps[1], 4)
		assert.Equal(t, at(0, 3), comps[1][0])
		assert.Equal(t, []snapshot.Coord{at(2, 0)}, comps[2])
	}

	assert.Empty(t, gridgraph.Regions(mustParse(t, "##", "##")))
}

func TestConnected(t *testing.T) {
	g := mustParse(t, "S#.", ".#.", ".#E")
	assert.False(t, gridgraph.Connected(g, at(0, 0), at(2, 2)))
	assert.True(t, gridgraph.Connected(g, at(0, 2), at(2, 2)))
	assert.False(t, gridgraph.Connected(g, at(0, 0), at(0, 1)))
}
